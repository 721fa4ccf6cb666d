package models

import "time"

type Character struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:250;not null" json:"name"`
	Height    int       `json:"height"`
	Mass      int       `json:"mass"`
	HairColor string    `gorm:"size:250" json:"hair_color"`
	EyeColor  string    `gorm:"size:250" json:"eye_color"`
	Gender    string    `gorm:"size:250" json:"gender"`
	BirthYear string    `gorm:"size:250" json:"birth_year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
