package models

import "time"

type Planet struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:250;not null" json:"name"`
	Climate        string    `gorm:"size:250" json:"climate"`
	Population     int64     `json:"population"`
	OrbitalPeriod  int       `json:"orbital_period"`
	RotationPeriod int       `json:"rotation_period"`
	Diameter       int       `json:"diameter"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
