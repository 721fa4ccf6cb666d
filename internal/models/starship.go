package models

import "time"

type Starship struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Model         string    `gorm:"uniqueIndex;size:250;not null" json:"model"`
	Manufacturer  string    `gorm:"size:250" json:"manufacturer"`
	Crew          int       `json:"crew"`
	Passengers    int       `json:"passengers"`
	Consumables   string    `gorm:"size:250" json:"consumables"`
	CostInCredits int64     `json:"cost_in_credits"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
