package models

import "time"

// Canonical priority names, seeded at startup.
const (
	PriorityHigh   = "HAUTE"
	PriorityMedium = "MOYENNE"
	PriorityLow    = "FAIBLE"
)

// Priority is closed reference data.
type Priority struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Priority) TableName() string { return "priorities" }
