package models

import "time"

// User represents an application user. Name doubles as a human-facing key:
// several endpoints resolve users by name rather than by id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	AppRole   string    `gorm:"size:50" json:"app_role"` // ADMINISTRATEUR, MEMBRE, OBSERVATEUR
	Connected bool      `gorm:"default:false" json:"connected"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
