package models

import "time"

// Project represents a tracked project. CreatedAt is set once at creation and
// never updated afterwards.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Description string     `gorm:"size:1000" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	CreatorID   uint       `json:"creator_id"`
	Creator     *User      `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CreatedAt   time.Time  `gorm:"<-:create" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// ProjectSummary flattens a project for list responses, one level deep with
// no entity graph attached.
type ProjectSummary struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DueDate:     p.DueDate,
		CreatedAt:   p.CreatedAt,
	}
}
