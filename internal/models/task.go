package models

import "time"

// Task status defaults to StatusTodo when unset at creation.
const StatusTodo = "TODO"

// Task represents a unit of work with a requester, an assignee and an
// optional parent project and priority.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"size:1000" json:"description"`
	Status      string     `gorm:"size:50;default:TODO" json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	PriorityID  *uint      `json:"priority_id"`
	Priority    *Priority  `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	RequesterID uint       `json:"requester_id"`
	Requester   *User      `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	AssigneeID  uint       `json:"assignee_id"`
	Assignee    *User      `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	ProjectID   *uint      `gorm:"index" json:"project_id"`
	Project     *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
