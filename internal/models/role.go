package models

import "time"

// Canonical role names, seeded at startup.
const (
	RoleAdministrator = "ADMINISTRATEUR"
	RoleMember        = "MEMBRE"
	RoleObserver      = "OBSERVATEUR"
)

// Role is closed reference data: a named set of capability flags.
type Role struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	CanAddMember   bool      `json:"can_add_member"`
	CanCreateTask  bool      `json:"can_create_task"`
	CanAssignTask  bool      `json:"can_assign_task"`
	CanUpdateTask  bool      `json:"can_update_task"`
	CanViewTask    bool      `json:"can_view_task"`
	CanViewBoard   bool      `json:"can_view_dashboard"`
	CanBeNotified  bool      `json:"can_be_notified"`
	CanViewHistory bool      `json:"can_view_modification_history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Role) TableName() string { return "roles" }
