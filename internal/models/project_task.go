package models

// ProjectTask is the auxiliary project/task join table. Tasks already carry a
// direct project foreign key; this second link path survives from an earlier
// schema revision and must be severed first when a project is deleted, or the
// delete fails on a constraint.
type ProjectTask struct {
	ProjectID uint `gorm:"primaryKey" json:"project_id"`
	TaskID    uint `gorm:"primaryKey" json:"task_id"`
}

func (ProjectTask) TableName() string { return "project_tasks" }
