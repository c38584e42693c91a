package services

import (
	"errors"
	"time"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// TaskUpdateRequest carries a partial task update. Nil fields leave the
// persisted value untouched.
type TaskUpdateRequest struct {
	ID          uint       `json:"id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	PriorityID  *uint      `json:"priority_id"`
	RequesterID *uint      `json:"requester_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	ProjectID   *uint      `json:"project_id"`
}

// Create persists the task, defaulting status to TODO and the start date to
// the current time when unset. Reference resolution happens in the caller.
func (s *TaskService) Create(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.StartDate.IsZero() {
		task.StartDate = time.Now()
	}
	return s.db.Create(task).Error
}

// FindByName returns the task or gorm.ErrRecordNotFound.
func (s *TaskService) FindByName(name string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("name = ?", name).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByProjectAndName checks name uniqueness within one project.
func (s *TaskService) FindByProjectAndName(projectID uint, name string) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("project_id = ? AND name = ?", projectID, name).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByID returns the task or gorm.ErrRecordNotFound.
func (s *TaskService) FindByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) FindByProjectID(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdatePartial merges the non-nil fields of req onto the persisted task and
// saves the result. Referenced entities must resolve; an unresolvable
// priority id falls back to the default priority looked up by name.
func (s *TaskService) UpdatePartial(task *models.Task, req *TaskUpdateRequest) (*models.Task, error) {
	if task == nil || req == nil {
		return nil, errors.New("task update requires both the existing task and the incoming request")
	}

	if req.RequesterID != nil {
		var requester models.User
		if err := s.db.First(&requester, *req.RequesterID).Error; err != nil {
			return nil, err
		}
		task.RequesterID = requester.ID
	}

	if req.AssigneeID != nil {
		var assignee models.User
		if err := s.db.First(&assignee, *req.AssigneeID).Error; err != nil {
			return nil, err
		}
		task.AssigneeID = assignee.ID
	}

	if req.ProjectID != nil {
		var project models.Project
		if err := s.db.First(&project, *req.ProjectID).Error; err != nil {
			return nil, err
		}
		task.ProjectID = &project.ID
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = req.EndDate
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	if req.PriorityID != nil {
		var priority models.Priority
		err := s.db.First(&priority, *req.PriorityID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown priority id: fall back to the default priority
			// instead of failing the whole merge.
			err = s.db.Where("name = ?", models.PriorityMedium).First(&priority).Error
		}
		if err != nil {
			return nil, err
		}
		task.PriorityID = &priority.ID
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task by id and reports whether a row existed.
func (s *TaskService) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Save is an unconditional upsert.
func (s *TaskService) Save(task *models.Task) error {
	return s.db.Save(task).Error
}

// WithTx returns a TaskService bound to the given transaction.
func (s *TaskService) WithTx(tx *gorm.DB) *TaskService {
	return &TaskService{db: tx}
}
