package services

import (
	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// Save persists the assignment. All three references must be populated.
func (s *AssignmentService) Save(assignment *models.ProjectRoleAssignment) error {
	return s.db.Save(assignment).Error
}

func (s *AssignmentService) FindAll() ([]models.ProjectRoleAssignment, error) {
	var assignments []models.ProjectRoleAssignment
	err := s.db.Preload("User").Preload("Role").Preload("Project").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *AssignmentService) FindByProjectID(projectID uint) ([]models.ProjectRoleAssignment, error) {
	var assignments []models.ProjectRoleAssignment
	err := s.db.Preload("User").Preload("Role").
		Where("project_id = ?", projectID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *AssignmentService) FindByUserID(userID uint) ([]models.ProjectRoleAssignment, error) {
	var assignments []models.ProjectRoleAssignment
	err := s.db.Preload("Role").Preload("Project").
		Where("user_id = ?", userID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *AssignmentService) Delete(assignment *models.ProjectRoleAssignment) error {
	return s.db.Delete(assignment).Error
}

// DeleteByProjectID bulk-removes every assignment for one project, used by
// the project deletion cascade.
func (s *AssignmentService) DeleteByProjectID(projectID uint) error {
	return s.db.Where("project_id = ?", projectID).Delete(&models.ProjectRoleAssignment{}).Error
}

// WithTx returns an AssignmentService bound to the given transaction.
func (s *AssignmentService) WithTx(tx *gorm.DB) *AssignmentService {
	return &AssignmentService{db: tx}
}
