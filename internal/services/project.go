package services

import (
	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create inserts the project unconditionally and returns its id. Name
// uniqueness is checked by the caller before this point.
func (s *ProjectService) Create(project *models.Project) (uint, error) {
	if err := s.db.Create(project).Error; err != nil {
		return 0, err
	}
	return project.ID, nil
}

// FindByName returns the project or gorm.ErrRecordNotFound.
func (s *ProjectService) FindByName(name string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("name = ?", name).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID returns the project or gorm.ErrRecordNotFound.
func (s *ProjectService) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns every project. No pagination.
func (s *ProjectService) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("created_at").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes the project row. Dependent rows (tasks, assignments, join
// rows) must be cleared by the caller beforehand.
func (s *ProjectService) Delete(project *models.Project) error {
	return s.db.Delete(project).Error
}

// DeleteProjectTaskRelations removes all auxiliary project/task join rows for
// the given project. This must run before the tasks themselves are deleted.
func (s *ProjectService) DeleteProjectTaskRelations(projectID uint) error {
	return s.db.Where("project_id = ?", projectID).Delete(&models.ProjectTask{}).Error
}

// WithTx returns a ProjectService bound to the given transaction.
func (s *ProjectService) WithTx(tx *gorm.DB) *ProjectService {
	return &ProjectService{db: tx}
}
