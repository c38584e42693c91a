package services

import (
	"errors"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type PriorityService struct {
	db *gorm.DB
}

func NewPriorityService(db *gorm.DB) *PriorityService {
	return &PriorityService{db: db}
}

// Create is seed-or-fetch: when a priority with the same name exists its id
// is returned, otherwise the priority is inserted.
func (s *PriorityService) Create(priority *models.Priority) (uint, error) {
	var existing models.Priority
	err := s.db.Where("name = ?", priority.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if err := s.db.Create(priority).Error; err != nil {
		return 0, err
	}
	return priority.ID, nil
}

// FindByName returns the priority or gorm.ErrRecordNotFound.
func (s *PriorityService) FindByName(name string) (*models.Priority, error) {
	var priority models.Priority
	if err := s.db.Where("name = ?", name).First(&priority).Error; err != nil {
		return nil, err
	}
	return &priority, nil
}

// FindByID returns the priority or gorm.ErrRecordNotFound.
func (s *PriorityService) FindByID(id uint) (*models.Priority, error) {
	var priority models.Priority
	if err := s.db.First(&priority, id).Error; err != nil {
		return nil, err
	}
	return &priority, nil
}

func (s *PriorityService) Save(priority *models.Priority) error {
	return s.db.Save(priority).Error
}
