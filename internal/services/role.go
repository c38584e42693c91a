package services

import (
	"errors"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// Create is seed-or-fetch: when a role with the same name exists its id is
// returned, otherwise the role is inserted.
func (s *RoleService) Create(role *models.Role) (uint, error) {
	var existing models.Role
	err := s.db.Where("name = ?", role.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if err := s.db.Create(role).Error; err != nil {
		return 0, err
	}
	return role.ID, nil
}

// FindByName returns the role or gorm.ErrRecordNotFound.
func (s *RoleService) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByID returns the role or gorm.ErrRecordNotFound.
func (s *RoleService) FindByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Save(role *models.Role) error {
	return s.db.Save(role).Error
}
