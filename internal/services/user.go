package services

import (
	"errors"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create persists a new user and returns its id. Creation is idempotent on
// the name key: when a user with the same name already exists, the existing
// id is returned and nothing is written.
func (s *UserService) Create(user *models.User) (uint, error) {
	var existing models.User
	err := s.db.Where("name = ?", user.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if err := s.db.Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *UserService) FindAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user or gorm.ErrRecordNotFound.
func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName returns the user or gorm.ErrRecordNotFound.
func (s *UserService) FindByName(name string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user or gorm.ErrRecordNotFound.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateConnectionState copies the connection flag from incoming onto
// existing when it differs, persists and returns the entity. Only the
// connection flag participates in this merge; all other fields are ignored.
func (s *UserService) UpdateConnectionState(existing, incoming *models.User) (*models.User, error) {
	if existing == nil || incoming == nil {
		return nil, errors.New("user update requires both the existing and the incoming entity")
	}

	if existing.Connected != incoming.Connected {
		existing.Connected = incoming.Connected
	}

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Save is an unconditional upsert.
func (s *UserService) Save(user *models.User) error {
	return s.db.Save(user).Error
}
