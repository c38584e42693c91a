package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database, migrates the schema and
// seeds the fixed roles, priorities and the bootstrap user.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Role{},
		&models.Priority{},
		&models.ProjectRoleAssignment{},
		&models.ProjectTask{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := models.SeedDatabase(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, connected bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:      name,
		Email:     name + "@example.com",
		Password:  "secret",
		AppRole:   models.RoleMember,
		Connected: connected,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name string, creatorID uint) *models.Project {
	t.Helper()
	project := &models.Project{Name: name, CreatorID: creatorID}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}
