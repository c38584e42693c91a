package models

import (
	"fmt"

	"github.com/visiplus/taskboard/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Project{},
		&Task{},
		&Role{},
		&Priority{},
		&ProjectRoleAssignment{},
		&ProjectTask{},
		&ActivityLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData inserts the fixed roles and priorities plus the bootstrap
// user. Repeated startups must not duplicate rows.
func SeedDefaultData() error {
	return SeedDatabase(DB)
}

// SeedDatabase runs the idempotent seed against the given connection.
func SeedDatabase(db *gorm.DB) error {
	priorities := []string{PriorityHigh, PriorityMedium, PriorityLow}
	for _, name := range priorities {
		var count int64
		db.Model(&Priority{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			if err := db.Create(&Priority{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	roles := []Role{
		{
			Name:         RoleAdministrator,
			CanAddMember: true, CanCreateTask: true, CanAssignTask: true,
			CanUpdateTask: true, CanViewTask: true, CanViewBoard: true,
			CanBeNotified: true, CanViewHistory: true,
		},
		{
			Name:          RoleMember,
			CanCreateTask: true, CanUpdateTask: true, CanViewTask: true,
			CanViewBoard: true, CanBeNotified: true, CanViewHistory: true,
		},
		{
			Name:        RoleObserver,
			CanViewTask: true, CanViewBoard: true, CanBeNotified: true,
			CanViewHistory: true,
		},
	}
	for _, role := range roles {
		var count int64
		db.Model(&Role{}).Where("name = ?", role.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	// Bootstrap user
	var count int64
	db.Model(&User{}).Where("name = ?", "arthur").Count(&count)
	if count == 0 {
		admin := User{
			Name:      "arthur",
			Email:     "arthur@gmail.com",
			Password:  "arthur",
			AppRole:   RoleAdministrator,
			Connected: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
