package main

import (
	"github.com/robfig/cron/v3"
	"github.com/visiplus/taskboard/internal/config"
	"github.com/visiplus/taskboard/internal/handlers"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/internal/services"
	"github.com/visiplus/taskboard/pkg/logger"
)

// appServices holds all initialized handlers and schedulers needed by the application.
type appServices struct {
	cleanupCron        *cron.Cron
	projectHandler     *handlers.ProjectHandler
	taskHandler        *handlers.TaskHandler
	userHandler        *handlers.UserHandler
	activityLogHandler *handlers.ActivityLogHandler
	healthHandler      *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, seed data, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default priorities, roles and the bootstrap user
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Initialize activity logger
	services.InitActivityLogger(models.GetDB())

	// Start activity log cleanup scheduler
	cleanupCron := services.StartCleanupScheduler(models.GetDB(), cfg.Log.RetentionDays)

	db := models.GetDB()
	return &appServices{
		cleanupCron:        cleanupCron,
		projectHandler:     handlers.NewProjectHandler(db),
		taskHandler:        handlers.NewTaskHandler(db),
		userHandler:        handlers.NewUserHandler(db),
		activityLogHandler: handlers.NewActivityLogHandler(db),
		healthHandler:      handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops background schedulers.
func (s *appServices) shutdown() {
	if s.cleanupCron != nil {
		s.cleanupCron.Stop()
	}
	logger.Info().Msg("All schedulers stopped")
}
