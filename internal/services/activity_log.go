package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/pkg/logger"
	"gorm.io/gorm"
)

var activityDB *gorm.DB

// InitActivityLogger wires the package-level log writers to a database.
func InitActivityLogger(db *gorm.DB) {
	activityDB = db
}

func LogInfo(module, action, message string, userID *uint) {
	writeLog("info", module, action, message, userID)
}

func LogWarning(module, action, message string, userID *uint) {
	writeLog("warning", module, action, message, userID)
}

func LogError(module, action, message string, userID *uint) {
	writeLog("error", module, action, message, userID)
}

func writeLog(level, module, action, message string, userID *uint) {
	if activityDB == nil {
		return
	}

	entry := &models.ActivityLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	activityDB.Create(entry)
}

type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

type ActivityLogListRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Level  string `form:"level"`
	Module string `form:"module"`
}

// List returns recent log entries, newest first.
func (s *ActivityLogService) List(req *ActivityLogListRequest) ([]models.ActivityLog, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	query := s.db.Model(&models.ActivityLog{})
	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}

	var logs []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(req.Limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Cleanup deletes entries older than retentionDays and returns the number of
// deleted rows. retentionDays <= 0 disables cleanup.
func (s *ActivityLogService) Cleanup(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// StartCleanupScheduler runs Cleanup once at startup and then nightly.
// The returned cron can be stopped at shutdown.
func StartCleanupScheduler(db *gorm.DB, retentionDays int) *cron.Cron {
	service := NewActivityLogService(db)
	runCleanup(service, retentionDays)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		runCleanup(service, retentionDays)
	}); err != nil {
		logger.Error().Err(err).Msg("failed to schedule activity log cleanup")
		return scheduler
	}
	scheduler.Start()
	return scheduler
}

func runCleanup(service *ActivityLogService, retentionDays int) {
	if retentionDays <= 0 {
		logger.Info().Msg("activity log cleanup disabled")
		return
	}

	deleted, err := service.Cleanup(retentionDays)
	if err != nil {
		logger.Error().Err(err).Msg("activity log cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Info().
			Int64("deleted", deleted).
			Int("retention_days", retentionDays).
			Msg("activity log cleanup")
	}
}
