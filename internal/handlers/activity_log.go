package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/services"
	"github.com/visiplus/taskboard/pkg/response"
	"gorm.io/gorm"
)

type ActivityLogHandler struct {
	logService *services.ActivityLogService
}

func NewActivityLogHandler(db *gorm.DB) *ActivityLogHandler {
	return &ActivityLogHandler{logService: services.NewActivityLogService(db)}
}

// List returns recent operation log entries
// GET /api/activity-logs
func (h *ActivityLogHandler) List(c *gin.Context) {
	var req services.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	logs, err := h.logService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "activity logs", logs)
}
