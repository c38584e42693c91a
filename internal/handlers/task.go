package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/internal/services"
	"github.com/visiplus/taskboard/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService     *services.TaskService
	projectService  *services.ProjectService
	userService     *services.UserService
	priorityService *services.PriorityService
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		taskService:     services.NewTaskService(db),
		projectService:  services.NewProjectService(db),
		userService:     services.NewUserService(db),
		priorityService: services.NewPriorityService(db),
	}
}

type CreateTaskRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	EndDate     *time.Time `json:"end_date"`
	PriorityID  *uint      `json:"priority_id"`
	RequesterID uint       `json:"requester_id" binding:"required"`
	AssigneeID  uint       `json:"assignee_id" binding:"required"`
	ProjectID   uint       `json:"project_id" binding:"required"`
}

// Create creates a task inside a project. The project, the requester and the
// assignee must all resolve, and the name must be free within the project.
// POST /api/tache/create
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.FindByID(req.ProjectID)
	if err != nil {
		response.BadRequest(c, "task request is invalid or the task already exists")
		return
	}
	requester, err := h.userService.FindByID(req.RequesterID)
	if err != nil {
		response.BadRequest(c, "task request is invalid or the task already exists")
		return
	}
	assignee, err := h.userService.FindByID(req.AssigneeID)
	if err != nil {
		response.BadRequest(c, "task request is invalid or the task already exists")
		return
	}
	if _, err := h.taskService.FindByProjectAndName(project.ID, req.Name); err == nil {
		response.BadRequest(c, "task request is invalid or the task already exists")
		return
	}

	task := models.Task{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		EndDate:     req.EndDate,
		RequesterID: requester.ID,
		AssigneeID:  assignee.ID,
		ProjectID:   &project.ID,
	}

	if req.PriorityID != nil {
		priority, err := h.priorityService.FindByID(*req.PriorityID)
		if err != nil {
			response.BadRequest(c, "unknown priority")
			return
		}
		task.PriorityID = &priority.ID
	}

	if err := h.taskService.Create(&task); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "task created in project", task)
}

// GetByName returns a task by name
// GET /api/tache/tache?nom=
func (h *TaskHandler) GetByName(c *gin.Context) {
	name := c.Query("nom")
	if name == "" {
		response.BadRequest(c, "task not found, check your inputs")
		return
	}

	task, err := h.taskService.FindByName(name)
	if err != nil {
		response.BadRequest(c, "task not found, check your inputs")
		return
	}

	response.OK(c, "task found", task)
}

// GetByID returns a task by id
// GET /api/tache/id/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	task, err := h.taskService.FindByID(uint(id))
	if err != nil {
		response.BadRequest(c, "task not found, check your inputs")
		return
	}

	response.OK(c, "task found", task)
}

// ByProject returns the tasks belonging to one project
// GET /api/tache/project/:id
func (h *TaskHandler) ByProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	tasks, err := h.taskService.FindByProjectID(uint(id))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "project tasks", tasks)
}

// Update merges the non-null fields of the request onto the stored task.
// Registered for both PATCH and PUT: the PUT route is an alias, not a full
// replacement.
// PATCH /api/tache/update, PUT /api/tache/update
func (h *TaskHandler) Update(c *gin.Context) {
	var req services.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.FindByID(req.ID)
	if err != nil {
		response.BadRequest(c, "task is unknown or does not exist")
		return
	}

	updated, err := h.taskService.UpdatePartial(task, &req)
	if err != nil {
		response.ServerError(c, "error during update: "+err.Error())
		return
	}

	response.OK(c, "task updated", updated)
}

// Delete removes a task by id, reporting whether a row was removed
// DELETE /api/tache/delete/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	if _, err := h.taskService.FindByID(uint(id)); err != nil {
		response.BadRequest(c, "task does not exist")
		return
	}

	deleted, err := h.taskService.Delete(uint(id))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "task deleted", deleted)
}
