package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/internal/services"
	"github.com/visiplus/taskboard/pkg/logger"
	"github.com/visiplus/taskboard/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	db                *gorm.DB
	projectService    *services.ProjectService
	userService       *services.UserService
	roleService       *services.RoleService
	taskService       *services.TaskService
	assignmentService *services.AssignmentService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		db:                db,
		projectService:    services.NewProjectService(db),
		userService:       services.NewUserService(db),
		roleService:       services.NewRoleService(db),
		taskService:       services.NewTaskService(db),
		assignmentService: services.NewAssignmentService(db),
	}
}

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Creator     string     `json:"creator" binding:"required"`
}

// CreateProjectResponse flattens the created project with its creator and the
// assigned role, one level deep.
type CreateProjectResponse struct {
	User    UserDTO               `json:"user"`
	Role    *models.Role          `json:"role"`
	Project models.Project        `json:"project"`
}

// GetByName returns a project by name
// GET /api/projet/nom/:nom
func (h *ProjectHandler) GetByName(c *gin.Context) {
	project, err := h.projectService.FindByName(c.Param("nom"))
	if err != nil {
		response.BadRequest(c, "project does not exist")
		return
	}

	response.OK(c, "project found", project)
}

// GetByID returns a project by id
// GET /api/projet/id/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.FindByID(uint(id))
	if err != nil {
		response.BadRequest(c, "project does not exist")
		return
	}

	response.OK(c, "project found", project)
}

// UsersRoled returns the role assignments scoped to one project
// GET /api/projet/users-roled/:id
func (h *ProjectHandler) UsersRoled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	assignments, err := h.assignmentService.FindAll()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	if len(assignments) == 0 {
		response.BadRequest(c, "no role assignments found")
		return
	}

	filtered := make([]models.ProjectRoleAssignment, 0)
	for _, assignment := range assignments {
		if assignment.ProjectID == uint(id) {
			filtered = append(filtered, assignment)
		}
	}

	response.OK(c, "project role assignments found", filtered)
}

// Create creates a project and binds its creator to the administrator role.
// Validation order: creator known, creator connected, name free.
// POST /api/projet/create
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	creator, err := h.userService.FindByName(req.Creator)
	if err != nil {
		response.BadRequest(c, "creator is unknown or the name is wrong")
		return
	}

	if !creator.Connected {
		response.BadRequest(c, "creator is not signed in")
		return
	}

	existing, err := h.projectService.FindByName(req.Name)
	if err == nil {
		response.BadRequestData(c, "project already exists", existing)
		return
	}
	if !errIsNotFound(err) {
		response.ServerError(c, err.Error())
		return
	}

	adminRole, err := h.roleService.FindByName(models.RoleAdministrator)
	if err != nil {
		response.ServerError(c, "administrator role is missing")
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		CreatorID:   creator.ID,
	}

	projectID, err := h.projectService.Create(&project)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	created, err := h.projectService.FindByID(projectID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	assignment := models.ProjectRoleAssignment{
		UserID:    creator.ID,
		ProjectID: created.ID,
		RoleID:    adminRole.ID,
	}
	if err := h.assignmentService.Save(&assignment); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	services.LogInfo("project", "create",
		fmt.Sprintf("project %q created by %s", created.Name, creator.Name), &creator.ID)

	response.OK(c, "project created", CreateProjectResponse{
		User:    NewUserDTO(creator),
		Role:    adminRole,
		Project: *created,
	})
}

// Delete removes a project with its dependent rows in four ordered steps:
// join rows, tasks, role assignments, then the project itself. The steps run
// in one transaction and each step is logged distinctly.
// DELETE /api/projet/delete/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.FindByID(uint(id))
	if err != nil {
		response.BadRequest(c, "project does not exist")
		return
	}

	log := logger.Get().With().Uint("project_id", project.ID).Logger()
	log.Info().Msg("project delete: start")

	err = h.db.Transaction(func(tx *gorm.DB) error {
		projectsTx := h.projectService.WithTx(tx)
		tasksTx := h.taskService.WithTx(tx)
		assignmentsTx := h.assignmentService.WithTx(tx)

		log.Info().Msg("project delete: step 1, clearing project/task join rows")
		if err := projectsTx.DeleteProjectTaskRelations(project.ID); err != nil {
			return fmt.Errorf("clearing project/task join rows: %w", err)
		}

		log.Info().Msg("project delete: step 2, deleting tasks")
		tasks, err := tasksTx.FindByProjectID(project.ID)
		if err != nil {
			return fmt.Errorf("loading project tasks: %w", err)
		}
		log.Info().Int("count", len(tasks)).Msg("project delete: tasks to delete")
		for _, task := range tasks {
			if _, err := tasksTx.Delete(task.ID); err != nil {
				return fmt.Errorf("deleting task %d: %w", task.ID, err)
			}
		}

		log.Info().Msg("project delete: step 3, deleting role assignments")
		if err := assignmentsTx.DeleteByProjectID(project.ID); err != nil {
			return fmt.Errorf("deleting role assignments: %w", err)
		}

		log.Info().Msg("project delete: step 4, deleting project")
		if err := projectsTx.Delete(project); err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("project delete: failed")
		services.LogError("project", "delete", err.Error(), nil)
		response.ServerError(c, "error during deletion: "+err.Error())
		return
	}

	log.Info().Msg("project delete: done")
	services.LogInfo("project", "delete",
		fmt.Sprintf("project %q and its dependents deleted", project.Name), nil)

	response.OK(c, "project, its tasks and its relations have been deleted", nil)
}

// All returns every project as summary DTOs
// GET /api/projet/all
func (h *ProjectHandler) All(c *gin.Context) {
	projects, err := h.projectService.FindAll()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	summaries := make([]models.ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, projects[i].Summary())
	}

	response.OK(c, "project list", summaries)
}

// errIsNotFound reports whether err is the storage not-found sentinel.
func errIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
