package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/internal/services"
	"github.com/visiplus/taskboard/pkg/response"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService       *services.UserService
	roleService       *services.RoleService
	projectService    *services.ProjectService
	assignmentService *services.AssignmentService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService:       services.NewUserService(db),
		roleService:       services.NewRoleService(db),
		projectService:    services.NewProjectService(db),
		assignmentService: services.NewAssignmentService(db),
	}
}

// UserDTO flattens a user for API responses. The password never leaves the
// server.
type UserDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AppRole   string `json:"app_role"`
	Connected bool   `json:"connected"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AppRole:   u.AppRole,
		Connected: u.Connected,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	AppRole  string `json:"app_role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	Email string `json:"email"`
}

type AddUserToProjectRequest struct {
	Name    string `json:"name" binding:"required"`
	AppRole string `json:"app_role"`
}

// List returns every user
// GET /api/utilisateur/
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.FindAll()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, NewUserDTO(&users[i]))
	}

	response.OK(c, "user list", dtos)
}

// GetByID returns a user by id
// GET /api/utilisateur/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.FindByID(uint(id))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.OK(c, "user found", NewUserDTO(user))
}

// GetByName returns a user by name
// GET /api/utilisateur/nom?nom=
func (h *UserHandler) GetByName(c *gin.Context) {
	name := c.Query("nom")
	if name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	user, err := h.userService.FindByName(name)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.OK(c, "user found", NewUserDTO(user))
}

// Create registers a user. Creation is idempotent on the name: an existing
// name yields the existing id. An explicit unknown role is rejected; an
// absent role falls back to the member role.
// POST /api/utilisateur/create
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name == "" || req.Email == "" {
		response.BadRequest(c, "name and email are required")
		return
	}

	appRole := req.AppRole
	if appRole != "" {
		if _, err := h.roleService.FindByName(appRole); err != nil {
			response.BadRequest(c, "the requested role does not exist")
			return
		}
	} else {
		appRole = models.RoleMember
		if _, err := h.roleService.FindByName(appRole); err != nil {
			response.ServerError(c, "the default member role is missing")
			return
		}
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		AppRole:  appRole,
	}

	id, err := h.userService.Create(&user)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "user created", gin.H{"id": id})
}

// AddToProject binds a user (by name) to the project given in the id query
// parameter, with the requested role or the member role as fallback.
// POST /api/utilisateur/add-user-to-project?id=
func (h *UserHandler) AddToProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req AddUserToProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.FindByID(uint(projectID))
	if err != nil {
		response.NotFound(c, "user or project not found")
		return
	}

	user, err := h.userService.FindByName(req.Name)
	if err != nil {
		response.NotFound(c, "user or project not found")
		return
	}

	var role *models.Role
	if req.AppRole != "" {
		role, err = h.roleService.FindByName(req.AppRole)
		if err != nil {
			services.LogWarning("user", "add-to-project",
				fmt.Sprintf("unknown role %q requested, falling back to %s", req.AppRole, models.RoleMember),
				&user.ID)
			role = nil
		}
	}
	if role == nil {
		role, err = h.roleService.FindByName(models.RoleMember)
		if err != nil {
			response.ServerError(c, "the default member role is missing")
			return
		}
	}

	assignment := models.ProjectRoleAssignment{
		UserID:    user.ID,
		ProjectID: project.ID,
		RoleID:    role.ID,
	}
	if err := h.assignmentService.Save(&assignment); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, "user added to project", assignment)
}

// Login checks email and password and flips the connection flag to true.
// A wrong password never mutates state.
// PATCH /api/utilisateur/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		response.BadRequest(c, "email and password are required")
		return
	}

	user, err := h.userService.FindByEmail(req.Email)
	if err != nil {
		response.NotFound(c, "no user with this email")
		return
	}

	if user.Password != req.Password {
		response.Unauthorized(c, fmt.Sprintf("wrong password for %s", req.Email))
		return
	}

	incoming := *user
	incoming.Connected = true
	updated, err := h.userService.UpdateConnectionState(user, &incoming)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	services.LogInfo("user", "login", fmt.Sprintf("%s signed in", updated.Name), &updated.ID)

	response.OK(c, "user signed in", NewUserDTO(updated))
}

// Logout flips the connection flag to false. Logging out an already
// disconnected user is a no-op reported as 304.
// PATCH /api/utilisateur/logout
func (h *UserHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.FindByEmail(req.Email)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	if !user.Connected {
		response.NotModified(c, "logout failed, user already disconnected")
		return
	}

	incoming := *user
	incoming.Connected = false
	updated, err := h.userService.UpdateConnectionState(user, &incoming)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	services.LogInfo("user", "logout", fmt.Sprintf("%s signed out", updated.Name), &updated.ID)

	response.OK(c, "user signed out", NewUserDTO(updated))
}
