package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/models"
	"github.com/visiplus/taskboard/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter int64

// setupTestDB opens a fresh in-memory database with the full schema and the
// seeded roles, priorities and bootstrap user.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared",
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

// setupRouter registers the API route table against a fresh database.
func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := setupTestDB(t)

	projectHandler := NewProjectHandler(db)
	taskHandler := NewTaskHandler(db)
	userHandler := NewUserHandler(db)

	r := gin.New()
	api := r.Group("/api")

	projet := api.Group("/projet")
	projet.GET("/all", projectHandler.All)
	projet.GET("/nom/:nom", projectHandler.GetByName)
	projet.GET("/id/:id", projectHandler.GetByID)
	projet.GET("/users-roled/:id", projectHandler.UsersRoled)
	projet.POST("/create", projectHandler.Create)
	projet.DELETE("/delete/:id", projectHandler.Delete)

	tache := api.Group("/tache")
	tache.GET("/tache", taskHandler.GetByName)
	tache.GET("/id/:id", taskHandler.GetByID)
	tache.GET("/project/:id", taskHandler.ByProject)
	tache.POST("/create", taskHandler.Create)
	tache.PATCH("/update", taskHandler.Update)
	tache.PUT("/update", taskHandler.Update)
	tache.DELETE("/delete/:id", taskHandler.Delete)

	utilisateur := api.Group("/utilisateur")
	utilisateur.GET("/", userHandler.List)
	utilisateur.GET("/nom", userHandler.GetByName)
	utilisateur.GET("/:id", userHandler.GetByID)
	utilisateur.POST("/create", userHandler.Create)
	utilisateur.POST("/add-user-to-project", userHandler.AddToProject)
	utilisateur.PATCH("/login", userHandler.Login)
	utilisateur.PATCH("/logout", userHandler.Logout)

	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}

func createConnectedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:      name,
		Email:     name + "@example.com",
		Password:  "secret",
		AppRole:   models.RoleMember,
		Connected: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}
