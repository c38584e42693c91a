package main

import (
	"github.com/gin-gonic/gin"
	"github.com/visiplus/taskboard/internal/middleware"
	"github.com/visiplus/taskboard/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	// Rate limiter for write-heavy routes
	writeLimiter := middleware.NewRateLimiter(10, 20)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Projects
		projet := api.Group("/projet")
		{
			projet.GET("/all", svc.projectHandler.All)
			projet.GET("/nom/:nom", svc.projectHandler.GetByName)
			projet.GET("/id/:id", svc.projectHandler.GetByID)
			projet.GET("/users-roled/:id", svc.projectHandler.UsersRoled)
			projet.POST("/create", writeLimiter.Middleware(), svc.projectHandler.Create)
			projet.DELETE("/delete/:id", writeLimiter.Middleware(), svc.projectHandler.Delete)
		}

		// Tasks
		tache := api.Group("/tache")
		{
			tache.GET("/tache", svc.taskHandler.GetByName)
			tache.GET("/id/:id", svc.taskHandler.GetByID)
			tache.GET("/project/:id", svc.taskHandler.ByProject)
			tache.POST("/create", writeLimiter.Middleware(), svc.taskHandler.Create)
			tache.PATCH("/update", svc.taskHandler.Update)
			tache.PUT("/update", svc.taskHandler.Update)
			tache.DELETE("/delete/:id", svc.taskHandler.Delete)
		}

		// Users
		utilisateur := api.Group("/utilisateur")
		{
			utilisateur.GET("/", svc.userHandler.List)
			utilisateur.GET("/nom", svc.userHandler.GetByName)
			utilisateur.GET("/:id", svc.userHandler.GetByID)
			utilisateur.POST("/create", writeLimiter.Middleware(), svc.userHandler.Create)
			utilisateur.POST("/add-user-to-project", svc.userHandler.AddToProject)
			utilisateur.PATCH("/login", svc.userHandler.Login)
			utilisateur.PATCH("/logout", svc.userHandler.Logout)
		}

		// Activity logs
		api.GET("/activity-logs", svc.activityLogHandler.List)
	}
}
