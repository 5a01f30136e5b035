package router

import (
	"time"

	"github.com/NaniCherry131202/Internship-Task/internal/handlers"
	"github.com/NaniCherry131202/Internship-Task/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP surface. The nested /projects routes and the
// flat /tasks routes are two addressings of the same project service.
// allowedOrigins comes from configuration.
func NewRouter(authHandler *handlers.AuthHandler, projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler, verifier middleware.TokenVerifier, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.AuthMiddleware(verifier, logger)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		projects := api.Group("/projects", requireAuth)
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:project_id", projectHandler.GetProject)
			projects.DELETE("/:project_id", projectHandler.DeleteProject)

			projects.POST("/:project_id/tasks", projectHandler.AddTask)
			projects.PUT("/:project_id/tasks/:task_id", projectHandler.UpdateTask)
		}

		tasks := api.Group("/tasks", requireAuth)
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:project_id", taskHandler.ListTasks)
			tasks.PUT("/:task_id", taskHandler.UpdateTask)
			tasks.DELETE("/:task_id", taskHandler.DeleteTask)
		}
	}

	return r
}
