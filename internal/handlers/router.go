package handlers

import (
	"time"

	"taskify/backend/internal/config"
	"taskify/backend/internal/middleware"
	"taskify/backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter assembles the API surface. Signup and login are the only
// unauthenticated endpoints; everything under /api/tasks and the
// profile route sit behind the bearer-auth middleware.
func NewRouter(cfg *config.Config, db *gorm.DB, authService services.AuthService, taskService services.TaskService, tokens *services.TokenService) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(db, authService, tokens)
	taskHandler := NewTaskHandler(db, taskService)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.RequireAuth(tokens), authHandler.Profile)
		}

		tasks := api.Group("/tasks", middleware.RequireAuth(tokens))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	return router
}
