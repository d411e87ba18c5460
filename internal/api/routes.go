package api

import (
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes registers middleware, the landing page and the API on router.
func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	log logrus.FieldLogger,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(RequestLogger(log), CORS(cfg.CORS))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if cfg.Server.ViewsDir != "" {
		router.StaticFile("/", filepath.Join(cfg.Server.ViewsDir, "index.html"))
	}
	if cfg.Server.PublicDir != "" {
		router.Static("/public", cfg.Server.PublicDir)
	}

	usersGroup := router.Group("/api/users")
	{
		usersGroup.POST("", userHandler.CreateUser)
		usersGroup.GET("", userHandler.ListUsers)

		// POST /api/users/:_id/exercises
		usersGroup.POST("/:_id/exercises", exerciseHandler.AddExercise)
		// GET /api/users/:_id/logs?from=&to=&limit=
		usersGroup.GET("/:_id/logs", exerciseHandler.GetLogs)
	}
}
