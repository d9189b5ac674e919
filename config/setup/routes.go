package setup

import (
	"exercise-tracker/app"
	"exercise-tracker/handlers"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Static assets
	fiberApp.Static("/static", "./static", fiber.Static{
		Compress:      true,
		CacheDuration: 24 * time.Hour,
		MaxAge:        86400,
	})

	// Landing page and health check
	fiberApp.Get("/", handlers.HomePage)
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// API routes
	api := fiberApp.Group("/api")
	api.Post("/users", handlers.CreateUser(application))
	api.Get("/users", handlers.ListUsers(application))
	api.Post("/users/:id/exercises", handlers.LogExercise(application))
	api.Get("/users/:id/logs", handlers.GetLogs(application))
}
