package handlers

import (
	"exercise-tracker/app"
	"exercise-tracker/models"
	"exercise-tracker/services"

	"github.com/gofiber/fiber/v2"
)

// LogExercise records an exercise against a user
func LogExercise(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if userID == "" {
			return badRequest(c, "user ID is required")
		}

		var req models.CreateExerciseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		exercise, user, err := a.Exercises.Log(c.Context(), userID, &req)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				return notFound(c, "User not found")
			case services.ErrInvalidDate:
				return badRequest(c, "date must be a calendar date in YYYY-MM-DD format")
			default:
				return serverErrorWithDetails(c, "Failed to create exercise", err)
			}
		}

		// The _id in the response is the owning user's, matching the log shape.
		return created(c, fiber.Map{
			"username":    user.Username,
			"description": exercise.Description,
			"duration":    exercise.Duration,
			"date":        exercise.DateString(),
			"_id":         user.ID.Hex(),
		})
	}
}

// GetLogs returns a user's exercise log with optional from/to/limit filters
func GetLogs(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if userID == "" {
			return badRequest(c, "user ID is required")
		}

		log, err := a.Exercises.Logs(c.Context(), userID, c.Query("from"), c.Query("to"), c.Query("limit"))
		if err != nil {
			if err == services.ErrUserNotFound {
				return notFound(c, "User not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch logs", err)
		}

		return success(c, log)
	}
}
