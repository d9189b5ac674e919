package handlers

import (
	"exercise-tracker/app"
	"exercise-tracker/models"
	"exercise-tracker/services"

	"github.com/gofiber/fiber/v2"
)

// CreateUser registers a new username
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Register(c.Context(), req.Username)
		if err != nil {
			if err == services.ErrUsernameTaken {
				return conflict(c, "Username already taken")
			}
			return serverErrorWithDetails(c, "Failed to create user", err)
		}

		return created(c, fiber.Map{
			"username": user.Username,
			"_id":      user.ID.Hex(),
		})
	}
}

// ListUsers returns all registered users
func ListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.List(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch users", err)
		}

		return success(c, users)
	}
}
