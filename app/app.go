package app

import (
	"context"
	"exercise-tracker/models"
	"exercise-tracker/validator"
	"log/slog"
)

// UserService defines the user operations the handlers depend on
type UserService interface {
	Register(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

// ExerciseService defines the exercise operations the handlers depend on
type ExerciseService interface {
	Log(ctx context.Context, userID string, req *models.CreateExerciseRequest) (*models.Exercise, *models.User, error)
	Logs(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error)
}

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Users     UserService
	Exercises ExerciseService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(users UserService, exercises ExerciseService, logger *slog.Logger) *App {
	return &App{
		Users:     users,
		Exercises: exercises,
		Validator: validator.New(),
		Logger:    logger,
	}
}
