package setup

import (
	"context"
	"exercise-tracker/app"
	"exercise-tracker/database"
	"exercise-tracker/services"
	"log/slog"
	"time"
)

// InitDatabase connects to MongoDB and creates the required indexes
func InitDatabase(ctx context.Context, uri, name string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(ctx, uri, name)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}

	logger.Info("database initialized", "db", name)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	userRepo := database.NewUserRepository(db)
	exerciseRepo := database.NewExerciseRepository(db)

	userService := services.NewUserService(userRepo)
	exerciseService := services.NewExerciseService(userRepo, exerciseRepo)

	application := app.New(userService, exerciseService, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
