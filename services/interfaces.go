package services

import (
	"context"
	"exercise-tracker/models"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ExerciseRepository defines the interface for exercise data access
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	FindForUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]models.Exercise, error)
}
