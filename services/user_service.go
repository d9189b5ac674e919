package services

import (
	"context"
	"errors"
	"exercise-tracker/database"
	"exercise-tracker/models"
	"strings"
	"time"
)

// UserService handles business logic for users
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with the given username
func (us *UserService) Register(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{
		Username:  strings.TrimSpace(username),
		CreatedAt: time.Now(),
	}

	if err := us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// List retrieves all registered users
func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := us.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get retrieves a user by id
func (us *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := us.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
