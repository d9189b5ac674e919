package services

import (
	"context"
	"exercise-tracker/models"
	"strconv"
	"strings"
	"time"
)

// DefaultLogLimit caps log queries when the client supplies no usable limit.
const DefaultLogLimit = 100

// ExerciseService handles business logic for exercise logging
type ExerciseService struct {
	users     UserRepository
	exercises ExerciseRepository
}

// NewExerciseService creates a new exercise service
func NewExerciseService(users UserRepository, exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
	}
}

// Log records an exercise against the given user. A missing date defaults to
// the current calendar date; a supplied date must parse as a calendar date.
// Returns the stored exercise together with the owning user.
func (es *ExerciseService) Log(ctx context.Context, userID string, req *models.CreateExerciseRequest) (*models.Exercise, *models.User, error) {
	user, err := es.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	date := models.Midnight(time.Now())
	if req.Date != "" {
		date, err = models.ParseDate(req.Date)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: strings.TrimSpace(req.Description),
		Duration:    int(req.Duration),
		Date:        date,
	}

	if err := es.exercises.Create(ctx, exercise); err != nil {
		return nil, nil, err
	}

	return exercise, user, nil
}

// Logs returns the user's exercise log. The [from, to] range filter is
// applied only when both bounds parse as calendar dates; an unparseable or
// missing bound disables range filtering. A missing or invalid limit falls
// back to DefaultLogLimit.
func (es *ExerciseService) Logs(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error) {
	user, err := es.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fromDate := parseBound(from)
	toDate := parseBound(to)

	exercises, err := es.exercises.FindForUser(ctx, user.ID, fromDate, toDate, parseLimit(limit))
	if err != nil {
		return nil, err
	}

	entries := make([]models.LogEntry, 0, len(exercises))
	for i := range exercises {
		entries = append(entries, models.LogEntry{
			Description: exercises[i].Description,
			Duration:    exercises[i].Duration,
			Date:        exercises[i].DateString(),
		})
	}

	return &models.ExerciseLog{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID.Hex(),
		Log:      entries,
	}, nil
}

// parseBound treats an absent or unparseable bound as no bound at all.
func parseBound(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseLimit(value string) int64 {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return DefaultLogLimit
	}
	return int64(n)
}
