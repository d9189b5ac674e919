package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"exercise-tracker/app"
	"exercise-tracker/handlers"
	"exercise-tracker/models"
	"exercise-tracker/services"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ==================== MOCKS ====================

// MockUserService is a mock implementation of app.UserService
type MockUserService struct {
	mock.Mock
}

var _ app.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockExerciseService is a mock implementation of app.ExerciseService
type MockExerciseService struct {
	mock.Mock
}

var _ app.ExerciseService = (*MockExerciseService)(nil)

func (m *MockExerciseService) Log(ctx context.Context, userID string, req *models.CreateExerciseRequest) (*models.Exercise, *models.User, error) {
	args := m.Called(ctx, userID, req)
	var exercise *models.Exercise
	var user *models.User
	if args.Get(0) != nil {
		exercise = args.Get(0).(*models.Exercise)
	}
	if args.Get(1) != nil {
		user = args.Get(1).(*models.User)
	}
	return exercise, user, args.Error(2)
}

func (m *MockExerciseService) Logs(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error) {
	args := m.Called(ctx, userID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseLog), args.Error(1)
}

// ==================== HELPERS ====================

func setupTestApp(users *MockUserService, exercises *MockExerciseService) *fiber.App {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	application := app.New(users, exercises, logger)

	fiberApp := fiber.New()
	api := fiberApp.Group("/api")
	api.Post("/users", handlers.CreateUser(application))
	api.Get("/users", handlers.ListUsers(application))
	api.Post("/users/:id/exercises", handlers.LogExercise(application))
	api.Get("/users/:id/logs", handlers.GetLogs(application))

	return fiberApp
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ==================== TESTS ====================

func TestCreateUser(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mockUsers.On("Register", mock.Anything, "fcc_test").
			Return(&models.User{ID: userID, Username: "fcc_test"}, nil)

		fiberApp := setupTestApp(mockUsers, new(MockExerciseService))
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users", fiber.Map{"username": "fcc_test"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, "fcc_test", body["username"])
		assert.Equal(t, userID.Hex(), body["_id"])

		mockUsers.AssertExpectations(t)
	})

	t.Run("Missing username", func(t *testing.T) {
		fiberApp := setupTestApp(new(MockUserService), new(MockExerciseService))
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users", fiber.Map{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mockUsers.On("Register", mock.Anything, "fcc_test").
			Return(nil, services.ErrUsernameTaken)

		fiberApp := setupTestApp(mockUsers, new(MockExerciseService))
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users", fiber.Map{"username": "fcc_test"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Username already taken", body["message"])

		mockUsers.AssertExpectations(t)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUsers := new(MockUserService)
		stored := []models.User{
			{ID: primitive.NewObjectID(), Username: "alice"},
			{ID: primitive.NewObjectID(), Username: "bob"},
		}
		mockUsers.On("List", mock.Anything).Return(stored, nil)

		fiberApp := setupTestApp(mockUsers, new(MockExerciseService))
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []map[string]interface{}
		decodeBody(t, resp, &body)
		require.Len(t, body, 2)
		assert.Equal(t, "alice", body[0]["username"])
		assert.Equal(t, stored[0].ID.Hex(), body[0]["_id"])

		mockUsers.AssertExpectations(t)
	})

	t.Run("Empty list stays an array", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mockUsers.On("List", mock.Anything).Return([]models.User{}, nil)

		fiberApp := setupTestApp(mockUsers, new(MockExerciseService))
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.JSONEq(t, "[]", string(raw))
	})
}

func TestLogExercise(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, Username: "fcc_test"}

	t.Run("Success - duration supplied as numeric string", func(t *testing.T) {
		mockExercises := new(MockExerciseService)
		mockExercises.On("Log", mock.Anything, userID.Hex(), mock.MatchedBy(func(req *models.CreateExerciseRequest) bool {
			return req.Description == "run" && int(req.Duration) == 30 && req.Date == "2024-01-15"
		})).Return(&models.Exercise{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			Description: "run",
			Duration:    30,
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		}, user, nil)

		fiberApp := setupTestApp(new(MockUserService), mockExercises)
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users/"+userID.Hex()+"/exercises",
			fiber.Map{"description": "run", "duration": "30", "date": "2024-01-15"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, "fcc_test", body["username"])
		assert.Equal(t, "run", body["description"])
		assert.Equal(t, float64(30), body["duration"])
		assert.Equal(t, "Mon Jan 15 2024", body["date"])
		assert.Equal(t, userID.Hex(), body["_id"])

		mockExercises.AssertExpectations(t)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockExercises := new(MockExerciseService)
		mockExercises.On("Log", mock.Anything, userID.Hex(), mock.AnythingOfType("*models.CreateExerciseRequest")).
			Return(nil, nil, services.ErrUserNotFound)

		fiberApp := setupTestApp(new(MockUserService), mockExercises)
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users/"+userID.Hex()+"/exercises",
			fiber.Map{"description": "run", "duration": 30}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, "User not found", body["message"])

		mockExercises.AssertExpectations(t)
	})

	t.Run("Non-positive duration rejected", func(t *testing.T) {
		fiberApp := setupTestApp(new(MockUserService), new(MockExerciseService))
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users/"+userID.Hex()+"/exercises",
			fiber.Map{"description": "run", "duration": 0}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing description rejected", func(t *testing.T) {
		fiberApp := setupTestApp(new(MockUserService), new(MockExerciseService))
		resp, err := fiberApp.Test(jsonRequest(t, http.MethodPost, "/api/users/"+userID.Hex()+"/exercises",
			fiber.Map{"duration": 30}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetLogs(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("Success with filters", func(t *testing.T) {
		mockExercises := new(MockExerciseService)
		mockExercises.On("Logs", mock.Anything, userID.Hex(), "2024-01-01", "2024-01-31", "5").
			Return(&models.ExerciseLog{
				Username: "fcc_test",
				Count:    1,
				ID:       userID.Hex(),
				Log: []models.LogEntry{
					{Description: "run", Duration: 30, Date: "Mon Jan 15 2024"},
				},
			}, nil)

		fiberApp := setupTestApp(new(MockUserService), mockExercises)
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet,
			"/api/users/"+userID.Hex()+"/logs?from=2024-01-01&to=2024-01-31&limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.ExerciseLog
		decodeBody(t, resp, &body)
		assert.Equal(t, "fcc_test", body.Username)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, userID.Hex(), body.ID)
		require.Len(t, body.Log, 1)
		assert.Equal(t, "Mon Jan 15 2024", body.Log[0].Date)

		mockExercises.AssertExpectations(t)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockExercises := new(MockExerciseService)
		mockExercises.On("Logs", mock.Anything, userID.Hex(), "", "", "").
			Return(nil, services.ErrUserNotFound)

		fiberApp := setupTestApp(new(MockUserService), mockExercises)
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/users/"+userID.Hex()+"/logs", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, "User not found", body["message"])

		mockExercises.AssertExpectations(t)
	})
}
