package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"flow/internal/adapter/http/dto"
	"flow/internal/adapter/http/handlers"
	"flow/internal/adapter/http/middleware"
	"flow/internal/core/domain"
	"flow/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityServiceMock struct {
	mock.Mock
}

func (m *activityServiceMock) ListActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityServiceMock) CreateActivity(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityServiceMock) UpdateActivity(ctx context.Context, activityID string, input domain.UpdateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, activityID, input)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityServiceMock) SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) (int, error) {
	args := m.Called(ctx, activityID, rule)
	return args.Int(0), args.Error(1)
}

func activityRouter(serviceMock *activityServiceMock) *gin.Engine {
	handler := handlers.NewActivityHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/activities", handler.ListActivities)
	api.POST("/activities", handler.CreateActivity)
	api.PATCH("/activities/:id", handler.UpdateActivity)
	api.POST("/activities/:id/recurrence", handler.SetRecurrence)
	return router
}

func TestActivityHandler_CreateActivity_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(activityServiceMock)
	serviceMock.On("CreateActivity", mock.Anything, domain.CreateActivityInput{
		UserID:          "user-1",
		Name:            "Morning run",
		DurationMinutes: 45,
		Tag:             "Health",
		EnergyLevel:     domain.EnergyHigh,
	}).Return(
		domain.Activity{
			ID:                 activityID,
			UserID:             "user-1",
			Name:               "Morning run",
			DurationMinutes:    45,
			MinDurationMinutes: 45,
			Tag:                "Health",
			EnergyLevel:        domain.EnergyHigh,
			CreatedAt:          createdAt,
			UpdatedAt:          createdAt,
		},
		nil,
	).Once()

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPost, "/api/activities", dto.CreateActivityRequest{
		UserID:          "user-1",
		Name:            "  Morning run  ",
		DurationMinutes: 45,
		Tag:             "Health",
		EnergyLevel:     "High",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ActivityItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, activityID, got.ID)
	require.Equal(t, "Morning run", got.Name)
	require.Equal(t, 45, got.DurationMinutes)
	require.Equal(t, "High", got.EnergyLevel)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_CreateActivity_BlankName(t *testing.T) {
	serviceMock := new(activityServiceMock)

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPost, "/api/activities", dto.CreateActivityRequest{
		UserID:          "user-1",
		Name:            "   ",
		DurationMinutes: 45,
		EnergyLevel:     "High",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The activity payload is invalid.", got.ErrDetails.Message)
}

func TestActivityHandler_UpdateActivity_MinDurationExceedsDuration(t *testing.T) {
	serviceMock := new(activityServiceMock)

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPatch, "/api/activities/"+activityID, map[string]any{
		"duration_minutes": 30,
		"min_duration":     45,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivityHandler_UpdateActivity_ExplicitNullUnlinks(t *testing.T) {
	serviceMock := new(activityServiceMock)
	serviceMock.On("UpdateActivity", mock.Anything, activityID, domain.UpdateActivityInput{LinkedActivityIDSet: true}).Return(
		domain.Activity{ID: activityID, Name: "Morning run", DurationMinutes: 45, EnergyLevel: domain.EnergyHigh},
		nil,
	).Once()

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPatch, "/api/activities/"+activityID, map[string]any{
		"linked_activity_id": nil,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_SetRecurrence_Success(t *testing.T) {
	endDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	serviceMock := new(activityServiceMock)
	serviceMock.On("SetRecurrence", mock.Anything, activityID, domain.RecurrenceRule{
		Pattern: domain.RecurrenceWeekly,
		EndDate: &endDate,
	}).Return(13, nil).Once()

	end := "2026-06-01"
	rec := doJSON(t, activityRouter(serviceMock), http.MethodPost, "/api/activities/"+activityID+"/recurrence", dto.SetRecurrenceRequest{
		Pattern: "weekly",
		EndDate: &end,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SetRecurrenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 13, got.Created)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_SetRecurrence_UnknownPattern(t *testing.T) {
	serviceMock := new(activityServiceMock)

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPost, "/api/activities/"+activityID+"/recurrence", map[string]any{
		"pattern": "yearly",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The recurrence rule is invalid.", got.ErrDetails.Message)
}

func TestActivityHandler_SetRecurrence_ActivityNotFound(t *testing.T) {
	serviceMock := new(activityServiceMock)
	serviceMock.On("SetRecurrence", mock.Anything, activityID, domain.RecurrenceRule{Pattern: domain.RecurrenceDaily}).Return(0, domain.ErrActivityNotFound).Once()

	rec := doJSON(t, activityRouter(serviceMock), http.MethodPost, "/api/activities/"+activityID+"/recurrence", dto.SetRecurrenceRequest{
		Pattern: "daily",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Activity not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
