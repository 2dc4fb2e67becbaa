package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flow/internal/app/service"
	"flow/internal/core/domain"
)

func TestActivityService_CreateActivity_DefaultsMinDuration(t *testing.T) {
	activityRepo := new(activityRepositoryMock)
	activityRepo.On("Create", mock.Anything, domain.CreateActivityInput{
		UserID:             "user-1",
		Name:               "Morning run",
		DurationMinutes:    45,
		MinDurationMinutes: 45,
		EnergyLevel:        domain.EnergyHigh,
	}).Return(domain.Activity{ID: "activity-run"}, nil).Once()

	svc := service.NewActivityService(activityRepo, new(taskRepositoryMock))

	_, err := svc.CreateActivity(context.Background(), domain.CreateActivityInput{
		UserID:          "user-1",
		Name:            "Morning run",
		DurationMinutes: 45,
		EnergyLevel:     domain.EnergyHigh,
	})
	require.NoError(t, err)
	activityRepo.AssertExpectations(t)
}

func TestActivityService_SetRecurrence_CreatesOnlyMissingInstances(t *testing.T) {
	activity := domain.Activity{ID: "activity-run", UserID: "user-1"}
	rule := domain.RecurrenceRule{Pattern: domain.RecurrenceDaily}

	// Tomorrow already has an instance; it must not be created again.
	tomorrow := time.Now().AddDate(0, 0, 1)
	existing := map[string]bool{domain.DateKey(tomorrow): true}

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("GetByID", mock.Anything, "activity-run").Return(activity, nil).Once()
	activityRepo.On("SetRecurrence", mock.Anything, "activity-run", rule).Return(nil).Once()

	var inserted []domain.CreateTaskInput
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ExistingDates", mock.Anything, "activity-run").Return(existing, nil).Once()
	taskRepo.On("InsertMany", mock.Anything, mock.MatchedBy(func(inputs []domain.CreateTaskInput) bool {
		inserted = inputs
		return len(inputs) > 0
	})).Return(nil).Once()

	svc := service.NewActivityService(activityRepo, taskRepo)

	created, err := svc.SetRecurrence(context.Background(), "activity-run", rule)
	require.NoError(t, err)
	require.Equal(t, len(inserted), created)

	for _, input := range inserted {
		require.Equal(t, "activity-run", input.ActivityID)
		require.Equal(t, "user-1", input.UserID)
		require.Equal(t, domain.TaskStatusPending, input.Status)
		require.NotEqual(t, domain.DateKey(tomorrow), domain.DateKey(input.PlannedDate))
	}
	activityRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestActivityService_SetRecurrence_RejectsUnknownPattern(t *testing.T) {
	svc := service.NewActivityService(new(activityRepositoryMock), new(taskRepositoryMock))

	_, err := svc.SetRecurrence(context.Background(), "activity-run", domain.RecurrenceRule{Pattern: "yearly"})
	require.ErrorIs(t, err, domain.ErrInvalidRecurrence)
}

func TestActivityService_SetRecurrence_AllDatesAlreadyMaterialized(t *testing.T) {
	activity := domain.Activity{ID: "activity-run", UserID: "user-1"}
	endDate := time.Now().AddDate(0, 0, 3)
	rule := domain.RecurrenceRule{Pattern: domain.RecurrenceDaily, EndDate: &endDate}

	existing := make(map[string]bool)
	for i := 0; i < 5; i++ {
		existing[domain.DateKey(time.Now().AddDate(0, 0, i))] = true
	}

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("GetByID", mock.Anything, "activity-run").Return(activity, nil).Once()
	activityRepo.On("SetRecurrence", mock.Anything, "activity-run", rule).Return(nil).Once()

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ExistingDates", mock.Anything, "activity-run").Return(existing, nil).Once()

	svc := service.NewActivityService(activityRepo, taskRepo)

	created, err := svc.SetRecurrence(context.Background(), "activity-run", rule)
	require.NoError(t, err)
	require.Zero(t, created)
	taskRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}
