package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"flow/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, userID, from, to)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, userID, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, taskID string) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) InsertMany(ctx context.Context, inputs []domain.CreateTaskInput) error {
	args := m.Called(ctx, inputs)
	return args.Error(0)
}

func (m *taskRepositoryMock) UpdateFields(ctx context.Context, taskID string, input domain.UpdateTaskInput) error {
	args := m.Called(ctx, taskID, input)
	return args.Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *taskRepositoryMock) ExistingDates(ctx context.Context, activityID string) (map[string]bool, error) {
	args := m.Called(ctx, activityID)

	var dates map[string]bool
	if value := args.Get(0); value != nil {
		dates = value.(map[string]bool)
	}
	return dates, args.Error(1)
}

type activityRepositoryMock struct {
	mock.Mock
}

func (m *activityRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityRepositoryMock) GetByID(ctx context.Context, activityID string) (domain.Activity, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityRepositoryMock) Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityRepositoryMock) UpdateFields(ctx context.Context, activityID string, input domain.UpdateActivityInput) error {
	args := m.Called(ctx, activityID, input)
	return args.Error(0)
}

func (m *activityRepositoryMock) SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) error {
	args := m.Called(ctx, activityID, rule)
	return args.Error(0)
}

type timeBankRepositoryMock struct {
	mock.Mock
}

func (m *timeBankRepositoryMock) AddSaved(ctx context.Context, userID string, date time.Time, minutes int) error {
	args := m.Called(ctx, userID, date, minutes)
	return args.Error(0)
}

type plannerMock struct {
	mock.Mock
}

func (m *plannerMock) Propose(ctx context.Context, req domain.SchedulingRequest) ([]domain.ScheduledSlot, error) {
	args := m.Called(ctx, req)

	var slots []domain.ScheduledSlot
	if value := args.Get(0); value != nil {
		slots = value.([]domain.ScheduledSlot)
	}
	return slots, args.Error(1)
}
