package ports

import (
	"context"
	"time"

	"flow/internal/core/domain"
	"flow/internal/core/schedule"
)

type TaskRepository interface {
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.Task, error)
	GetByID(ctx context.Context, taskID string) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	InsertMany(ctx context.Context, inputs []domain.CreateTaskInput) error
	UpdateFields(ctx context.Context, taskID string, input domain.UpdateTaskInput) error
	Delete(ctx context.Context, taskID string) error

	// ExistingDates returns the date keys of all instances stored for an
	// activity, used by the recurrence projector to stay idempotent.
	ExistingDates(ctx context.Context, activityID string) (map[string]bool, error)
}

// DropResult reports the outcome of a drag-resolve. A drop outside the
// scheduling window is a silent no-op, not an error: Moved is false and the
// task keeps its previous time.
type DropResult struct {
	Moved       bool
	PlannedTime domain.TimeOfDay
}

const (
	ViewDay   = "day"
	ViewWeek  = "week"
	ViewMonth = "month"
)

type TimelineView struct {
	Date      time.Time
	Hours     []schedule.HourBucket
	Cells     []schedule.DayCell
	Conflicts []string
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	CompleteTask(ctx context.Context, taskID string, actualMinutes *int) (domain.Task, *domain.Task, error)
	SkipTask(ctx context.Context, taskID string) (domain.Task, error)
	ResolveDrop(ctx context.Context, taskID string, offset, zoom float64) (DropResult, error)
	SwapOrder(ctx context.Context, taskID, otherTaskID string) error
	Timeline(ctx context.Context, userID string, date time.Time, zoom float64, view string) (TimelineView, error)
	SmartStart(ctx context.Context, userID string, now domain.TimeOfDay) (schedule.Insights, error)
	ProposeSchedule(ctx context.Context, userID string, date time.Time, availableHours float64, startTime domain.TimeOfDay) ([]domain.ScheduledSlot, error)
	ApplySchedule(ctx context.Context, slots []domain.ScheduledSlot) error
}
