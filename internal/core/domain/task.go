package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
	TaskStatusSkipped   TaskStatus = "Skipped"
)

// Terminal reports whether the status forbids further mutation. A Skipped
// task may still be brought back via an explicit reschedule.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusSkipped
}

// DefaultTaskDurationMinutes is assumed when a task's activity carries no
// planned duration.
const DefaultTaskDurationMinutes = 30

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It renders as "HH:MM" on the wire and in the database.
type TimeOfDay int

func NewTimeOfDay(hours, minutes int) TimeOfDay {
	return TimeOfDay(hours*60 + minutes)
}

// ParseTimeOfDay parses a 24-hour "HH:MM" clock value.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return NewTimeOfDay(hours, minutes), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Hour() int { return int(t) / 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

type Task struct {
	ID                    string
	ActivityID            string
	UserID                string
	Status                TaskStatus
	PlannedDate           time.Time
	PlannedTime           *TimeOfDay
	SortOrder             *int
	ActualDurationMinutes *int
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Activity              *Activity
}

// DurationMinutes resolves the task's planned duration from its activity,
// falling back to the default when no activity is joined.
func (t Task) DurationMinutes() int {
	if t.Activity != nil && t.Activity.DurationMinutes > 0 {
		return t.Activity.DurationMinutes
	}
	return DefaultTaskDurationMinutes
}

// Scheduled reports whether the task has a concrete time-of-day. Unscheduled
// tasks never participate in conflicts.
func (t Task) Scheduled() bool {
	return t.PlannedTime != nil
}

type CreateTaskInput struct {
	ActivityID  string
	UserID      string
	Status      TaskStatus
	PlannedDate time.Time
	PlannedTime *TimeOfDay
	SortOrder   *int
}

type UpdateTaskInput struct {
	Status                *TaskStatus
	PlannedDate           *time.Time
	PlannedTime           *TimeOfDay
	PlannedTimeSet        bool
	SortOrder             *int
	SortOrderSet          bool
	ActualDurationMinutes *int
	CompletedAt           *time.Time
}

// DateKey formats a calendar date the way the store and the recurrence
// projector key it.
func DateKey(d time.Time) string {
	return d.Format("2006-01-02")
}
