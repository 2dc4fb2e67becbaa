package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flow/internal/core/domain"
	"flow/internal/core/schedule"
)

func scheduledTask(id string, hours, minutes, durationMinutes int) domain.Task {
	plannedTime := domain.NewTimeOfDay(hours, minutes)
	return domain.Task{
		ID:          id,
		Status:      domain.TaskStatusPending,
		PlannedTime: &plannedTime,
		Activity:    &domain.Activity{DurationMinutes: durationMinutes},
	}
}

func TestConflicts_FlagsBothOverlappingTasks(t *testing.T) {
	// A=[09:00,09:30) and B=[09:15,09:45) overlap.
	conflicts := schedule.Conflicts([]domain.Task{
		scheduledTask("a", 9, 0, 30),
		scheduledTask("b", 9, 15, 30),
	})

	require.True(t, conflicts["a"])
	require.True(t, conflicts["b"])
}

func TestConflicts_TouchingBoundariesDoNotConflict(t *testing.T) {
	// A=[09:00,09:30) and B=[09:30,10:00) merely touch.
	conflicts := schedule.Conflicts([]domain.Task{
		scheduledTask("a", 9, 0, 30),
		scheduledTask("b", 9, 30, 30),
	})

	require.Empty(t, conflicts)
}

func TestConflicts_OrderIndependent(t *testing.T) {
	forward := schedule.Conflicts([]domain.Task{
		scheduledTask("a", 9, 0, 30),
		scheduledTask("b", 9, 15, 30),
	})
	reversed := schedule.Conflicts([]domain.Task{
		scheduledTask("b", 9, 15, 30),
		scheduledTask("a", 9, 0, 30),
	})

	require.Equal(t, forward, reversed)
}

func TestConflicts_SingleTaskNeverConflictsWithItself(t *testing.T) {
	conflicts := schedule.Conflicts([]domain.Task{scheduledTask("a", 9, 0, 120)})
	require.Empty(t, conflicts)
}

func TestConflicts_IgnoresUnscheduledTasks(t *testing.T) {
	unscheduled := domain.Task{
		ID:       "u",
		Status:   domain.TaskStatusPending,
		Activity: &domain.Activity{DurationMinutes: 600},
	}

	conflicts := schedule.Conflicts([]domain.Task{
		scheduledTask("a", 9, 0, 30),
		unscheduled,
	})

	require.Empty(t, conflicts)
}

func TestConflicts_IgnoresTerminalTasks(t *testing.T) {
	completed := scheduledTask("done", 9, 0, 60)
	completed.Status = domain.TaskStatusCompleted

	conflicts := schedule.Conflicts([]domain.Task{
		completed,
		scheduledTask("a", 9, 15, 30),
	})

	require.Empty(t, conflicts)
}

func TestConflicts_DefaultsDurationWithoutActivity(t *testing.T) {
	plannedTime := domain.NewTimeOfDay(9, 0)
	bare := domain.Task{ID: "bare", Status: domain.TaskStatusPending, PlannedTime: &plannedTime}

	// The default 30-minute duration makes [09:00,09:30) overlap B.
	conflicts := schedule.Conflicts([]domain.Task{
		bare,
		scheduledTask("b", 9, 29, 30),
	})

	require.True(t, conflicts["bare"])
	require.True(t, conflicts["b"])
}
