package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flow/internal/core/domain"
	"flow/internal/core/schedule"
)

func historyTask(status domain.TaskStatus, tag string, energy domain.EnergyLevel, plannedTime *domain.TimeOfDay, actual *int) domain.Task {
	return domain.Task{
		Status:                status,
		PlannedTime:           plannedTime,
		ActualDurationMinutes: actual,
		Activity:              &domain.Activity{Tag: tag, EnergyLevel: energy, DurationMinutes: 30},
	}
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	insights := schedule.Analyze(nil, domain.NewTimeOfDay(9, 0))

	require.Empty(t, insights.TopTags)
	require.Nil(t, insights.AvgActualMinutes)
	require.Nil(t, insights.TypicalEnergyAtHour)
	require.Zero(t, insights.CompletionRatePercent)
}

func TestAnalyze_RanksCompletedTags(t *testing.T) {
	history := []domain.Task{
		historyTask(domain.TaskStatusCompleted, "Deep Work", domain.EnergyHigh, nil, nil),
		historyTask(domain.TaskStatusCompleted, "Deep Work", domain.EnergyHigh, nil, nil),
		historyTask(domain.TaskStatusCompleted, "Chores", domain.EnergyLow, nil, nil),
		historyTask(domain.TaskStatusSkipped, "Admin", domain.EnergyMedium, nil, nil),
	}

	insights := schedule.Analyze(history, domain.NewTimeOfDay(9, 0))

	require.Equal(t, []string{"Deep Work", "Chores"}, insights.TopTags)
	require.Equal(t, 75, insights.CompletionRatePercent)
}

func TestAnalyze_AveragesActualDurations(t *testing.T) {
	history := []domain.Task{
		historyTask(domain.TaskStatusCompleted, "Deep Work", domain.EnergyHigh, nil, intPtr(20)),
		historyTask(domain.TaskStatusCompleted, "Deep Work", domain.EnergyHigh, nil, intPtr(41)),
		historyTask(domain.TaskStatusCompleted, "Chores", domain.EnergyLow, nil, nil),
	}

	insights := schedule.Analyze(history, domain.NewTimeOfDay(9, 0))

	require.NotNil(t, insights.AvgActualMinutes)
	require.Equal(t, 31, *insights.AvgActualMinutes)
}

func TestAnalyze_TypicalEnergyAtCurrentHour(t *testing.T) {
	history := []domain.Task{
		historyTask(domain.TaskStatusCompleted, "Deep Work", domain.EnergyHigh, timePtr(9, 0), nil),
		historyTask(domain.TaskStatusPending, "Deep Work", domain.EnergyHigh, timePtr(9, 30), nil),
		historyTask(domain.TaskStatusCompleted, "Chores", domain.EnergyLow, timePtr(9, 45), nil),
		historyTask(domain.TaskStatusCompleted, "Chores", domain.EnergyLow, timePtr(18, 0), nil),
	}

	insights := schedule.Analyze(history, domain.NewTimeOfDay(9, 10))

	require.NotNil(t, insights.TypicalEnergyAtHour)
	require.Equal(t, domain.EnergyHigh, *insights.TypicalEnergyAtHour)
}
