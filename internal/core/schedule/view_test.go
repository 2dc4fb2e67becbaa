package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flow/internal/core/domain"
	"flow/internal/core/schedule"
)

func dayTask(id string, date time.Time, plannedTime *domain.TimeOfDay, sortOrder *int) domain.Task {
	return domain.Task{
		ID:          id,
		Status:      domain.TaskStatusPending,
		PlannedDate: date,
		PlannedTime: plannedTime,
		SortOrder:   sortOrder,
		Activity:    &domain.Activity{DurationMinutes: 30},
	}
}

func timePtr(hours, minutes int) *domain.TimeOfDay {
	t := domain.NewTimeOfDay(hours, minutes)
	return &t
}

func intPtr(v int) *int { return &v }

func TestSortTimeline_TimeAscendingUnscheduledLast(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		dayTask("unscheduled", date, nil, nil),
		dayTask("late", date, timePtr(15, 0), nil),
		dayTask("early", date, timePtr(8, 30), nil),
	}

	sorted := schedule.SortTimeline(tasks)

	require.Equal(t, "early", sorted[0].ID)
	require.Equal(t, "late", sorted[1].ID)
	require.Equal(t, "unscheduled", sorted[2].ID)
}

func TestSortTimeline_SortOrderBreaksTies(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		dayTask("second", date, timePtr(9, 0), intPtr(5)),
		dayTask("first", date, timePtr(9, 0), intPtr(2)),
	}

	sorted := schedule.SortTimeline(tasks)

	require.Equal(t, "first", sorted[0].ID)
	require.Equal(t, "second", sorted[1].ID)
}

func TestSortManual_ExplicitOrderWinsOverTime(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		dayTask("b", date, timePtr(8, 0), intPtr(1)),
		dayTask("a", date, timePtr(20, 0), intPtr(0)),
	}

	sorted := schedule.SortManual(tasks)

	require.Equal(t, "a", sorted[0].ID)
	require.Equal(t, "b", sorted[1].ID)
}

func TestComposeDay_BucketsCoverVisibleWindow(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	buckets := schedule.ComposeDay([]domain.Task{
		dayTask("a", date, timePtr(9, 0), nil),
		dayTask("b", date, timePtr(9, 15), nil),
		dayTask("solo", date, timePtr(13, 45), nil),
		dayTask("unscheduled", date, nil, nil),
	}, 1)

	require.Len(t, buckets, 18)
	require.Equal(t, 6, buckets[0].Hour)
	require.Equal(t, 23, buckets[len(buckets)-1].Hour)

	nine := buckets[3]
	require.Equal(t, 9, nine.Hour)
	require.Len(t, nine.Entries, 2)
	require.Equal(t, "a", nine.Entries[0].Task.ID)
	require.Equal(t, 240.0, nine.Entries[0].Position.Offset)
	require.True(t, nine.Entries[0].Conflict)
	require.True(t, nine.Entries[1].Conflict)

	thirteen := buckets[7]
	require.Equal(t, 13, thirteen.Hour)
	require.Len(t, thirteen.Entries, 1)
	require.False(t, thirteen.Entries[0].Conflict)
}

func TestComposeWeek_StartsOnSundayAndCapsCells(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week starts Sunday 2026-03-01.
	anchor := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	wednesday := anchor

	tasks := []domain.Task{
		dayTask("t1", wednesday, timePtr(8, 0), nil),
		dayTask("t2", wednesday, timePtr(10, 0), nil),
		dayTask("t3", wednesday, timePtr(12, 0), nil),
		dayTask("t4", wednesday, timePtr(14, 0), nil),
	}

	cells := schedule.ComposeWeek(tasks, anchor)

	require.Len(t, cells, 7)
	require.Equal(t, "2026-03-01", domain.DateKey(cells[0].Date))
	require.Equal(t, "2026-03-07", domain.DateKey(cells[6].Date))

	wednesdayCell := cells[3]
	require.Equal(t, "2026-03-04", domain.DateKey(wednesdayCell.Date))
	require.Len(t, wednesdayCell.Visible, schedule.WeekCellCap)
	require.Equal(t, 1, wednesdayCell.More)
	require.Equal(t, 4, wednesdayCell.Total)
	require.Equal(t, "t1", wednesdayCell.Visible[0].ID)
}

func TestComposeMonth_OneCellPerDayWithTighterCap(t *testing.T) {
	anchor := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		dayTask("t1", day, timePtr(8, 0), nil),
		dayTask("t2", day, timePtr(10, 0), nil),
		dayTask("t3", day, timePtr(12, 0), nil),
	}

	cells := schedule.ComposeMonth(tasks, anchor)

	// February 2026 has 28 days.
	require.Len(t, cells, 28)

	cell := cells[13]
	require.Equal(t, "2026-02-14", domain.DateKey(cell.Date))
	require.Len(t, cell.Visible, schedule.MonthCellCap)
	require.Equal(t, 1, cell.More)
	require.Equal(t, 3, cell.Total)
}
