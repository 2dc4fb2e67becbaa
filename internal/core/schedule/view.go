package schedule

import (
	"sort"
	"time"

	"flow/internal/core/domain"
)

// Week and month cells truncate to a fixed number of visible tasks and
// expose the remainder as a "+N more" count.
const (
	WeekCellCap  = 3
	MonthCellCap = 2
)

// TimelineEntry is one laid-out task on the day surface.
type TimelineEntry struct {
	Task     domain.Task
	Position Position
	Conflict bool
}

// HourBucket groups the day view entries under their starting hour.
type HourBucket struct {
	Hour    int
	Entries []TimelineEntry
}

// DayCell is one day of a week or month grid.
type DayCell struct {
	Date    time.Time
	Visible []domain.Task
	More    int
	Total   int
}

// SortTimeline orders tasks by planned time ascending with unscheduled
// tasks last; ties fall back to sort order, then creation time.
func SortTimeline(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.PlannedTime != nil && b.PlannedTime != nil:
			if *a.PlannedTime != *b.PlannedTime {
				return *a.PlannedTime < *b.PlannedTime
			}
		case a.PlannedTime != nil:
			return true
		case b.PlannedTime != nil:
			return false
		}
		if a.SortOrder != nil && b.SortOrder != nil && *a.SortOrder != *b.SortOrder {
			return *a.SortOrder < *b.SortOrder
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return sorted
}

// SortManual orders tasks by their explicit sort order when both carry one,
// falling back to planned time with unscheduled tasks last. This is the
// ordering the list surface and the reorder swap operate on.
func SortManual(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.SortOrder != nil && b.SortOrder != nil {
			return *a.SortOrder < *b.SortOrder
		}
		switch {
		case a.PlannedTime != nil && b.PlannedTime != nil:
			return *a.PlannedTime < *b.PlannedTime
		case a.PlannedTime != nil:
			return true
		case b.PlannedTime != nil:
			return false
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return sorted
}

// ComposeDay lays out one day's scheduled tasks into hour buckets covering
// the visible window, with grid positions and advisory conflict flags.
func ComposeDay(tasks []domain.Task, zoom float64) []HourBucket {
	conflicts := Conflicts(tasks)

	buckets := make([]HourBucket, 0, (WindowEndMinutes-WindowStartMinutes)/60)
	byHour := make(map[int][]TimelineEntry)
	for _, t := range SortTimeline(tasks) {
		if !t.Scheduled() {
			continue
		}
		hour := t.PlannedTime.Hour()
		byHour[hour] = append(byHour[hour], TimelineEntry{
			Task:     t,
			Position: PositionOf(*t.PlannedTime, t.DurationMinutes(), zoom),
			Conflict: conflicts[t.ID],
		})
	}

	for hour := WindowStartMinutes / 60; hour < WindowEndMinutes/60; hour++ {
		buckets = append(buckets, HourBucket{Hour: hour, Entries: byHour[hour]})
	}
	return buckets
}

// ComposeWeek buckets tasks into the seven days of the week containing
// anchor, starting on Sunday.
func ComposeWeek(tasks []domain.Task, anchor time.Time) []DayCell {
	start := startOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	cells := make([]DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, composeCell(tasks, start.AddDate(0, 0, i), WeekCellCap))
	}
	return cells
}

// ComposeMonth buckets tasks into every day of anchor's month.
func ComposeMonth(tasks []domain.Task, anchor time.Time) []DayCell {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		cells = append(cells, composeCell(tasks, first.AddDate(0, 0, i), MonthCellCap))
	}
	return cells
}

func composeCell(tasks []domain.Task, date time.Time, limit int) DayCell {
	key := domain.DateKey(date)
	var dayTasks []domain.Task
	for _, t := range tasks {
		if domain.DateKey(t.PlannedDate) == key {
			dayTasks = append(dayTasks, t)
		}
	}
	dayTasks = SortTimeline(dayTasks)

	cell := DayCell{Date: date, Total: len(dayTasks)}
	if len(dayTasks) > limit {
		cell.Visible = dayTasks[:limit]
		cell.More = len(dayTasks) - limit
	} else {
		cell.Visible = dayTasks
	}
	return cell
}
