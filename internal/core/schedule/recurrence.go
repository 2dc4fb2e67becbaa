package schedule

import (
	"time"

	"flow/internal/core/domain"
)

// DefaultHorizonMonths bounds open-ended recurrence rules: without an end
// date, instances are projected three months out from the anchor.
const DefaultHorizonMonths = 3

// Horizon resolves the last candidate date for a rule anchored at anchor.
func Horizon(rule domain.RecurrenceRule, anchor time.Time) time.Time {
	if rule.EndDate != nil {
		return startOfDay(*rule.EndDate)
	}
	return startOfDay(anchor).AddDate(0, DefaultHorizonMonths, 0)
}

// Project expands a recurrence rule into the calendar dates, between the
// anchor and the horizon inclusive, that still need a task instance.
// existing holds date keys (see domain.DateKey) of instances already stored
// for the activity, so re-running the projection is idempotent.
func Project(rule domain.RecurrenceRule, anchor time.Time, existing map[string]bool) []time.Time {
	start := startOfDay(anchor)
	end := Horizon(rule, anchor)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !occursOn(rule.Pattern, d, start) {
			continue
		}
		if existing[domain.DateKey(d)] {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func occursOn(pattern domain.RecurrencePattern, d, anchor time.Time) bool {
	switch pattern {
	case domain.RecurrenceDaily:
		return true
	case domain.RecurrenceWeekdays:
		wd := d.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case domain.RecurrenceWeekends:
		wd := d.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case domain.RecurrenceWeekly:
		return d.Weekday() == anchor.Weekday()
	case domain.RecurrenceMonthly:
		return d.Day() == anchor.Day()
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
