package domain

import "time"

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "High"
	EnergyMedium EnergyLevel = "Medium"
	EnergyLow    EnergyLevel = "Low"
)

type RecurrencePattern string

const (
	RecurrenceDaily    RecurrencePattern = "daily"
	RecurrenceWeekdays RecurrencePattern = "weekdays"
	RecurrenceWeekends RecurrencePattern = "weekends"
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurrenceDaily, RecurrenceWeekdays, RecurrenceWeekends, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// RecurrenceRule describes when an activity should automatically produce
// task instances. A nil EndDate means the projection horizon is open-ended
// and callers fall back to the default horizon.
type RecurrenceRule struct {
	Pattern RecurrencePattern
	EndDate *time.Time
}

// Activity is a reusable task definition owned by a user.
type Activity struct {
	ID                 string
	UserID             string
	Name               string
	DurationMinutes    int
	MinDurationMinutes int
	Tag                string
	EnergyLevel        EnergyLevel
	Recurrence         *RecurrenceRule
	LinkedActivityID   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateActivityInput struct {
	UserID             string
	Name               string
	DurationMinutes    int
	MinDurationMinutes int
	Tag                string
	EnergyLevel        EnergyLevel
	LinkedActivityID   *string
}

type UpdateActivityInput struct {
	Name                *string
	DurationMinutes     *int
	MinDurationMinutes  *int
	Tag                 *string
	EnergyLevel         *EnergyLevel
	LinkedActivityID    *string
	LinkedActivityIDSet bool
}
