package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrTaskTerminal      = errors.New("task already completed or skipped")
	ErrInvalidTime       = errors.New("invalid time of day")
	ErrInvalidRecurrence = errors.New("invalid recurrence pattern")
	ErrNothingToSchedule = errors.New("no tasks to schedule")
)
