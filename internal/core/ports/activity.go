package ports

import (
	"context"

	"flow/internal/core/domain"
)

type ActivityRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Activity, error)
	GetByID(ctx context.Context, activityID string) (domain.Activity, error)
	Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error)
	UpdateFields(ctx context.Context, activityID string, input domain.UpdateActivityInput) error
	SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) error
}

type ActivityService interface {
	ListActivities(ctx context.Context, userID string) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activityID string, input domain.UpdateActivityInput) (domain.Activity, error)

	// SetRecurrence persists the rule on the activity and immediately
	// projects the missing task instances. Returns how many were created.
	SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) (int, error)
}
