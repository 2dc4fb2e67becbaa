package service

import (
	"context"
	"time"

	"flow/internal/core/domain"
	"flow/internal/core/ports"
	"flow/internal/core/schedule"
)

type ActivityService struct {
	activityRepository ports.ActivityRepository
	taskRepository     ports.TaskRepository
}

func NewActivityService(activityRepository ports.ActivityRepository, taskRepository ports.TaskRepository) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		taskRepository:     taskRepository,
	}
}

var _ ports.ActivityService = (*ActivityService)(nil)

func (s *ActivityService) ListActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	return s.activityRepository.ListByUser(ctx, userID)
}

func (s *ActivityService) CreateActivity(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	if input.MinDurationMinutes <= 0 || input.MinDurationMinutes > input.DurationMinutes {
		input.MinDurationMinutes = input.DurationMinutes
	}
	return s.activityRepository.Create(ctx, input)
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activityID string, input domain.UpdateActivityInput) (domain.Activity, error) {
	if _, err := s.activityRepository.GetByID(ctx, activityID); err != nil {
		return domain.Activity{}, err
	}
	if err := s.activityRepository.UpdateFields(ctx, activityID, input); err != nil {
		return domain.Activity{}, err
	}
	return s.activityRepository.GetByID(ctx, activityID)
}

// SetRecurrence stores the rule on the activity and materializes the task
// instances it calls for, skipping dates that already have one. The
// existence check and the batch insert are two separate store calls, so
// two concurrent runs for the same activity can race and double-insert;
// last write wins at the store.
func (s *ActivityService) SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) (int, error) {
	if !rule.Pattern.Valid() {
		return 0, domain.ErrInvalidRecurrence
	}

	activity, err := s.activityRepository.GetByID(ctx, activityID)
	if err != nil {
		return 0, err
	}
	if err := s.activityRepository.SetRecurrence(ctx, activityID, rule); err != nil {
		return 0, err
	}

	existing, err := s.taskRepository.ExistingDates(ctx, activityID)
	if err != nil {
		return 0, err
	}

	dates := schedule.Project(rule, time.Now(), existing)
	if len(dates) == 0 {
		return 0, nil
	}

	inputs := make([]domain.CreateTaskInput, 0, len(dates))
	for _, date := range dates {
		inputs = append(inputs, domain.CreateTaskInput{
			ActivityID:  activity.ID,
			UserID:      activity.UserID,
			Status:      domain.TaskStatusPending,
			PlannedDate: date,
		})
	}
	if err := s.taskRepository.InsertMany(ctx, inputs); err != nil {
		return 0, err
	}
	return len(inputs), nil
}
