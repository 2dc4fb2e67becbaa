package mapper

import (
	"time"

	"flow/internal/adapter/http/dto"
	"flow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		ActivityID:  task.ActivityID,
		UserID:      task.UserID,
		Status:      string(task.Status),
		PlannedDate: domain.DateKey(task.PlannedDate),
		SortOrder:   task.SortOrder,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.PlannedTime != nil {
		value := task.PlannedTime.String()
		item.PlannedTime = &value
	}

	if task.ActualDurationMinutes != nil {
		value := *task.ActualDurationMinutes
		item.ActualDuration = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.Activity != nil {
		activity := ToActivityItem(*task.Activity)
		item.Activity = &activity
	}

	return item
}
