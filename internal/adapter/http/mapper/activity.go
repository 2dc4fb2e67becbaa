package mapper

import (
	"time"

	"flow/internal/adapter/http/dto"
	"flow/internal/core/domain"
)

func ToActivityItems(activities []domain.Activity) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ToActivityItem(activity))
	}
	return items
}

func ToActivityItem(activity domain.Activity) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:               activity.ID,
		UserID:           activity.UserID,
		Name:             activity.Name,
		DurationMinutes:  activity.DurationMinutes,
		MinDuration:      activity.MinDurationMinutes,
		Tag:              activity.Tag,
		EnergyLevel:      string(activity.EnergyLevel),
		LinkedActivityID: activity.LinkedActivityID,
	}

	if !activity.CreatedAt.IsZero() {
		item.CreatedAt = activity.CreatedAt.Format(time.RFC3339)
	}
	if !activity.UpdatedAt.IsZero() {
		item.UpdatedAt = activity.UpdatedAt.Format(time.RFC3339)
	}

	if activity.Recurrence != nil {
		pattern := string(activity.Recurrence.Pattern)
		item.RecurrencePattern = &pattern
		if activity.Recurrence.EndDate != nil {
			endDate := domain.DateKey(*activity.Recurrence.EndDate)
			item.RecurrenceEndDate = &endDate
		}
	}

	return item
}
