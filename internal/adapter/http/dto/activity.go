package dto

type ActivityItem struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id,omitempty"`
	Name              string  `json:"name"`
	DurationMinutes   int     `json:"duration_minutes"`
	MinDuration       int     `json:"min_duration"`
	Tag               string  `json:"tag"`
	EnergyLevel       string  `json:"energy_level"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
	LinkedActivityID  *string `json:"linked_activity_id,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

type CreateActivityRequest struct {
	UserID           string  `json:"user_id" binding:"required"`
	Name             string  `json:"name" binding:"required,max=255"`
	DurationMinutes  int     `json:"duration_minutes" binding:"required,gt=0"`
	MinDuration      *int    `json:"min_duration" binding:"omitempty,gt=0"`
	Tag              string  `json:"tag" binding:"omitempty,max=64"`
	EnergyLevel      string  `json:"energy_level" binding:"required,oneof=High Medium Low"`
	LinkedActivityID *string `json:"linked_activity_id" binding:"omitempty,uuid"`
}

type UpdateActivityRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	DurationMinutes  *int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	MinDuration      *int    `json:"min_duration" binding:"omitempty,gt=0"`
	Tag              *string `json:"tag" binding:"omitempty,max=64"`
	EnergyLevel      *string `json:"energy_level" binding:"omitempty,oneof=High Medium Low"`
	LinkedActivityID *string `json:"linked_activity_id" binding:"omitempty,uuid"`
}

type SetRecurrenceRequest struct {
	Pattern string  `json:"pattern" binding:"required,oneof=daily weekdays weekends weekly monthly"`
	EndDate *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type SetRecurrenceResponse struct {
	Created int `json:"created"`
}
