package dto

type ProposeScheduleRequest struct {
	UserID         string  `json:"user_id" binding:"required"`
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	AvailableHours float64 `json:"available_hours" binding:"omitempty,gt=0,lte=24"`
	StartTime      *string `json:"start_time" binding:"omitempty,datetime=15:04"`
}

type ScheduledSlotItem struct {
	TaskID      string `json:"task_id" binding:"required,uuid"`
	PlannedTime string `json:"planned_time" binding:"required,datetime=15:04"`
	SortOrder   int    `json:"sort_order" binding:"gte=0"`
}

type ProposeScheduleResponse struct {
	Scheduled []ScheduledSlotItem `json:"scheduled"`
}

type ApplyScheduleRequest struct {
	Scheduled []ScheduledSlotItem `json:"scheduled" binding:"required,min=1,dive"`
}

type SmartStartResponse struct {
	TopTags             []string `json:"top_tags"`
	AvgActualMinutes    *int     `json:"avg_actual_minutes,omitempty"`
	TypicalEnergyAtHour *string  `json:"typical_energy_at_hour,omitempty"`
	CompletionRate      int      `json:"completion_rate"`
}
