package dto

type TaskItem struct {
	ID             string        `json:"id"`
	ActivityID     string        `json:"activity_id"`
	UserID         string        `json:"user_id"`
	Status         string        `json:"status"`
	PlannedDate    string        `json:"planned_date"`
	PlannedTime    *string       `json:"planned_time,omitempty"`
	SortOrder      *int          `json:"sort_order,omitempty"`
	ActualDuration *int          `json:"actual_duration,omitempty"`
	CompletedAt    *string       `json:"completed_at,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	Activity       *ActivityItem `json:"activity,omitempty"`
}

type CreateTaskRequest struct {
	ActivityID  string  `json:"activity_id" binding:"required,uuid"`
	UserID      string  `json:"user_id" binding:"required"`
	PlannedDate string  `json:"planned_date" binding:"required,datetime=2006-01-02"`
	PlannedTime *string `json:"planned_time" binding:"omitempty,datetime=15:04"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	Status      *string `json:"status" binding:"omitempty,oneof=Pending Completed Skipped"`
	PlannedDate *string `json:"planned_date" binding:"omitempty,datetime=2006-01-02"`
	PlannedTime *string `json:"planned_time" binding:"omitempty,datetime=15:04"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,gte=0"`
}

type CompleteTaskRequest struct {
	ActualDuration *int `json:"actual_duration" binding:"omitempty,gt=0"`
}

type CompleteTaskResponse struct {
	Task    TaskItem  `json:"task"`
	Chained *TaskItem `json:"chained,omitempty"`
}

type DropTaskRequest struct {
	Offset float64 `json:"offset"`
	Zoom   float64 `json:"zoom" binding:"omitempty,gte=0.5,lte=2"`
}

type DropTaskResponse struct {
	Moved       bool    `json:"moved"`
	PlannedTime *string `json:"planned_time,omitempty"`
}

type ReorderTasksRequest struct {
	TaskID      string `json:"task_id" binding:"required,uuid"`
	OtherTaskID string `json:"other_task_id" binding:"required,uuid"`
}
