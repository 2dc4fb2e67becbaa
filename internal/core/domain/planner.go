package domain

// SchedulingRequest is handed to an external planning collaborator. The
// collaborator only proposes; committing a proposal goes through the same
// re-time path as a manual drag.
type SchedulingRequest struct {
	Tasks          []Task
	AvailableHours float64
	StartTime      TimeOfDay
}

// ScheduledSlot is one proposed placement for a pending task.
type ScheduledSlot struct {
	TaskID      string
	PlannedTime TimeOfDay
	SortOrder   int
}
