package apierrors

const (
	MsgFailListTask           = "errorListTask"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgTaskNotFound           = "taskNotFound"
	MsgTaskLocked             = "taskLocked"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgActivityNotFound       = "activityNotFound"
	MsgInvalidActivityID      = "invalidActivityID"
	MsgInvalidActivityPayload = "invalidActivityPayload"
	MsgFailListActivity       = "failListActivity"
	MsgFailCreateActivity     = "failCreateActivity"
	MsgFailUpdateActivity     = "failUpdateActivity"
	MsgInvalidRecurrence      = "invalidRecurrence"
	MsgFailSetRecurrence      = "failSetRecurrence"
	MsgFailTimeline           = "failTimeline"
	MsgFailSmartStart         = "failSmartStart"
	MsgNothingToSchedule      = "nothingToSchedule"
	MsgFailProposeSchedule    = "failProposeSchedule"
	MsgFailApplySchedule      = "failApplySchedule"
)
