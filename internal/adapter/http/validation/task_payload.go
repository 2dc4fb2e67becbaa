package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"flow/internal/adapter/http/dto"
	"flow/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildUpdateTaskInput converts a PATCH request into a partial update,
// distinguishing "field absent" from "field explicitly null": planned_time
// and sort_order may be cleared with a JSON null, status and planned_date
// may not.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	if hasJSONField(raw, "planned_date") {
		if req.PlannedDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		plannedDate, err := time.Parse("2006-01-02", *req.PlannedDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.PlannedDate = &plannedDate
	}

	if hasJSONField(raw, "planned_time") {
		input.PlannedTimeSet = true
		if !isJSONNull(raw["planned_time"]) {
			if req.PlannedTime == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			plannedTime, err := domain.ParseTimeOfDay(*req.PlannedTime)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.PlannedTime = &plannedTime
		}
	}

	if hasJSONField(raw, "sort_order") {
		input.SortOrderSet = true
		if !isJSONNull(raw["sort_order"]) {
			if req.SortOrder == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.SortOrder = req.SortOrder
		}
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "status") ||
		hasJSONField(raw, "planned_date") ||
		hasJSONField(raw, "planned_time") ||
		hasJSONField(raw, "sort_order")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
