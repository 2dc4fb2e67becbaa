package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"flow/internal/adapter/http/dto"
	"flow/internal/core/domain"
)

var ErrInvalidActivityPayload = errors.New("invalid activity payload")

func BuildUpdateActivityInput(req dto.UpdateActivityRequest, raw map[string]json.RawMessage) (domain.UpdateActivityInput, error) {
	if !hasActivityUpdateFields(raw) {
		return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
	}

	var input domain.UpdateActivityInput

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.Name = &name
	}

	if hasJSONField(raw, "duration_minutes") {
		if req.DurationMinutes == nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.DurationMinutes = req.DurationMinutes
	}

	if hasJSONField(raw, "min_duration") {
		if req.MinDuration == nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.MinDurationMinutes = req.MinDuration
	}

	if hasJSONField(raw, "tag") {
		if req.Tag == nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.Tag = req.Tag
	}

	if hasJSONField(raw, "energy_level") {
		if req.EnergyLevel == nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		energy := domain.EnergyLevel(*req.EnergyLevel)
		input.EnergyLevel = &energy
	}

	if hasJSONField(raw, "linked_activity_id") {
		input.LinkedActivityIDSet = true
		if !isJSONNull(raw["linked_activity_id"]) {
			if req.LinkedActivityID == nil {
				return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
			}
			input.LinkedActivityID = req.LinkedActivityID
		}
	}

	// min_duration may not exceed the planned duration when both change.
	if input.DurationMinutes != nil && input.MinDurationMinutes != nil &&
		*input.MinDurationMinutes > *input.DurationMinutes {
		return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
	}

	return input, nil
}

func hasActivityUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "duration_minutes") ||
		hasJSONField(raw, "min_duration") ||
		hasJSONField(raw, "tag") ||
		hasJSONField(raw, "energy_level") ||
		hasJSONField(raw, "linked_activity_id")
}
