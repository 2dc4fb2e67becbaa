package ports

import (
	"context"

	"flow/internal/core/domain"
)

// SchedulePlanner is the external scheduling collaborator. It only proposes
// placements; nothing it returns is trusted until committed through the
// task service's regular re-time path.
type SchedulePlanner interface {
	Propose(ctx context.Context, req domain.SchedulingRequest) ([]domain.ScheduledSlot, error)
}
