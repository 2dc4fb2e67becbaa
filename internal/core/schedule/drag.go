package schedule

import (
	"errors"
	"math"

	"flow/internal/core/domain"
)

// ErrOutsideWindow marks a drop whose snapped time falls outside the
// scheduling window. Callers treat it as a no-op cancellation: the task
// keeps its previous time and nothing is written.
var ErrOutsideWindow = errors.New("drop outside scheduling window")

// ResolveDrop converts a raw drop offset on the timeline surface into a
// validated, grid-snapped time-of-day. The window boundary is hard: times
// before 06:00 or at/after 24:00 are rejected, never clamped. Conflict
// checking is deliberately not done here; conflicts are advisory and a
// conflicting drop still succeeds.
func ResolveDrop(offset, zoom float64) (domain.TimeOfDay, error) {
	raw := TimeAt(offset, zoom)

	// Snap to the nearest 15-minute mark, rounding half up.
	snapped := int(math.Floor(raw/SnapMinutes+0.5)) * SnapMinutes

	if snapped < WindowStartMinutes || snapped >= WindowEndMinutes {
		return 0, ErrOutsideWindow
	}
	return domain.TimeOfDay(snapped), nil
}
