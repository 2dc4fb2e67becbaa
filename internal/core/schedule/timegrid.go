// Package schedule holds the time-layout and conflict-resolution engine:
// mapping between wall-clock time and the timeline coordinate space,
// overlap detection, drag-drop snapping, recurrence projection and the
// day/week/month view composition. Everything here is a pure function over
// a task snapshot owned by the caller.
package schedule

import (
	"flow/internal/core/domain"
)

const (
	// BaseHourUnits is the layout height of one hour at zoom 1.
	BaseHourUnits = 80.0

	// The visible scheduling window is [06:00, 24:00). The end of day is
	// half-open everywhere: 24:00 itself is out of the window.
	WindowStartMinutes = 6 * 60
	WindowEndMinutes   = 24 * 60

	MinZoom = 0.5
	MaxZoom = 2.0

	// MinExtentUnits is a presentation floor so short tasks stay clickable.
	// Conflict detection never uses it.
	MinExtentUnits = 40.0

	// SnapMinutes is the drag grid: resolved drops land on 15-minute marks.
	SnapMinutes = 15
)

// Position is a task's placement on the timeline surface.
type Position struct {
	Offset float64
	Extent float64
}

func clampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

func unitsPerHour(zoom float64) float64 {
	return BaseHourUnits * clampZoom(zoom)
}

// PositionOf maps a time-of-day and duration onto the timeline surface.
// Offset grows from the top of the 06:00 line at unitsPerHour per hour.
func PositionOf(t domain.TimeOfDay, durationMinutes int, zoom float64) Position {
	perHour := unitsPerHour(zoom)
	offset := float64(t.Minutes()-WindowStartMinutes) / 60.0 * perHour
	extent := float64(durationMinutes) / 60.0 * perHour
	if extent < MinExtentUnits {
		extent = MinExtentUnits
	}
	return Position{Offset: offset, Extent: extent}
}

// TimeAt inverts the offset mapping, returning raw minutes since midnight.
// The result is not snapped or window-checked; that is ResolveDrop's job.
func TimeAt(offset, zoom float64) float64 {
	return offset/unitsPerHour(zoom)*60.0 + WindowStartMinutes
}
