package schedule

import "flow/internal/core/domain"

// Conflicts reports which tasks overlap another task on the same day.
// Only Pending tasks with a planned time participate; intervals are
// half-open [start, start+duration), so tasks that merely touch do not
// conflict. Pairwise comparison is fine at daily task counts.
func Conflicts(tasks []domain.Task) map[string]bool {
	scheduled := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending && t.Scheduled() {
			scheduled = append(scheduled, t)
		}
	}

	conflicts := make(map[string]bool)
	for i := 0; i < len(scheduled); i++ {
		start1 := scheduled[i].PlannedTime.Minutes()
		end1 := start1 + scheduled[i].DurationMinutes()

		for j := i + 1; j < len(scheduled); j++ {
			start2 := scheduled[j].PlannedTime.Minutes()
			end2 := start2 + scheduled[j].DurationMinutes()

			if start1 < end2 && end1 > start2 {
				conflicts[scheduled[i].ID] = true
				conflicts[scheduled[j].ID] = true
			}
		}
	}

	return conflicts
}
