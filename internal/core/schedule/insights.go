package schedule

import (
	"sort"

	"flow/internal/core/domain"
)

// Insights summarizes a user's recent task history for the smart-start
// surface and for planner prompts.
type Insights struct {
	TopTags               []string
	AvgActualMinutes      *int
	TypicalEnergyAtHour   *domain.EnergyLevel
	CompletionRatePercent int
}

// Analyze derives history insights from recent tasks: the most-completed
// tags, the average actual completion time, the most frequent energy level
// among tasks planned for the current hour, and the overall completion rate.
func Analyze(history []domain.Task, now domain.TimeOfDay) Insights {
	var insights Insights
	if len(history) == 0 {
		return insights
	}

	var completed []domain.Task
	for _, t := range history {
		if t.Status == domain.TaskStatusCompleted {
			completed = append(completed, t)
		}
	}

	insights.TopTags = topTags(completed, 3)
	insights.CompletionRatePercent = len(completed) * 100 / len(history)

	var total, count int
	for _, t := range completed {
		if t.ActualDurationMinutes != nil {
			total += *t.ActualDurationMinutes
			count++
		}
	}
	if count > 0 {
		avg := (total + count/2) / count
		insights.AvgActualMinutes = &avg
	}

	if energy := typicalEnergyAt(history, now.Hour()); energy != "" {
		insights.TypicalEnergyAtHour = &energy
	}
	return insights
}

func topTags(tasks []domain.Task, limit int) []string {
	counts := make(map[string]int)
	for _, t := range tasks {
		tag := "Other"
		if t.Activity != nil && t.Activity.Tag != "" {
			tag = t.Activity.Tag
		}
		counts[tag]++
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// typicalEnergyAt picks the most frequent energy level among tasks planned
// for the given hour. Ties go to whichever level was seen first.
func typicalEnergyAt(history []domain.Task, hour int) domain.EnergyLevel {
	counts := make(map[domain.EnergyLevel]int)
	var order []domain.EnergyLevel
	for _, t := range history {
		if t.PlannedTime == nil || t.Activity == nil {
			continue
		}
		if t.PlannedTime.Hour() != hour {
			continue
		}
		if counts[t.Activity.EnergyLevel] == 0 {
			order = append(order, t.Activity.EnergyLevel)
		}
		counts[t.Activity.EnergyLevel]++
	}

	var best domain.EnergyLevel
	for _, level := range order {
		if best == "" || counts[level] > counts[best] {
			best = level
		}
	}
	return best
}
