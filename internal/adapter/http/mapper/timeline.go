package mapper

import (
	"sort"

	"flow/internal/adapter/http/dto"
	"flow/internal/core/domain"
	"flow/internal/core/ports"
)

func ToTimelineResponse(view ports.TimelineView, viewMode string) dto.TimelineResponse {
	resp := dto.TimelineResponse{
		Date: domain.DateKey(view.Date),
		View: viewMode,
	}

	for _, bucket := range view.Hours {
		item := dto.HourBucketItem{Hour: bucket.Hour, Entries: []dto.TimelineEntryItem{}}
		for _, entry := range bucket.Entries {
			item.Entries = append(item.Entries, dto.TimelineEntryItem{
				Task:     ToTaskItem(entry.Task),
				Offset:   entry.Position.Offset,
				Extent:   entry.Position.Extent,
				Conflict: entry.Conflict,
			})
		}
		resp.Hours = append(resp.Hours, item)
	}

	for _, cell := range view.Cells {
		resp.Cells = append(resp.Cells, dto.DayCellItem{
			Date:  domain.DateKey(cell.Date),
			Tasks: ToTaskItems(cell.Visible),
			More:  cell.More,
			Total: cell.Total,
		})
	}

	if len(view.Conflicts) > 0 {
		conflicts := make([]string, len(view.Conflicts))
		copy(conflicts, view.Conflicts)
		sort.Strings(conflicts)
		resp.Conflicts = conflicts
	}

	return resp
}
