package dto

type TimelineEntryItem struct {
	Task     TaskItem `json:"task"`
	Offset   float64  `json:"offset"`
	Extent   float64  `json:"extent"`
	Conflict bool     `json:"conflict"`
}

type HourBucketItem struct {
	Hour    int                 `json:"hour"`
	Entries []TimelineEntryItem `json:"entries"`
}

type DayCellItem struct {
	Date  string     `json:"date"`
	Tasks []TaskItem `json:"tasks"`
	More  int        `json:"more"`
	Total int        `json:"total"`
}

type TimelineResponse struct {
	Date      string           `json:"date"`
	View      string           `json:"view"`
	Hours     []HourBucketItem `json:"hours,omitempty"`
	Cells     []DayCellItem    `json:"cells,omitempty"`
	Conflicts []string         `json:"conflicts,omitempty"`
}
