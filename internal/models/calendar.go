package models

// CalendarMode represents how many days the calendar shows at once
type CalendarMode string

const (
	CalendarModeMonth CalendarMode = "month"
	CalendarModeWeek  CalendarMode = "week"
)

// ItemType identifies what a drag item refers to
type ItemType string

const (
	ItemTypeTask ItemType = "task"
	ItemTypeDay  ItemType = "day"
)

// DragItem is an abstract drag participant reported by the interaction layer.
// Task is set for task items and Day for day cells.
type DragItem struct {
	ID   string   `json:"id"`
	Type ItemType `json:"type"`
	Task *Task    `json:"task,omitempty"`
	Day  *Day     `json:"day,omitempty"`
}
