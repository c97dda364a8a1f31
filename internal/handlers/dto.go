package handlers

import (
	"github.com/benvon/smart-calendar/internal/models"
)

// MaxTaskTextLength is the maximum length for task text
const MaxTaskTextLength = 1000

// SetDateRequest moves the reference date
type SetDateRequest struct {
	Date string `json:"date" validate:"required,ymd"`
}

// NavigateRequest moves by offset months or weeks, depending on the mode
type NavigateRequest struct {
	Offset int `json:"offset" validate:"min=-1200,max=1200"`
}

// SetModeRequest switches the view mode
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,calendar_mode"`
}

// CreateTaskRequest adds a task to a day
type CreateTaskRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
	Date string `json:"date" validate:"required,ymd"`
}

// UpdateTaskRequest edits a task's text
type UpdateTaskRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// FilterRequest carries the raw filter input
type FilterRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// DragItemRequest is a drag participant. Date is required for day items.
type DragItemRequest struct {
	ID   string `json:"id" validate:"required,max=64"`
	Type string `json:"type" validate:"required,item_type"`
	Date string `json:"date,omitempty" validate:"omitempty,ymd"`
}

// DragStartRequest begins a drag
type DragStartRequest struct {
	Active DragItemRequest `json:"active"`
}

// DragOverRequest reports the item under the pointer. A missing over means
// the pointer is over nothing.
type DragOverRequest struct {
	Active DragItemRequest  `json:"active"`
	Over   *DragItemRequest `json:"over"`
}

// DayView is one grid cell with its visible tasks and holidays
type DayView struct {
	Date           string                 `json:"date"`
	IsCurrentMonth bool                   `json:"is_current_month"`
	Tasks          []models.Task          `json:"tasks"`
	Holidays       []models.PublicHoliday `json:"holidays"`
}

// DragView is the resolver state and the overlay payload
type DragView struct {
	State  string       `json:"state"`
	Active *models.Task `json:"active"`
}

// CalendarView is the full render state
type CalendarView struct {
	Title       string    `json:"title"`
	Mode        string    `json:"mode"`
	Date        string    `json:"date"`
	Weekdays    []string  `json:"weekdays"`
	Days        []DayView `json:"days"`
	FilterValue string    `json:"filter_value"`
	Drag        DragView  `json:"drag"`
}

// DragStartResponse reports whether the drag began
type DragStartResponse struct {
	Accepted bool     `json:"accepted"`
	Drag     DragView `json:"drag"`
}

// DragOverResponse reports whether the store changed and the new visible order
type DragOverResponse struct {
	Changed bool          `json:"changed"`
	Drag    DragView      `json:"drag"`
	Tasks   []models.Task `json:"tasks"`
}

// FilterResponse acknowledges filter input; the view updates after the debounce window
type FilterResponse struct {
	FilterValue string `json:"filter_value"`
}

// HolidaysResponse lists the global holidays of a year
type HolidaysResponse struct {
	Year     int                    `json:"year"`
	Holidays []models.PublicHoliday `json:"holidays"`
}
