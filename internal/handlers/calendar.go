package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/dnd"
	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/benvon/smart-calendar/internal/session"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CalendarHandler forwards presentation intents to a calendar session
type CalendarHandler struct {
	session  *session.Session
	provider holidays.Provider
	loc      *time.Location
	logger   *zap.Logger

	// background holiday loads started by date changes
	loads sync.WaitGroup
}

// NewCalendarHandler creates a calendar handler. provider serves holiday
// lookups for years other than the displayed one and may be nil.
func NewCalendarHandler(s *session.Session, provider holidays.Provider, loc *time.Location, logger *zap.Logger) *CalendarHandler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarHandler{session: s, provider: provider, loc: loc, logger: logger}
}

// RegisterRoutes registers calendar routes on the given router.
// The router should already have the /calendar prefix.
func (h *CalendarHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.GetView).Methods("GET")
	r.HandleFunc("/date", h.SetDate).Methods("PUT")
	r.HandleFunc("/navigate", h.Navigate).Methods("POST")
	r.HandleFunc("/mode", h.SetMode).Methods("PUT")

	r.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	r.HandleFunc("/tasks", h.CreateTask).Methods("POST")
	r.HandleFunc("/tasks/{id}", h.UpdateTask).Methods("PATCH")
	r.HandleFunc("/filter", h.SetFilter).Methods("PUT")

	r.HandleFunc("/drag", h.GetDrag).Methods("GET")
	r.HandleFunc("/drag/start", h.DragStart).Methods("POST")
	r.HandleFunc("/drag/over", h.DragOver).Methods("POST")
	r.HandleFunc("/drag/end", h.DragEnd).Methods("POST")

	r.HandleFunc("/holidays", h.GetHolidays).Methods("GET")
}

// Wait blocks until background holiday loads have finished
func (h *CalendarHandler) Wait() {
	h.loads.Wait()
}

// GetView returns the grid of the current date and mode with visible tasks
// and holidays per day
func (h *CalendarHandler) GetView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.buildView())
}

// SetDate moves the reference date
func (h *CalendarHandler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req SetDateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	date, err := calendar.ParseDate(req.Date, h.loc)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid date")
		return
	}
	if h.session.SetDate(date) {
		h.refreshHolidays()
	}
	respondJSON(w, http.StatusOK, h.buildView())
}

// Navigate moves forward or back by whole months or weeks
func (h *CalendarHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if h.session.Navigate(req.Offset) {
		h.refreshHolidays()
	}
	respondJSON(w, http.StatusOK, h.buildView())
}

// SetMode switches between the month and week views
func (h *CalendarHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	mode, err := calendar.ParseMode(req.Mode)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	h.session.SetMode(mode)
	respondJSON(w, http.StatusOK, h.buildView())
}

// GetHolidays lists global holidays. Without ?year, or with the displayed
// year, the session's holidays are returned, loading them if needed.
func (h *CalendarHandler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	displayed := h.session.HolidaysYear()
	year := displayed
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 1 || parsed > 9999 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "year must be between 1 and 9999")
			return
		}
		year = parsed
	}

	if year == displayed {
		// A failed load is logged by the session and leaves the list empty.
		_ = h.session.LoadHolidays(r.Context())
		respondJSON(w, http.StatusOK, HolidaysResponse{Year: year, Holidays: nonNil(h.session.Holidays())})
		return
	}

	if h.provider == nil {
		respondJSON(w, http.StatusOK, HolidaysResponse{Year: year, Holidays: []models.PublicHoliday{}})
		return
	}
	list, err := h.provider.PublicHolidays(r.Context(), year)
	if err != nil {
		h.logger.Warn("holiday_lookup_failed",
			zap.Int("year", year),
			zap.String("error", logger.SanitizeError(err)),
		)
		respondJSONError(w, http.StatusBadGateway, "Bad Gateway", fmt.Sprintf("Failed to load holidays for %d", year))
		return
	}
	respondJSON(w, http.StatusOK, HolidaysResponse{Year: year, Holidays: nonNil(holidays.Global(list))})
}

// refreshHolidays loads the new year's holidays without blocking the request.
func (h *CalendarHandler) refreshHolidays() {
	h.loads.Add(1)
	go func() {
		defer h.loads.Done()
		_ = h.session.LoadHolidays(context.Background())
	}()
}

func (h *CalendarHandler) buildView() CalendarView {
	v := h.session.View()
	days := make([]DayView, 0, len(v.Days))
	for _, day := range v.Days {
		days = append(days, DayView{
			Date:           day.Date.Format(calendar.DateLayout),
			IsCurrentMonth: day.IsCurrentMonth,
			Tasks:          nonNil(session.TasksOn(v.Tasks, day.Date)),
			Holidays:       nonNil(holidays.Relevant(v.Holidays, day)),
		})
	}

	return CalendarView{
		Title:       v.Title,
		Mode:        string(v.Mode),
		Date:        v.Date.Format(calendar.DateLayout),
		Weekdays:    append([]string(nil), calendar.WeekdayHeaders...),
		Days:        days,
		FilterValue: v.FilterValue,
		Drag:        dragView(v.Active),
	}
}

func dragView(active *models.Task) DragView {
	if active == nil {
		return DragView{State: string(dnd.StateIdle)}
	}
	return DragView{State: string(dnd.StateDragging), Active: active}
}

// nonNil keeps empty lists as [] rather than null on the wire
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
