package handlers

import (
	"net/http"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ListTasks returns the filtered task view in store order. ?scope=all
// returns every task regardless of the filter.
func (h *CalendarHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	switch scope := r.URL.Query().Get("scope"); scope {
	case "", "visible":
		respondJSON(w, http.StatusOK, nonNil(h.session.VisibleTasks()))
	case "all":
		respondJSON(w, http.StatusOK, nonNil(h.session.AllTasks()))
	default:
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "scope must be 'visible' or 'all'")
	}
}

// CreateTask adds a task to the given day
func (h *CalendarHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	date, err := calendar.ParseDate(req.Date, h.loc)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid date")
		return
	}

	task, ok := h.session.AddTask(req.Text, models.Day{Date: date})
	if !ok {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Text is required and cannot be empty after sanitization")
		return
	}
	h.logger.Info("task_created",
		zap.String("task_id", task.ID),
		zap.String("date", req.Date),
	)
	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask replaces a task's text
func (h *CalendarHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.session.Task(id); !ok {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}

	var req UpdateTaskRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !h.session.EditTask(id, req.Text) {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Text is required and cannot be empty after sanitization")
		return
	}

	task, ok := h.session.Task(id)
	if !ok {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}
	h.logger.Info("task_updated", zap.String("task_id", logger.SanitizeTaskID(id)))
	respondJSON(w, http.StatusOK, task)
}

// SetFilter records the filter input. The visible tasks are recomputed once
// input has been quiet for the debounce window, hence 202.
func (h *CalendarHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.session.SetFilter(req.Query)
	respondJSON(w, http.StatusAccepted, FilterResponse{FilterValue: req.Query})
}
