package handlers

import (
	"errors"
	"net/http"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/benvon/smart-calendar/internal/validation"
)

var errDayDateRequired = errors.New("date is required for day items")

// GetDrag returns the resolver state and overlay payload
func (h *CalendarHandler) GetDrag(w http.ResponseWriter, r *http.Request) {
	_, active := h.session.DragState()
	respondJSON(w, http.StatusOK, dragView(active))
}

// DragStart begins dragging a task. Non-task items and public holidays are
// not draggable; the response then reports accepted=false.
func (h *CalendarHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	var req DragStartRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	item, err := h.toDragItem(req.Active)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	accepted := h.session.DragStart(item)
	_, active := h.session.DragState()
	respondJSON(w, http.StatusOK, DragStartResponse{Accepted: accepted, Drag: dragView(active)})
}

// DragOver applies a drag-over event. The store changes immediately, not on drop.
func (h *CalendarHandler) DragOver(w http.ResponseWriter, r *http.Request) {
	var req DragOverRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	active, err := h.toDragItem(req.Active)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	var over *models.DragItem
	if req.Over != nil {
		item, err := h.toDragItem(*req.Over)
		if err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		over = &item
	}

	changed := h.session.DragOver(active, over)
	_, activeTask := h.session.DragState()
	respondJSON(w, http.StatusOK, DragOverResponse{
		Changed: changed,
		Drag:    dragView(activeTask),
		Tasks:   nonNil(h.session.VisibleTasks()),
	})
}

// DragEnd finishes the drag. Changes made while hovering are kept.
func (h *CalendarHandler) DragEnd(w http.ResponseWriter, r *http.Request) {
	h.session.DragEnd()
	respondJSON(w, http.StatusOK, dragView(nil))
}

func (h *CalendarHandler) toDragItem(req DragItemRequest) (models.DragItem, error) {
	if err := validation.ValidateItemType(req.Type); err != nil {
		return models.DragItem{}, err
	}
	item := models.DragItem{ID: req.ID, Type: models.ItemType(req.Type)}

	switch item.Type {
	case models.ItemTypeTask:
		if task, ok := h.session.Task(req.ID); ok {
			item.Task = &task
		}
	case models.ItemTypeDay:
		if req.Date == "" {
			return models.DragItem{}, errDayDateRequired
		}
		date, err := calendar.ParseDate(req.Date, h.loc)
		if err != nil {
			return models.DragItem{}, err
		}
		item.Day = &models.Day{Date: date}
	}
	return item, nil
}
