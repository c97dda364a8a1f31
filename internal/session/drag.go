package session

import (
	"github.com/benvon/smart-calendar/internal/dnd"
	"github.com/benvon/smart-calendar/internal/models"
	"go.uber.org/zap"
)

// DragStart begins dragging item if it is a task
func (s *Session) DragStart(item models.DragItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.resolver.Start(item)
	s.logger.Debug("drag_start",
		zap.String("item_id", item.ID),
		zap.String("item_type", string(item.Type)),
		zap.Bool("accepted", ok),
	)
	return ok
}

// DragOver applies a drag-over event. Store changes refresh the filtered view.
func (s *Session) DragOver(active models.DragItem, over *models.DragItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resolver.Over(active, over) {
		return false
	}
	s.refilterLocked()
	return true
}

// DragEnd finishes the current drag
func (s *Session) DragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolver.End()
}

// DragState returns the resolver state and the dragged task, if any
func (s *Session) DragState() (dnd.State, *models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.State(), s.resolver.Active()
}
