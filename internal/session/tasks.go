package session

import (
	"time"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/filter"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/models"
	"go.uber.org/zap"
)

// AddTask creates a task on day. Blank text is discarded.
func (s *Session) AddTask(text string, day models.Day) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.store.Add(text, day)
	if !ok {
		s.logger.Debug("add_task_discarded_empty_text")
		return models.Task{}, false
	}
	s.logger.Debug("task_added",
		zap.String("task_id", task.ID),
		zap.String("date", task.Date.Format(calendar.DateLayout)),
	)
	s.refilterLocked()
	return task, true
}

// EditTask replaces a task's text. A missing id is a benign no-op.
func (s *Session) EditTask(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.EditText(id, text) {
		s.logger.Debug("edit_task_ignored", zap.String("task_id", id))
		return false
	}
	s.refilterLocked()
	return true
}

// Task returns the task with the given id
func (s *Session) Task(id string) (models.Task, bool) {
	return s.store.Get(id)
}

// AllTasks returns the unfiltered store contents in order
func (s *Session) AllTasks() []models.Task {
	return s.store.Snapshot()
}

// VisibleTasks returns the current filtered view
func (s *Session) VisibleTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.filtered...)
}

// TasksOn returns the visible tasks dated on day, in store order.
func (s *Session) TasksOn(day time.Time) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TasksOn(s.filtered, day)
}

// TasksOn picks the tasks of list falling on day
func TasksOn(list []models.Task, day time.Time) []models.Task {
	var result []models.Task
	for _, task := range list {
		if calendar.SameDay(task.Date, day) {
			result = append(result, task)
		}
	}
	return result
}

// SetFilter records the raw filter input and schedules a debounced
// recomputation with the latest value.
func (s *Session) SetFilter(value string) {
	s.mu.Lock()
	s.filterValue = value
	s.mu.Unlock()
	s.debouncer.Trigger(value)
}

// FilterValue returns the raw filter input
func (s *Session) FilterValue() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterValue
}

// applyFilter runs when the debounce window elapses. It reads the store as it
// is now, not as it was when the input arrived.
func (s *Session) applyFilter(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = filter.Tasks(s.store.Snapshot(), query)
	s.logger.Debug("filter_applied",
		zap.String("query", logger.SanitizeText(query)),
		zap.Int("visible_tasks", len(s.filtered)),
	)
}

// refilterLocked recomputes the filtered view after a store change.
func (s *Session) refilterLocked() {
	s.filtered = filter.Tasks(s.store.Snapshot(), s.filterValue)
}
