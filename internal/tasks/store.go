// Package tasks holds the ordered, in-memory task collection of a calendar session.
package tasks

import (
	"sync"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
	"github.com/benvon/smart-calendar/internal/validation"
	"github.com/google/uuid"
)

// Store is an ordered sequence of tasks. Order is the tie-break for rendering
// within a day and is what drag reordering permutes.
type Store struct {
	mu    sync.RWMutex
	tasks []models.Task
	newID func() string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add appends a task for day. Text that is empty after sanitization is
// discarded and Add reports false.
func (s *Store) Add(text string, day models.Day) (models.Task, bool) {
	text = validation.SanitizeText(text)
	if text == "" {
		return models.Task{}, false
	}

	task := models.Task{
		ID:   s.newID(),
		Text: text,
		Date: day.Date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return task, true
}

// EditText replaces the text of the task with the given id. It reports false
// when no such task exists or the new text is empty after sanitization.
func (s *Store) EditText(id, text string) bool {
	text = validation.SanitizeText(text)
	if text == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Text = text
	return true
}

// ReassignDate moves the task with the given id to date, keeping its position.
func (s *Store) ReassignDate(id string, date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Date = date
	return true
}

// Swap exchanges the tasks at positions i and j. Out of range indexes are a no-op.
func (s *Store) Swap(i, j int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || j < 0 || i >= len(s.tasks) || j >= len(s.tasks) {
		return false
	}
	s.tasks[i], s.tasks[j] = s.tasks[j], s.tasks[i]
	return true
}

// IndexOf returns the position of the task with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id)
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Snapshot returns a copy of the current order. Callers may keep it; later
// mutations of the store never show through.
func (s *Store) Snapshot() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
