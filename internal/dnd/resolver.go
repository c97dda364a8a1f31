// Package dnd turns abstract drag events into task store commands.
package dnd

import (
	"time"

	"github.com/benvon/smart-calendar/internal/models"
)

// Store is the subset of the task store the resolver drives
type Store interface {
	Get(id string) (models.Task, bool)
	IndexOf(id string) int
	ReassignDate(id string, date time.Time) bool
	Swap(i, j int) bool
}

// State is the resolver's interaction state
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

// Resolver tracks the active drag and applies drag-over intents eagerly, so
// an aborted drag leaves the task where it was last hovered.
type Resolver struct {
	store  Store
	active *models.Task
}

// NewResolver creates an idle resolver over store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// State reports whether a drag is in progress
func (r *Resolver) State() State {
	if r.active != nil {
		return StateDragging
	}
	return StateIdle
}

// Active returns a copy of the dragged task for overlay rendering, or nil.
func (r *Resolver) Active() *models.Task {
	if r.active == nil {
		return nil
	}
	task := *r.active
	return &task
}

// Start begins a drag. Only regular tasks can be dragged; anything else
// leaves the resolver idle and Start reports false.
func (r *Resolver) Start(item models.DragItem) bool {
	if item.Type != models.ItemTypeTask {
		return false
	}

	task, ok := r.store.Get(item.ID)
	if !ok {
		if item.Task == nil {
			return false
		}
		task = *item.Task
	}
	if task.IsPublicHoliday {
		return false
	}

	r.active = &task
	return true
}

// Over applies a drag-over event and reports whether the store changed.
//
// Hovering another task moves the dragged task to that task's date and swaps
// their positions. Hovering a day cell moves it to the cell's date and keeps
// its position.
func (r *Resolver) Over(active models.DragItem, over *models.DragItem) bool {
	if over == nil || over.ID == active.ID {
		return false
	}
	if active.Type != models.ItemTypeTask {
		return false
	}

	var changed bool
	switch over.Type {
	case models.ItemTypeTask:
		changed = r.overTask(active.ID, over.ID)
	case models.ItemTypeDay:
		if over.Day == nil {
			return false
		}
		changed = r.store.ReassignDate(active.ID, over.Day.Date)
	}

	if changed {
		r.refreshActive(active.ID)
	}
	return changed
}

// End finishes the drag regardless of where it ended.
func (r *Resolver) End() {
	r.active = nil
}

func (r *Resolver) overTask(activeID, overID string) bool {
	activeIndex := r.store.IndexOf(activeID)
	overIndex := r.store.IndexOf(overID)
	if activeIndex < 0 || overIndex < 0 {
		return false
	}
	target, ok := r.store.Get(overID)
	if !ok {
		return false
	}

	if !r.store.ReassignDate(activeID, target.Date) {
		return false
	}
	r.store.Swap(activeIndex, overIndex)
	return true
}

func (r *Resolver) refreshActive(id string) {
	if r.active == nil || r.active.ID != id {
		return
	}
	if task, ok := r.store.Get(id); ok {
		r.active = &task
	}
}
