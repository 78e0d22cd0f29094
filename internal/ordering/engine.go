// Package ordering holds the to-do list ordering state machine: insertion,
// removal, drag-to-reorder and the numeric sort toggle.
//
// An Engine is not safe for concurrent use. Callers forward one event at a
// time and read the order back after each.
package ordering

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"tasklist-widget/internal/model"
)

// Engine owns one TaskList, its sort direction and the active drag.
type Engine struct {
	tasks     []model.Task
	direction model.SortDirection
	sorted    bool
	dragging  string
	compare   Comparator
	newID     func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithComparator replaces NumericComparator.
func WithComparator(c Comparator) Option {
	return func(e *Engine) { e.compare = c }
}

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// New returns an empty engine sorting ascending.
func New(opts ...Option) *Engine {
	e := &Engine{
		direction: model.SortAscending,
		compare:   NumericComparator,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddTask appends a task with a fresh id. Blank labels fail with ErrValidation.
func (e *Engine) AddTask(label string) (model.Task, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.Task{}, ErrValidation
	}
	t := model.Task{ID: e.newID(), Label: label}
	e.tasks = append(e.tasks, t)
	return t, nil
}

// RemoveTask deletes the task with id and reports whether it existed.
// Unknown ids are ignored.
func (e *Engine) RemoveTask(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.tasks = slices.Delete(e.tasks, i, i+1)
	if e.dragging == id {
		e.dragging = ""
	}
	return true
}

// BeginDrag records id as the dragged task, replacing any earlier drag.
func (e *Engine) BeginDrag(id string) {
	e.dragging = id
}

// CompleteDrag moves the dragged task to sit immediately before targetID and
// consumes the drag. It reports whether the task changed position.
// Nothing happens without an active drag, when dropping a task on itself, or
// when either task is gone.
func (e *Engine) CompleteDrag(targetID string) bool {
	if e.dragging == "" || e.dragging == targetID {
		return false
	}
	from := e.indexOf(e.dragging)
	if from < 0 || e.indexOf(targetID) < 0 {
		return false
	}
	e.dragging = ""

	moved := e.tasks[from]
	e.tasks = slices.Delete(e.tasks, from, from+1)
	to := e.indexOf(targetID)
	e.tasks = slices.Insert(e.tasks, to, moved)
	return to != from
}

// EndDrag clears the drag whether or not a drop happened.
func (e *Engine) EndDrag() {
	e.dragging = ""
}

// Dragging returns the id of the task being dragged.
func (e *Engine) Dragging() (string, bool) {
	return e.dragging, e.dragging != ""
}

// ToggleSortDirection flips the direction and stable-sorts the list with it.
// The first call applies the initial ascending direction without flipping.
func (e *Engine) ToggleSortDirection() model.SortDirection {
	if e.sorted {
		e.direction = e.direction.Opposite()
	}
	e.sorted = true

	dir := e.direction
	slices.SortStableFunc(e.tasks, func(a, b model.Task) int {
		return e.compare(a, b, dir)
	})
	return dir
}

// Direction returns the current sort direction.
func (e *Engine) Direction() model.SortDirection {
	return e.direction
}

// CurrentOrder returns a copy of the list in display order.
func (e *Engine) CurrentOrder() []model.Task {
	return slices.Clone(e.tasks)
}

// Len returns the number of tasks.
func (e *Engine) Len() int {
	return len(e.tasks)
}

// State reports whether the list is empty.
func (e *Engine) State() model.ListState {
	if len(e.tasks) == 0 {
		return model.ListEmpty
	}
	return model.ListNonEmpty
}

func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.tasks, func(t model.Task) bool { return t.ID == id })
}
