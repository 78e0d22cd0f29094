package board

import (
	"errors"

	"tasklist-widget/internal/model"
	"tasklist-widget/internal/ordering"
)

// AddTask appends a task and switches to the list container. It does not
// look at the current mode: while the list is showing, the host forwards the
// add control to ShowInput and only submits labels from the input container.
func (b *Board) AddTask(label string) (model.Task, error) {
	t, err := b.Engine.AddTask(label)
	if errors.Is(err, ordering.ErrValidation) {
		return model.Task{}, ErrEmptyLabel
	}
	if err != nil {
		return model.Task{}, err
	}
	b.Mode = ModeList
	return t, nil
}

// RemoveTask deletes a task. Removing the last one brings the input back.
func (b *Board) RemoveTask(id string) bool {
	removed := b.Engine.RemoveTask(id)
	if b.Engine.State() == model.ListEmpty {
		b.Mode = ModeInput
	}
	return removed
}

// ShowInput is the add control pressed while the list is showing.
func (b *Board) ShowInput() {
	b.Mode = ModeInput
}

// MarkDiscarded retires the board. Callers that were waiting on the lock
// must treat it as gone. The caller must hold the lock.
func (b *Board) MarkDiscarded() {
	b.discarded = true
}

// Discarded reports whether MarkDiscarded was called. The caller must hold the lock.
func (b *Board) Discarded() bool {
	return b.discarded
}

// Snapshot reads the current state. The caller must hold the lock.
func (b *Board) Snapshot() Snapshot {
	dir := b.Engine.Direction()
	dragging, _ := b.Engine.Dragging()
	return Snapshot{
		BoardID:   b.ID,
		Tasks:     b.Engine.CurrentOrder(),
		Direction: dir,
		Display:   ordering.DisplayFor(dir),
		State:     b.Engine.State(),
		Mode:      b.Mode,
		Dragging:  dragging,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
