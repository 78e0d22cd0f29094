package usecase

import (
	"context"

	"tasklist-widget/internal/board"
	"tasklist-widget/internal/model"
)

// AddTask appends a task to the board. Blank labels return ErrEmptyLabel and
// leave the board untouched.
func (uc *implUseCase) AddTask(ctx context.Context, input board.AddTaskInput) (board.AddTaskOutput, error) {
	var task model.Task
	snap, err := uc.mutate(ctx, input.BoardID, func(b *board.Board) error {
		var err error
		task, err = b.AddTask(input.Label)
		return err
	})
	if err != nil {
		return board.AddTaskOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.AddTask: board=%s task=%s size=%d", input.BoardID, task.ID, len(snap.Tasks))
	return board.AddTaskOutput{Task: task, Snapshot: snap}, nil
}

// RemoveTask deletes a task. Unknown task ids are not an error.
func (uc *implUseCase) RemoveTask(ctx context.Context, input board.RemoveTaskInput) (board.RemoveTaskOutput, error) {
	var removed bool
	snap, err := uc.mutate(ctx, input.BoardID, func(b *board.Board) error {
		removed = b.RemoveTask(input.TaskID)
		return nil
	})
	if err != nil {
		return board.RemoveTaskOutput{}, err
	}

	if !removed {
		uc.l.Debugf(ctx, "uc.RemoveTask: board=%s task=%s not present", input.BoardID, input.TaskID)
	}
	return board.RemoveTaskOutput{Removed: removed, Snapshot: snap}, nil
}

// ShowInput switches the board back to the input container.
func (uc *implUseCase) ShowInput(ctx context.Context, boardID string) (board.Snapshot, error) {
	return uc.mutate(ctx, boardID, func(b *board.Board) error {
		b.ShowInput()
		return nil
	})
}
