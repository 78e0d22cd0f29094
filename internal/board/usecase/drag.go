package usecase

import (
	"context"

	"tasklist-widget/internal/board"
)

// BeginDrag records which task is being dragged.
func (uc *implUseCase) BeginDrag(ctx context.Context, input board.BeginDragInput) (board.Snapshot, error) {
	return uc.mutate(ctx, input.BoardID, func(b *board.Board) error {
		b.Engine.BeginDrag(input.TaskID)
		return nil
	})
}

// CompleteDrag drops the dragged task in front of the target.
func (uc *implUseCase) CompleteDrag(ctx context.Context, input board.CompleteDragInput) (board.CompleteDragOutput, error) {
	var moved bool
	snap, err := uc.mutate(ctx, input.BoardID, func(b *board.Board) error {
		moved = b.Engine.CompleteDrag(input.TargetID)
		return nil
	})
	if err != nil {
		return board.CompleteDragOutput{}, err
	}
	return board.CompleteDragOutput{Moved: moved, Snapshot: snap}, nil
}

// EndDrag clears the drag, dropped or not.
func (uc *implUseCase) EndDrag(ctx context.Context, boardID string) (board.Snapshot, error) {
	return uc.mutate(ctx, boardID, func(b *board.Board) error {
		b.Engine.EndDrag()
		return nil
	})
}
