package usecase

import (
	"context"

	"tasklist-widget/internal/board"
)

// ToggleSort flips the sort direction and re-sorts the list.
func (uc *implUseCase) ToggleSort(ctx context.Context, boardID string) (board.Snapshot, error) {
	snap, err := uc.mutate(ctx, boardID, func(b *board.Board) error {
		b.Engine.ToggleSortDirection()
		return nil
	})
	if err != nil {
		return board.Snapshot{}, err
	}
	uc.l.Debugf(ctx, "uc.ToggleSort: board=%s direction=%s", boardID, snap.Direction)
	return snap, nil
}
