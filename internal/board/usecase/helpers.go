package usecase

import (
	"context"

	"tasklist-widget/internal/board"
)

// mutate runs fn on the board under its lock, then saves it so the idle
// timer restarts. fn errors are returned unchanged and nothing is saved.
func (uc *implUseCase) mutate(ctx context.Context, boardID string, fn func(b *board.Board) error) (board.Snapshot, error) {
	b, err := uc.repo.GetBoard(ctx, boardID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.mutate GetBoard: %v", err)
		return board.Snapshot{}, err
	}
	if b == nil {
		return board.Snapshot{}, board.ErrBoardNotFound
	}

	b.Lock()
	defer b.Unlock()
	if b.Discarded() {
		return board.Snapshot{}, board.ErrBoardNotFound
	}

	if err := fn(b); err != nil {
		return board.Snapshot{}, err
	}
	b.UpdatedAt = uc.now()

	if err := uc.repo.SaveBoard(ctx, b); err != nil {
		uc.l.Errorf(ctx, "uc.mutate SaveBoard: %v", err)
		return board.Snapshot{}, err
	}
	return b.Snapshot(), nil
}

// read takes a snapshot under the board lock without touching the store.
func (uc *implUseCase) read(ctx context.Context, boardID string) (board.Snapshot, error) {
	b, err := uc.repo.GetBoard(ctx, boardID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.read GetBoard: %v", err)
		return board.Snapshot{}, err
	}
	if b == nil {
		return board.Snapshot{}, board.ErrBoardNotFound
	}

	b.Lock()
	defer b.Unlock()
	if b.Discarded() {
		return board.Snapshot{}, board.ErrBoardNotFound
	}
	return b.Snapshot(), nil
}
