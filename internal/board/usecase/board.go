package usecase

import (
	"context"

	"tasklist-widget/internal/board"
	repo "tasklist-widget/internal/board/repository"
)

// Create starts a new, empty board.
func (uc *implUseCase) Create(ctx context.Context) (board.Snapshot, error) {
	b, err := uc.repo.CreateBoard(ctx, repo.CreateBoardOptions{EngineOptions: uc.engineOpts})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBoard: %v", err)
		return board.Snapshot{}, err
	}

	b.Lock()
	defer b.Unlock()
	uc.l.Infof(ctx, "uc.Create: board=%s", b.ID)
	return b.Snapshot(), nil
}

// Get returns the current state of a board.
func (uc *implUseCase) Get(ctx context.Context, boardID string) (board.Snapshot, error) {
	return uc.read(ctx, boardID)
}

// Discard drops a board. Returns ErrBoardNotFound when it is already gone.
// Events already waiting on the board lock see it as gone too.
func (uc *implUseCase) Discard(ctx context.Context, boardID string) error {
	existing, err := uc.repo.GetBoard(ctx, boardID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Discard GetBoard: %v", err)
		return err
	}
	if existing == nil {
		return board.ErrBoardNotFound
	}

	existing.Lock()
	defer existing.Unlock()
	if existing.Discarded() {
		return board.ErrBoardNotFound
	}
	existing.MarkDiscarded()

	if err := uc.repo.DeleteBoard(ctx, boardID); err != nil {
		uc.l.Errorf(ctx, "uc.Discard DeleteBoard: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Discard: board=%s", boardID)
	return nil
}

// Stats reports store usage for health checks.
func (uc *implUseCase) Stats(ctx context.Context) board.Stats {
	return board.Stats{LiveBoards: uc.repo.CountBoards(ctx)}
}
