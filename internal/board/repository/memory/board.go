package memory

import (
	"context"

	"github.com/google/uuid"

	"tasklist-widget/internal/board"
	repo "tasklist-widget/internal/board/repository"
	"tasklist-widget/internal/ordering"
)

// CreateBoard stores a new empty board under a fresh uuid.
func (r *implRepository) CreateBoard(ctx context.Context, opt repo.CreateBoardOptions) (*board.Board, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBoard"), err)
		return nil, repo.ErrFailedToInsert
	}

	b := board.NewBoard(id.String(), ordering.New(opt.EngineOptions...), r.now())
	r.boards.Add(b.ID, b)
	return b, nil
}

// GetBoard looks a board up without refreshing its idle timer.
func (r *implRepository) GetBoard(ctx context.Context, id string) (*board.Board, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	b, ok := r.boards.Get(id)
	if !ok {
		return nil, nil
	}
	return b, nil
}

// SaveBoard re-adds the board, which restarts its TTL.
func (r *implRepository) SaveBoard(ctx context.Context, b *board.Board) error {
	if b == nil || b.ID == "" {
		return repo.ErrInvalidID
	}
	r.boards.Add(b.ID, b)
	return nil
}

// DeleteBoard removes a board. Unknown ids are ignored.
func (r *implRepository) DeleteBoard(ctx context.Context, id string) error {
	r.boards.Remove(id)
	return nil
}

// CountBoards returns the number of live boards.
func (r *implRepository) CountBoards(ctx context.Context) int {
	return r.boards.Len()
}
