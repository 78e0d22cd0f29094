package repository

import (
	"context"

	"tasklist-widget/internal/board"
)

// Repository is the composed interface for the board store.
type Repository interface {
	BoardRepository
}

// BoardRepository keeps live boards for the lifetime of the process.
type BoardRepository interface {
	CreateBoard(ctx context.Context, opt CreateBoardOptions) (*board.Board, error)
	// GetBoard returns nil, nil when the board does not exist or has expired.
	GetBoard(ctx context.Context, id string) (*board.Board, error)
	// SaveBoard marks the board as used, restarting its idle timer.
	SaveBoard(ctx context.Context, b *board.Board) error
	DeleteBoard(ctx context.Context, id string) error
	CountBoards(ctx context.Context) int
}
