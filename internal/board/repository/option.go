package repository

import "tasklist-widget/internal/ordering"

// CreateBoardOptions holds parameters for creating a Board.
type CreateBoardOptions struct {
	// EngineOptions are passed to ordering.New.
	EngineOptions []ordering.Option
}
