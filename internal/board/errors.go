package board

import "errors"

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrEmptyLabel    = errors.New("cannot add an empty task")
)
