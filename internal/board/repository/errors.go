package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert board")
	ErrInvalidID      = errors.New("invalid board id")
)
