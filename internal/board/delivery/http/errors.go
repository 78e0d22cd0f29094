package http

import (
	"errors"
	"net/http"

	"tasklist-widget/internal/board"
	pkgErrors "tasklist-widget/pkg/errors"
)

var errBoardIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "board_id is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, board.ErrBoardNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, board.ErrBoardNotFound.Error())
	case errors.Is(err, board.ErrEmptyLabel):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, board.ErrEmptyLabel.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
