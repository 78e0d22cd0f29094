package errors

import "net/http"

// HTTPError is an error that already knows how it should be rendered to a client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError returns an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
