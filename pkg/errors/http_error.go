package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
