package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and user-safe message to render.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose code equals its status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
