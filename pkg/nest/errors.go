package nest

import (
	"errors"
	"fmt"
	"net/http"
)

// Assembly errors. Assemble wraps them with the controller, method and
// path they refer to, so callers match with errors.Is.
var (
	// ErrNilController is returned when Assemble receives nil or a nil
	// controller pointer.
	ErrNilController = errors.New("nest: nil controller")

	// ErrNilHandler is returned when a declared route carries no handler.
	ErrNilHandler = errors.New("nest: route has nil handler")

	// ErrUnknownMethod is returned when a route uses a verb outside the
	// set listed by Methods.
	ErrUnknownMethod = errors.New("nest: unknown HTTP method")

	// ErrBadPath is returned when a route path does not parse.
	ErrBadPath = errors.New("nest: invalid route path")
)

// HTTPError is an error with an HTTP status code. Handlers return it to
// control the response status; adapters translate it into the host
// framework's native error form.
type HTTPError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewHTTPErrorWithDetails creates a new HTTPError with additional details
func NewHTTPErrorWithDetails(statusCode int, message string, details any) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// Common HTTP error constructors for convenience

// ErrBadRequest creates a 400 Bad Request error
func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// ErrUnauthorized creates a 401 Unauthorized error
func ErrUnauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

// ErrForbidden creates a 403 Forbidden error
func ErrForbidden(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message)
}

// ErrNotFound creates a 404 Not Found error
func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// ErrConflict creates a 409 Conflict error
func ErrConflict(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

// ErrUnprocessableEntity creates a 422 Unprocessable Entity error
func ErrUnprocessableEntity(message string) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message)
}

// ErrUnprocessableEntityWithDetails creates a 422 Unprocessable Entity error with validation details
func ErrUnprocessableEntityWithDetails(message string, details any) *HTTPError {
	return NewHTTPErrorWithDetails(http.StatusUnprocessableEntity, message, details)
}

// ErrInternalServerError creates a 500 Internal Server Error
func ErrInternalServerError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}
