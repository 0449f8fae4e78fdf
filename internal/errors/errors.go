package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStorageUnavailable is returned when the store cannot be reached or fails.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUnauthorized is returned when a protected operation runs without a session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("validation failed")
)

// ErrorResponse is the failure envelope written to clients.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. notFoundMsg and duplicateMsg carry the
// resource specific wording; empty values fall back to generic text.
func MapErrorToHTTP(err error, notFoundMsg, duplicateMsg string) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, orDefault(notFoundMsg, "Not found"), "NOT_FOUND")
	case errors.Is(err, ErrDuplicate):
		return NewHTTPError(http.StatusBadRequest, orDefault(duplicateMsg, "Already exists"), "DUPLICATE")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "), "VALIDATION_FAILED")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrStorageUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, "Service temporarily unavailable", "STORAGE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
