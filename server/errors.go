package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in the JSON error envelope.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a requested frame or resource does not exist.
	ErrNotFound = NewAPIError(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidRequest is returned when a request body or query is malformed.
	ErrInvalidRequest = NewAPIError(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned for failures the client cannot fix.
	ErrInternalError = NewAPIError(fiber.StatusInternalServerError, CodeInternalError, "internal server error")
)

// APIError is the JSON error envelope returned by every endpoint. Values are
// treated as immutable: the With* methods return modified copies.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

// NewAPIError returns an error rendered with the given status and code.
func NewAPIError(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// WithMessage returns a copy of e carrying a formatted message.
func (e APIError) WithMessage(format string, parts ...any) *APIError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
