package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError describes a single failing field in a validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Validation creates a 400 error carrying the list of failing fields
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
		Err:     ErrInvalidInput,
	}
}

// BadRequest creates a 400 error with a single message
func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

// Unauthorized creates a 401 error. The message stays generic so the
// response never reveals which check failed.
func Unauthorized() *AppError {
	return NewAppError(http.StatusUnauthorized, "Unauthorized", ErrUnauthorized)
}

// NotFound creates a 404 error
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// Conflict creates a 409 error
func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

// Internal creates a 500 error wrapping the underlying cause
func Internal(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "Internal server error", err)
}
