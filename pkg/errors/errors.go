// Package errors defines application error types shared across all packages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common conditions.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal error")
	ErrUnavailable       = errors.New("service unavailable")
	ErrTimeout           = errors.New("operation timed out")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// AppError is a rich application error carrying an HTTP status code,
// a machine-readable code and optional per-field details.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"-"`
	Fields     map[string]string `json:"fields,omitempty"`
	Err        error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithFields attaches per-field validation details to the error.
func (e *AppError) WithFields(fields map[string]string) *AppError {
	e.Fields = fields
	return e
}

// NewNotFound creates a not-found error for the named resource.
func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
		Err:        ErrNotFound,
	}
}

// NewAlreadyExists creates a conflict error for a duplicate resource.
func NewAlreadyExists(resource string) *AppError {
	return &AppError{
		Code:       "ALREADY_EXISTS",
		Message:    fmt.Sprintf("%s already exists", resource),
		StatusCode: http.StatusConflict,
		Err:        ErrAlreadyExists,
	}
}

// NewInvalidInput creates a bad-request error with the given message.
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       "INVALID_INPUT",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        ErrInvalidInput,
	}
}

// NewUnauthorized creates a 401 error with the given message.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Err:        ErrUnauthorized,
	}
}

// NewForbidden creates a 403 error with the given message.
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
		Err:        ErrForbidden,
	}
}

// NewConflict creates a 409 error with the given message.
func NewConflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
		Err:        ErrConflict,
	}
}

// NewInternal wraps an unexpected error as a 500.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewRateLimited creates a 429 error.
func NewRateLimited() *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    "too many requests",
		StatusCode: http.StatusTooManyRequests,
		Err:        ErrTooManyRequests,
	}
}

// NewUnavailable creates a 503 error naming the unavailable dependency.
func NewUnavailable(dependency string) *AppError {
	return &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    fmt.Sprintf("%s is unavailable", dependency),
		StatusCode: http.StatusServiceUnavailable,
		Err:        ErrUnavailable,
	}
}

// AsAppError extracts an *AppError from err, or wraps it as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFound("resource")
	case errors.Is(err, ErrInvalidInput):
		return NewInvalidInput(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorized(err.Error())
	case errors.Is(err, ErrForbidden):
		return NewForbidden(err.Error())
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return NewConflict(err.Error())
	default:
		return NewInternal(err)
	}
}
