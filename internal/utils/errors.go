package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error kinds understood by the HTTP error handler.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// AppError carries a user-facing message together with its kind.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Kind }

// Validation builds a 400 error with the given message.
func Validation(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

// Unauthorized builds a 401 error with the given message.
func Unauthorized(message string) error {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

// Forbidden builds a 403 error with the given message.
func Forbidden(message string) error {
	return &AppError{Kind: ErrForbidden, Message: message}
}

// NotFound builds a 404 error with the given message.
func NotFound(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// StatusCode maps an error to its HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
