package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the failure body returned to callers. Only a message
// string is exposed.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// Error codes carried by AppError.
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError is a custom application error carrying a machine-readable code.
type AppError struct {
	Code    string
	Message string
	Err     error
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

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized failure response. NotFound maps to
// 404 with its named message, validation failures to 400, everything else
// collapses to 500 carrying the raw error description.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := err.Error()

	if appErr, ok := err.(*AppError); ok {
		switch appErr.Code {
		case ErrCodeNotFound:
			status = fiber.StatusNotFound
			msg = appErr.Message
		case ErrCodeValidation:
			status = fiber.StatusBadRequest
			msg = appErr.Message
		}
	}

	return c.Status(status).JSON(ErrorResponse{Msg: msg})
}
