package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the structured error body returned on every failure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// DeleteResponse confirms a successful delete operation
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a plain informational payload (root and health routes)
type MessageResponse struct {
	Message string `json:"message"`
}

// NewBindingErrorResponse converts a request-binding failure into the error
// body, with readable messages for validator tag failures instead of the raw
// validator dump.
func NewBindingErrorResponse(err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return NewErrorResponse(formatValidationError(validationErrs[0]))
	}
	return NewErrorResponse("Invalid request body")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
