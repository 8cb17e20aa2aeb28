package utils

import "net/http"

// AppError is a domain error carrying the HTTP status and machine-readable
// code rendered in the uniform error body. Callers match it with errors.As,
// never by message text.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string { return e.Message }

// ErrCategoryHasItems rejects deletion of a category that still owns
// non-deleted menu items. Surfaced as 400 rather than 409.
var ErrCategoryHasItems = &AppError{
	Status:  http.StatusBadRequest,
	Code:    "CATEGORY_HAS_ITEMS",
	Message: "Cannot delete category with active menu items",
}

func NewValidationError(details interface{}) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Validation error",
		Details: details,
	}
}

func NewAuthError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "AUTH_ERROR", Message: message}
}

func NewNotFoundError(code, message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: code, Message: message}
}
