// Package error defines domain-specific errors for SwiftBudget.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCannotModifyDefaultCategory is returned when renaming or deleting a default category.
	ErrCannotModifyDefaultCategory = errors.New("cannot modify default category")

	// ErrCategoryInUse is returned when deleting a category that still has non-deleted transactions.
	ErrCategoryInUse = errors.New("category has transactions")

	// ErrNotAuthorizedToModifyCategory is returned when the owner does not match.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010004"
	ErrCodeDefaultCategory       CategoryErrorCode = "CAT-010005"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010006"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010007"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
