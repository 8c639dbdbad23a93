// Package error defines domain-specific errors for SwiftBudget.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectNameExists is returned when attempting to create a project with an existing name.
	ErrProjectNameExists = errors.New("project name already exists")

	// ErrProjectNameRequired is returned when the project name is empty.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrProjectNameTooLong is returned when the project name exceeds the maximum length.
	ErrProjectNameTooLong = errors.New("project name too long")

	// ErrProjectDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrProjectDescriptionTooLong = errors.New("project description too long")

	// ErrInvalidProjectColor is returned when the color is not a hex color code.
	ErrInvalidProjectColor = errors.New("invalid project color")

	// ErrNotAuthorizedToModifyProject is returned when the owner does not match.
	ErrNotAuthorizedToModifyProject = errors.New("not authorized to modify project")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProjectNameRequired       ProjectErrorCode = "PRJ-010001"
	ErrCodeProjectNameTooLong        ProjectErrorCode = "PRJ-010002"
	ErrCodeProjectDescriptionTooLong ProjectErrorCode = "PRJ-010003"
	ErrCodeInvalidProjectColor       ProjectErrorCode = "PRJ-010004"
	ErrCodeProjectNotFound           ProjectErrorCode = "PRJ-010005"
	ErrCodeProjectNameExists         ProjectErrorCode = "PRJ-010006"
	ErrCodeNotAuthorizedProject      ProjectErrorCode = "PRJ-010007"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
