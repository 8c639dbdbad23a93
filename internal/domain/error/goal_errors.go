// Package error defines domain-specific errors for SwiftBudget.
package error

import "errors"

// Budget goal domain errors.
var (
	// ErrGoalNotFound is returned when a budget goal is not found in the system.
	ErrGoalNotFound = errors.New("budget goal not found")

	// ErrGoalAlreadyExists is returned when an active goal already exists for
	// the same owner, category and period.
	ErrGoalAlreadyExists = errors.New("active budget goal already exists for this category and period")

	// ErrInvalidLimitAmount is returned when the limit amount is not strictly positive.
	ErrInvalidLimitAmount = errors.New("invalid limit amount")

	// ErrInvalidGoalPeriod is returned when the goal period is not weekly, monthly or yearly.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrInvalidValidityWindow is returned when the end date precedes the start date.
	ErrInvalidValidityWindow = errors.New("end date before start date")

	// ErrInvalidAlertThreshold is returned when the alert threshold is outside 0-100.
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 0 and 100")

	// ErrGoalCategoryNotFound is returned when the category for a goal is not found.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrCategoryDoesNotBelongToUser is returned when the category does not belong to the owner.
	ErrCategoryDoesNotBelongToUser = errors.New("category does not belong to user")

	// ErrUnauthorizedGoalAccess is returned when the owner does not match.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to budget goal")
)

// GoalErrorCode defines error codes for budget goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLimitAmount        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalPeriod         GoalErrorCode = "GOL-010002"
	ErrCodeInvalidValidityWindow     GoalErrorCode = "GOL-010003"
	ErrCodeInvalidAlertThreshold     GoalErrorCode = "GOL-010004"
	ErrCodeGoalNotFound              GoalErrorCode = "GOL-010005"
	ErrCodeGoalAlreadyExists         GoalErrorCode = "GOL-010006"
	ErrCodeGoalCategoryNotFound      GoalErrorCode = "GOL-010007"
	ErrCodeCategoryDoesNotBelongUser GoalErrorCode = "GOL-010008"
	ErrCodeUnauthorizedGoalAccess    GoalErrorCode = "GOL-010009"
)

// GoalError represents a budget goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
