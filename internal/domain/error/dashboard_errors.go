// Package error defines domain-specific errors for SwiftBudget.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidTrendMonths is returned when the trend month count is not positive.
	ErrInvalidTrendMonths = errors.New("invalid trend month count")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange   DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidTrendMonths DashboardErrorCode = "DSH-010002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
