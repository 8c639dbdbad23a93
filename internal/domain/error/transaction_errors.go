// Package error defines domain-specific errors for SwiftBudget.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when the owner does not match.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionKind is returned when the transaction kind is invalid.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrFutureDatedTransaction is returned when the occurrence date is after the current date.
	ErrFutureDatedTransaction = errors.New("transaction date is in the future")

	// ErrNoteTooLong is returned when the transaction note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrInconsistentLineItem is returned when amount does not equal quantity times unit price.
	ErrInconsistentLineItem = errors.New("inconsistent quantity and unit price")

	// ErrTransactionNotDeleted is returned when restoring a transaction that is not deleted.
	ErrTransactionNotDeleted = errors.New("transaction is not deleted")

	// ErrRecoveryWindowExpired is returned when restoring a transaction deleted too long ago.
	ErrRecoveryWindowExpired = errors.New("recovery window expired")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the owner.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeFutureDatedTransaction   TransactionErrorCode = "TXN-010003"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010004"
	ErrCodeInconsistentLineItem     TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010007"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010008"
	ErrCodeTxnCategoryNotOwned      TransactionErrorCode = "TXN-010009"
	ErrCodeTransactionNotDeleted    TransactionErrorCode = "TXN-010010"
	ErrCodeRecoveryWindowExpired    TransactionErrorCode = "TXN-010011"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
