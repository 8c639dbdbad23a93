// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// TransactionKind represents the kind of transaction (expense or income).
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// MaxNoteLength is the maximum length for a transaction note.
const MaxNoteLength = 200

// Transaction represents a financial transaction in the SwiftBudget ledger.
//
// Amount is always strictly positive; its contribution to the balance is
// derived from Kind, never stored as a signed value. A transaction keeps its
// identity across edits: updates preserve ID and bump UpdatedAt.
type Transaction struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Kind       TransactionKind
	Date       time.Time // Calendar date of occurrence
	Note       string
	ProjectID  *uuid.UUID       // Optional project the transaction belongs to
	Quantity   *int             // Optional line-item count
	UnitPrice  *decimal.Decimal // Optional per-item price
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity, validating the invariants
// that must hold at construction time: a known kind, a strictly positive
// amount, an occurrence date not in the future, a bounded note, and a
// consistent quantity/unit-price pair when both are supplied.
func NewTransaction(
	ownerID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	kind TransactionKind,
	date time.Time,
	note string,
	quantity *int,
	unitPrice *decimal.Decimal,
) (*Transaction, error) {
	if kind != TransactionKindExpense && kind != TransactionKindIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	now := time.Now().UTC()
	if DateOnly(date).After(DateOnly(now)) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeFutureDatedTransaction,
			"transaction date cannot be in the future",
			domainerror.ErrFutureDatedTransaction,
		)
	}

	if len(note) > MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			"note too long",
			domainerror.ErrNoteTooLong,
		)
	}

	if quantity != nil && unitPrice != nil {
		expected := unitPrice.Mul(decimal.NewFromInt(int64(*quantity)))
		if !expected.Equal(amount) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInconsistentLineItem,
				"amount must equal quantity times unit price",
				domainerror.ErrInconsistentLineItem,
			)
		}
	}

	return &Transaction{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		CategoryID: categoryID,
		Amount:     amount,
		Kind:       kind,
		Date:       DateOnly(date),
		Note:       note,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsDeleted reports whether the transaction is soft-deleted.
func (t *Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}

// SignedAmount returns the transaction's contribution to the balance:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
