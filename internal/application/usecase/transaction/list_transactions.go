// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	OwnerID     uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryIDs []uuid.UUID
	ProjectID   *uuid.UUID
	Kind        *entity.TransactionKind
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing with filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the owner's transactions matching the filter, newest first.
// Soft-deleted transactions are never listed.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		OwnerID:     input.OwnerID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CategoryIDs: input.CategoryIDs,
		ProjectID:   input.ProjectID,
		Kind:        input.Kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
