// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	OwnerID       uuid.UUID
}

// DeleteTransactionUseCase handles transaction soft deletion. Deleted
// transactions are excluded from every aggregation until restored.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the soft delete.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return err
	}

	if existing.OwnerID != input.OwnerID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return nil
}
