// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DefaultRecoveryWindow is how long a soft-deleted transaction stays restorable.
const DefaultRecoveryWindow = 90 * 24 * time.Hour

// RestoreTransactionInput represents the input for restoring a soft-deleted
// transaction.
type RestoreTransactionInput struct {
	TransactionID uuid.UUID
	OwnerID       uuid.UUID
}

// RestoreTransactionUseCase handles the undo of a soft delete. The recovery
// window bounds only restorability; a deleted transaction never contributes
// to aggregates, restored or not, until the flag is actually cleared.
type RestoreTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
	recoveryWindow  time.Duration
	now             func() time.Time
}

// NewRestoreTransactionUseCase creates a new RestoreTransactionUseCase instance.
func NewRestoreTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
	recoveryWindow time.Duration,
) *RestoreTransactionUseCase {
	if recoveryWindow <= 0 {
		recoveryWindow = DefaultRecoveryWindow
	}
	return &RestoreTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		recoveryWindow:  recoveryWindow,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *RestoreTransactionUseCase) WithClock(now func() time.Time) *RestoreTransactionUseCase {
	uc.now = now
	return uc
}

// Execute performs the restore.
func (uc *RestoreTransactionUseCase) Execute(ctx context.Context, input RestoreTransactionInput) error {
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

	if !existing.IsDeleted() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotDeleted,
			"transaction is not deleted",
			domainerror.ErrTransactionNotDeleted,
		)
	}

	if uc.now().Sub(*existing.DeletedAt) > uc.recoveryWindow {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeRecoveryWindowExpired,
			"recovery window expired",
			domainerror.ErrRecoveryWindowExpired,
		)
	}

	if err := uc.transactionRepo.Restore(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to restore transaction: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return nil
}
