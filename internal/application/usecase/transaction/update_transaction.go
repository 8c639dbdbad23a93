// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	OwnerID       uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Kind          *entity.TransactionKind
	Date          *time.Time
	Note          *string
	// ProjectID nil leaves the link unchanged; a pointer to uuid.Nil clears it.
	ProjectID *uuid.UUID
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic. A transaction is
// immutable in identity: the edit produces a new version under the same ID.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	cache           adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	cache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if existing.OwnerID != input.OwnerID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	categoryID := existing.CategoryID
	if input.CategoryID != nil {
		if err := validateCategoryOwnership(ctx, uc.categoryRepo, *input.CategoryID, input.OwnerID); err != nil {
			return nil, err
		}
		categoryID = *input.CategoryID
	}

	amount := existing.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	kind := existing.Kind
	if input.Kind != nil {
		kind = *input.Kind
	}
	date := existing.Date
	if input.Date != nil {
		date = *input.Date
	}
	note := existing.Note
	if input.Note != nil {
		note = *input.Note
	}

	projectID := existing.ProjectID
	if input.ProjectID != nil {
		if *input.ProjectID == uuid.Nil {
			projectID = nil
		} else {
			if err := validateProjectOwnership(ctx, uc.projectRepo, *input.ProjectID, input.OwnerID); err != nil {
				return nil, err
			}
			projectID = input.ProjectID
		}
	}

	// Re-run construction validation over the merged fields. Line-item detail
	// does not survive an amount edit.
	quantity := existing.Quantity
	unitPrice := existing.UnitPrice
	if input.Amount != nil {
		quantity = nil
		unitPrice = nil
	}

	revised, err := entity.NewTransaction(
		input.OwnerID,
		categoryID,
		amount,
		kind,
		date,
		note,
		quantity,
		unitPrice,
	)
	if err != nil {
		return nil, err
	}

	// Same identity, new version.
	revised.ProjectID = projectID
	revised.ID = existing.ID
	revised.CreatedAt = existing.CreatedAt
	revised.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, revised); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: revised}, nil
}
