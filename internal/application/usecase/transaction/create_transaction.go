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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Kind       entity.TransactionKind
	Date       time.Time
	Note       string
	ProjectID  *uuid.UUID
	Quantity   *int
	UnitPrice  *decimal.Decimal
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	cache           adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	cache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation. Malformed input is rejected here,
// at construction time, so aggregation never has to.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateCategoryOwnership(ctx, uc.categoryRepo, input.CategoryID, input.OwnerID); err != nil {
		return nil, err
	}

	if input.ProjectID != nil {
		if err := validateProjectOwnership(ctx, uc.projectRepo, *input.ProjectID, input.OwnerID); err != nil {
			return nil, err
		}
	}

	txn, err := entity.NewTransaction(
		input.OwnerID,
		input.CategoryID,
		input.Amount,
		input.Kind,
		input.Date,
		input.Note,
		input.Quantity,
		input.UnitPrice,
	)
	if err != nil {
		return nil, err
	}
	txn.ProjectID = input.ProjectID

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateCategoryOwnership checks that the category exists and belongs to
// the owner. Shared by create and update.
func validateCategoryOwnership(ctx context.Context, repo adapter.CategoryRepository, categoryID, ownerID uuid.UUID) error {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if category.OwnerID != ownerID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}

	return nil
}

// validateProjectOwnership checks that the project exists and belongs to the
// owner. Shared by create and update.
func validateProjectOwnership(ctx context.Context, repo adapter.ProjectRepository, projectID, ownerID uuid.UUID) error {
	project, err := repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	if project.OwnerID != ownerID {
		return domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorizedProject,
			"project does not belong to user",
			domainerror.ErrNotAuthorizedToModifyProject,
		)
	}

	return nil
}
