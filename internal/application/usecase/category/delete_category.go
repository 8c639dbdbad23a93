// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. A category with at least
// one non-deleted transaction cannot be removed, and default categories are
// never removable.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the hard delete.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return err
	}

	if category.OwnerID != input.OwnerID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if category.IsDefault {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategory,
			"cannot delete default categories",
			domainerror.ErrCannotModifyDefaultCategory,
		)
	}

	count, err := uc.transactionRepo.CountByCategory(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("cannot delete category with %d transaction(s)", count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
