// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
	Name       string
}

// UpdateCategoryOutput represents the output of a category rename.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles renaming of custom categories.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the rename. Default categories cannot be renamed.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.OwnerID != input.OwnerID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if category.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategory,
			"cannot rename default categories",
			domainerror.ErrCannotModifyDefaultCategory,
		)
	}

	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(input.Name) > entity.MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name too long",
			domainerror.ErrCategoryNameTooLong,
		)
	}

	exists, err := uc.categoryRepo.ExistsByOwnerAndName(ctx, input.OwnerID, input.Name, &input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category.Name = input.Name

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
