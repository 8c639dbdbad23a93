// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

// SeedDefaultsInput represents the input for default category seeding.
type SeedDefaultsInput struct {
	OwnerID uuid.UUID
}

// SeedDefaultsOutput represents the output of default category seeding.
type SeedDefaultsOutput struct {
	Created []*entity.Category
}

// SeedDefaultsUseCase creates the default category set for a new owner.
// Idempotent: names already present (case-insensitively) are skipped.
type SeedDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the missing default categories.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, input SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	existing, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, cat := range existing {
		present[strings.ToLower(cat.Name)] = true
	}

	var toCreate []*entity.Category
	for _, name := range entity.DefaultCategoryNames {
		if present[strings.ToLower(name)] {
			continue
		}
		cat, err := entity.NewCategory(input.OwnerID, name, true)
		if err != nil {
			return nil, err
		}
		toCreate = append(toCreate, cat)
	}

	if len(toCreate) > 0 {
		if err := uc.categoryRepo.CreateBatch(ctx, toCreate); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	return &SeedDefaultsOutput{Created: toCreate}, nil
}
