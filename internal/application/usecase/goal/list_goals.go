// Package goal contains budget goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing budget goals.
type ListGoalsInput struct {
	OwnerID    uuid.UUID
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing budget goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithCategory
}

// ListGoalsUseCase handles budget goal listing.
type ListGoalsUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the owner's goals with their categories, newest first.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByOwner(ctx, input.OwnerID, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	categories, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	result := make([]*entity.GoalWithCategory, len(goals))
	for i, g := range goals {
		result[i] = &entity.GoalWithCategory{
			Goal:     g,
			Category: byID[g.CategoryID],
		}
	}

	return &ListGoalsOutput{Goals: result}, nil
}
