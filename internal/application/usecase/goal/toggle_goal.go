// Package goal contains budget goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// ToggleGoalInput represents the input for toggling a goal's active flag.
type ToggleGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// ToggleGoalOutput represents the output of a goal toggle.
type ToggleGoalOutput struct {
	Goal *entity.BudgetGoal
}

// ToggleGoalUseCase pauses or resumes a budget goal without deleting it.
type ToggleGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.SummaryCache
}

// NewToggleGoalUseCase creates a new ToggleGoalUseCase instance.
func NewToggleGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.SummaryCache) *ToggleGoalUseCase {
	return &ToggleGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute flips the active flag. Reactivation re-checks the one-active-goal
// invariant for the (owner, category, period) triple.
func (uc *ToggleGoalUseCase) Execute(ctx context.Context, input ToggleGoalInput) (*ToggleGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if goal.OwnerID != input.OwnerID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"unauthorized access to budget goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if !goal.IsActive {
		exists, err := uc.goalRepo.ExistsActive(ctx, goal.OwnerID, goal.CategoryID, goal.Period, &goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalAlreadyExists,
				"an active goal already exists for this category and period",
				domainerror.ErrGoalAlreadyExists,
			)
		}
	}

	goal.IsActive = !goal.IsActive
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to toggle goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return &ToggleGoalOutput{Goal: goal}, nil
}
