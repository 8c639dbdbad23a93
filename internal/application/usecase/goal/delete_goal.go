// Package goal contains budget goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for budget goal deletion.
type DeleteGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteGoalUseCase handles budget goal deletion. Goals are preferences, not
// financial records, so deletion is hard.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.SummaryCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.SummaryCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the hard delete.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return err
	}

	if goal.OwnerID != input.OwnerID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"unauthorized access to budget goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return nil
}
