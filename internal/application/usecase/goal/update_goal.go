// Package goal contains budget goal-related use cases.
package goal

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

// UpdateGoalInput represents the input for budget goal updates.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID         uuid.UUID
	OwnerID        uuid.UUID
	LimitAmount    *decimal.Decimal
	Period         *entity.GoalPeriod
	AlertThreshold *int
	EndDate        *time.Time
}

// UpdateGoalOutput represents the output of a budget goal update.
type UpdateGoalOutput struct {
	Goal *entity.BudgetGoal
}

// UpdateGoalUseCase handles budget goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.SummaryCache
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.SummaryCache) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the budget goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.LimitAmount != nil {
		if input.LimitAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidLimitAmount,
				"limit amount must be greater than zero",
				domainerror.ErrInvalidLimitAmount,
			)
		}
		goal.LimitAmount = *input.LimitAmount
	}

	if input.Period != nil {
		if !entity.ValidGoalPeriod(*input.Period) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPeriod,
				"period must be 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidGoalPeriod,
			)
		}
		goal.Period = *input.Period
	}

	if input.AlertThreshold != nil {
		if *input.AlertThreshold < 0 || *input.AlertThreshold > 100 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidAlertThreshold,
				"alert threshold must be between 0 and 100",
				domainerror.ErrInvalidAlertThreshold,
			)
		}
		goal.AlertThreshold = *input.AlertThreshold
	}

	if input.EndDate != nil {
		end := entity.DateOnly(*input.EndDate)
		if end.Before(goal.StartDate) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidValidityWindow,
				"end date cannot be before start date",
				domainerror.ErrInvalidValidityWindow,
			)
		}
		goal.EndDate = &end
	}

	// A period change may collide with another active goal on the same category.
	if input.Period != nil && goal.IsActive {
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

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
