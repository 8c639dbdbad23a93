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

// CreateGoalInput represents the input for budget goal creation.
type CreateGoalInput struct {
	OwnerID        uuid.UUID
	CategoryID     uuid.UUID
	LimitAmount    decimal.Decimal
	Period         *entity.GoalPeriod // Optional, defaults to monthly
	AlertThreshold *int               // Optional, defaults to 80
	StartDate      time.Time
	EndDate        *time.Time
}

// CreateGoalOutput represents the output of budget goal creation.
type CreateGoalOutput struct {
	Goal *entity.BudgetGoal
}

// CreateGoalUseCase handles budget goal creation logic.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.SummaryCache
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.SummaryCache,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the budget goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCategoryNotFound,
			"category not found",
			domainerror.ErrGoalCategoryNotFound,
		)
	}

	if category.OwnerID != input.OwnerID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeCategoryDoesNotBelongUser,
			"category does not belong to user",
			domainerror.ErrCategoryDoesNotBelongToUser,
		)
	}

	period := entity.GoalPeriodMonthly
	if input.Period != nil {
		period = *input.Period
	}

	threshold := entity.DefaultAlertThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}

	goal, err := entity.NewBudgetGoal(
		input.OwnerID,
		input.CategoryID,
		input.LimitAmount,
		period,
		threshold,
		input.StartDate,
		input.EndDate,
	)
	if err != nil {
		return nil, err
	}

	exists, err := uc.goalRepo.ExistsActive(ctx, input.OwnerID, input.CategoryID, period, nil)
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

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
