// Package goal contains budget goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/application/usecase/ledger"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// GetStatusInput represents the input for budget goal status.
type GetStatusInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// GetStatusOutput represents the current standing of one budget goal.
type GetStatusOutput struct {
	CategoryName   string
	Limit          decimal.Decimal
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentUsed    decimal.Decimal
	AlertThreshold int
	OverBudget     bool
	ShouldAlert    bool
	IsActive       bool
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

// GetStatusUseCase reports spend against one goal's current period.
type GetStatusUseCase struct {
	goalRepo        adapter.GoalRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetStatusUseCase) WithClock(now func() time.Time) *GetStatusUseCase {
	uc.now = now
	return uc
}

// Execute computes the goal's status over its current period window.
func (uc *GetStatusUseCase) Execute(ctx context.Context, input GetStatusInput) (*GetStatusOutput, error) {
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

	category, err := uc.categoryRepo.FindByID(ctx, goal.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal category: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	now := uc.now()
	window := ledger.PeriodBounds(now, goal.Period)
	spent := ledger.SpendInPeriod(transactions, goal, now)
	percentUsed := decimal.Zero
	if goal.LimitAmount.GreaterThan(decimal.Zero) {
		percentUsed = spent.Mul(decimal.NewFromInt(100)).Div(goal.LimitAmount).Round(2)
	}
	overBudget := spent.GreaterThan(goal.LimitAmount)
	shouldAlert := goal.IsActive &&
		goal.InValidityWindow(now) &&
		percentUsed.GreaterThanOrEqual(decimal.NewFromInt(int64(goal.AlertThreshold)))

	return &GetStatusOutput{
		CategoryName:   category.Name,
		Limit:          goal.LimitAmount,
		Spent:          spent,
		Remaining:      goal.LimitAmount.Sub(spent),
		PercentUsed:    percentUsed,
		AlertThreshold: goal.AlertThreshold,
		OverBudget:     overBudget,
		ShouldAlert:    shouldAlert,
		IsActive:       goal.IsActive,
		PeriodStart:    window.Start,
		PeriodEnd:      window.End,
	}, nil
}
