// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/application/usecase/ledger"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

// EvaluateAlertsInput represents the input for alert evaluation.
type EvaluateAlertsInput struct {
	OwnerID uuid.UUID
}

// EvaluateAlertsOutput represents the output of alert evaluation.
type EvaluateAlertsOutput struct {
	Alerts []entity.Alert
	Cached bool
}

// EvaluateAlertsUseCase loads the owner's goals and ledger snapshot, runs
// the budget-alert evaluation with each goal's own threshold and caches the
// result. Ledger and goal writes invalidate the cache.
type EvaluateAlertsUseCase struct {
	goalRepo        adapter.GoalRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
	now             func() time.Time
}

// NewEvaluateAlertsUseCase creates a new EvaluateAlertsUseCase instance.
func NewEvaluateAlertsUseCase(
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
) *EvaluateAlertsUseCase {
	return &EvaluateAlertsUseCase{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *EvaluateAlertsUseCase) WithClock(now func() time.Time) *EvaluateAlertsUseCase {
	uc.now = now
	return uc
}

// Execute evaluates the owner's budget alerts.
func (uc *EvaluateAlertsUseCase) Execute(ctx context.Context, input EvaluateAlertsInput) (*EvaluateAlertsOutput, error) {
	if alerts, ok, err := uc.cache.GetAlerts(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	} else if ok {
		return &EvaluateAlertsOutput{Alerts: alerts, Cached: true}, nil
	}

	goals, err := uc.goalRepo.FindByOwner(ctx, input.OwnerID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	categories, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	now := uc.now()

	// Each goal carries its own threshold: evaluate with threshold zero to
	// get every goal's percent, then keep those at or past their threshold.
	evaluated := ledger.EvaluateBudgetAlerts(goals, categories, transactions, decimal.Zero, now)

	thresholds := make(map[uuid.UUID]decimal.Decimal, len(goals))
	for _, g := range goals {
		thresholds[g.ID] = decimal.NewFromInt(int64(g.AlertThreshold))
	}

	alerts := make([]entity.Alert, 0, len(evaluated))
	for _, a := range evaluated {
		if a.PercentUsed.GreaterThanOrEqual(thresholds[a.GoalID]) {
			alerts = append(alerts, a)
		}
	}

	if err := uc.cache.SetAlerts(ctx, input.OwnerID, alerts); err != nil {
		return nil, fmt.Errorf("failed to write summary cache: %w", err)
	}

	return &EvaluateAlertsOutput{Alerts: alerts}, nil
}
