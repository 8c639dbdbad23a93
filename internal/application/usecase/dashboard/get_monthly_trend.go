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
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DefaultTrendMonths is the number of months shown when none is requested.
const DefaultTrendMonths = 6

// GetMonthlyTrendInput represents the input for the monthly trend.
type GetMonthlyTrendInput struct {
	OwnerID uuid.UUID
	Months  int // 0 means DefaultTrendMonths
}

// MonthlyTrendPoint is one month's totals.
type MonthlyTrendPoint struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// GetMonthlyTrendOutput represents the output of the monthly trend,
// oldest month first.
type GetMonthlyTrendOutput struct {
	Points []MonthlyTrendPoint
}

// GetMonthlyTrendUseCase computes per-month income/expense totals over the
// trailing months, current month included.
type GetMonthlyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetMonthlyTrendUseCase) WithClock(now func() time.Time) *GetMonthlyTrendUseCase {
	uc.now = now
	return uc
}

// Execute computes the trend.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultTrendMonths
	}
	if months < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTrendMonths,
			"months must be positive",
			domainerror.ErrInvalidTrendMonths,
		)
	}

	today := entity.DateOnly(uc.now())
	firstMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		OwnerID:   input.OwnerID,
		StartDate: &firstMonth,
		EndDate:   &today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	points := make([]MonthlyTrendPoint, 0, months)
	for i := 0; i < months; i++ {
		monthStart := firstMonth.AddDate(0, i, 0)
		window := ledger.MonthBounds(monthStart.Year(), monthStart.Month())

		income := decimal.Zero
		expenses := decimal.Zero
		for _, txn := range transactions {
			if !window.Contains(txn.Date) {
				continue
			}
			if txn.Kind == entity.TransactionKindIncome {
				income = income.Add(txn.Amount)
			} else {
				expenses = expenses.Add(txn.Amount)
			}
		}

		points = append(points, MonthlyTrendPoint{
			Month:    monthStart.Format("2006-01"),
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})
	}

	return &GetMonthlyTrendOutput{Points: points}, nil
}
