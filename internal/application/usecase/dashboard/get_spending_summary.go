// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/application/usecase/ledger"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// GetSpendingSummaryInput represents the input for a spending summary.
// When no range is given the current calendar month up to today is used.
type GetSpendingSummaryInput struct {
	OwnerID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryTotal is one category's expense total within the summary range.
type CategoryTotal struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// GetSpendingSummaryOutput represents the output of a spending summary.
type GetSpendingSummaryOutput struct {
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetBalance       decimal.Decimal `json:"net_balance"`
	TransactionCount int             `json:"transaction_count"`
	ByCategory       []CategoryTotal `json:"by_category"`
}

// GetSpendingSummaryUseCase computes income, expense and per-category totals
// over a snapshot of the owner's ledger.
type GetSpendingSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	now             func() time.Time
}

// NewGetSpendingSummaryUseCase creates a new GetSpendingSummaryUseCase instance.
func NewGetSpendingSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetSpendingSummaryUseCase {
	return &GetSpendingSummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetSpendingSummaryUseCase) WithClock(now func() time.Time) *GetSpendingSummaryUseCase {
	uc.now = now
	return uc
}

// Execute computes the summary.
func (uc *GetSpendingSummaryUseCase) Execute(ctx context.Context, input GetSpendingSummaryInput) (*GetSpendingSummaryOutput, error) {
	today := entity.DateOnly(uc.now())

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if input.StartDate != nil {
		start = entity.DateOnly(*input.StartDate)
	}
	end := today
	if input.EndDate != nil {
		end = entity.DateOnly(*input.EndDate)
	}
	if end.Before(start) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		OwnerID:   input.OwnerID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	byCategory := make(map[uuid.UUID]decimal.Decimal)

	for _, txn := range transactions {
		if txn.Kind == entity.TransactionKindIncome {
			income = income.Add(txn.Amount)
			continue
		}
		expenses = expenses.Add(txn.Amount)
		byCategory[txn.CategoryID] = byCategory[txn.CategoryID].Add(txn.Amount)
	}

	categories, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for id, amount := range byCategory {
		totals = append(totals, CategoryTotal{
			CategoryID:   id,
			CategoryName: names[id],
			Amount:       amount,
		})
	}
	// Amount descending, ties by name ascending, matching display order.
	sort.SliceStable(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].CategoryName < totals[j].CategoryName
	})

	return &GetSpendingSummaryOutput{
		StartDate:        start,
		EndDate:          end,
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetBalance:       income.Sub(expenses),
		TransactionCount: len(transactions),
		ByCategory:       totals,
	}, nil
}

// Balance returns the overall ledger balance for an owner, optionally bounded
// by an inclusive date range.
func (uc *GetSpendingSummaryUseCase) Balance(ctx context.Context, ownerID uuid.UUID, asOf *ledger.DateRange) (decimal.Decimal, error) {
	transactions, err := uc.transactionRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	return ledger.CalculateBalance(transactions, asOf), nil
}
