package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CalculateBalance sums the owner's ledger: income positively, expense
// negatively, using exact decimal arithmetic. Soft-deleted transactions are
// ignored. An optional inclusive date range filters by occurrence date.
// An empty snapshot yields zero.
func CalculateBalance(transactions []*entity.Transaction, asOf *DateRange) decimal.Decimal {
	balance := decimal.Zero

	for _, txn := range transactions {
		if txn.IsDeleted() {
			continue
		}
		if asOf != nil && !asOf.Contains(txn.Date) {
			continue
		}
		balance = balance.Add(txn.SignedAmount())
	}

	return balance
}

// CategoryBreakdown groups expense transactions of the given calendar month
// by category and sums their amounts. Categories with no expenses in the
// month are omitted. Soft-deleted transactions are ignored.
func CategoryBreakdown(transactions []*entity.Transaction, month time.Month, year int) map[uuid.UUID]decimal.Decimal {
	window := MonthBounds(year, month)
	breakdown := make(map[uuid.UUID]decimal.Decimal)

	for _, txn := range transactions {
		if txn.IsDeleted() || txn.Kind != entity.TransactionKindExpense {
			continue
		}
		if !window.Contains(txn.Date) {
			continue
		}
		breakdown[txn.CategoryID] = breakdown[txn.CategoryID].Add(txn.Amount)
	}

	return breakdown
}

// EvaluateBudgetAlerts checks every active goal whose validity window
// contains now against the owner's expense transactions. Spend is accrued
// over the goal's current calendar-aligned period window, clipped to the
// validity window; percent used is computed with decimal division and
// rounded to two places. An alert is emitted when percent used reaches the
// threshold. Goals with a non-positive limit are skipped (rejected at
// construction, the division must stay total regardless).
//
// Alerts are ordered by percent used descending, ties broken by category
// name ascending.
func EvaluateBudgetAlerts(
	goals []*entity.BudgetGoal,
	categories []*entity.Category,
	transactions []*entity.Transaction,
	thresholdPercent decimal.Decimal,
	now time.Time,
) []entity.Alert {
	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	var alerts []entity.Alert

	for _, goal := range goals {
		if !goal.IsActive || !goal.InValidityWindow(now) {
			continue
		}
		if goal.LimitAmount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		window := intersect(PeriodBounds(now, goal.Period), goal)
		spent := categorySpend(transactions, goal.CategoryID, window)

		percentUsed := spent.Mul(hundred).Div(goal.LimitAmount).Round(2)
		if percentUsed.LessThan(thresholdPercent) {
			continue
		}

		alerts = append(alerts, entity.Alert{
			GoalID:       goal.ID,
			CategoryID:   goal.CategoryID,
			CategoryName: names[goal.CategoryID],
			Period:       goal.Period,
			Limit:        goal.LimitAmount,
			Spent:        spent,
			PercentUsed:  percentUsed,
			OverBudget:   spent.GreaterThan(goal.LimitAmount),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].PercentUsed.Equal(alerts[j].PercentUsed) {
			return alerts[i].PercentUsed.GreaterThan(alerts[j].PercentUsed)
		}
		return alerts[i].CategoryName < alerts[j].CategoryName
	})

	return alerts
}

// SpendInPeriod returns the expense total accrued against the goal over its
// current calendar-aligned period window, clipped to the validity window.
// Used for goal status reporting alongside alert evaluation.
func SpendInPeriod(transactions []*entity.Transaction, goal *entity.BudgetGoal, now time.Time) decimal.Decimal {
	window := intersect(PeriodBounds(now, goal.Period), goal)
	return categorySpend(transactions, goal.CategoryID, window)
}

// categorySpend sums non-deleted expense transactions of one category within
// the window.
func categorySpend(transactions []*entity.Transaction, categoryID uuid.UUID, window DateRange) decimal.Decimal {
	spent := decimal.Zero
	for _, txn := range transactions {
		if txn.IsDeleted() || txn.Kind != entity.TransactionKindExpense {
			continue
		}
		if txn.CategoryID != categoryID || !window.Contains(txn.Date) {
			continue
		}
		spent = spent.Add(txn.Amount)
	}
	return spent
}
