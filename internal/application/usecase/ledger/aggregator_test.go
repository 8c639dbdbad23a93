package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func makeTransaction(t *testing.T, ownerID, categoryID uuid.UUID, amount string, kind entity.TransactionKind, date time.Time) *entity.Transaction {
	t.Helper()
	txn, err := entity.NewTransaction(ownerID, categoryID, mustDecimal(t, amount), kind, date, "", nil, nil)
	if err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func TestCalculateBalance(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("empty ledger yields zero", func(t *testing.T) {
		balance := CalculateBalance(nil, nil)
		if !balance.Equal(decimal.Zero) {
			t.Errorf("expected 0.00, got %s", balance.StringFixed(2))
		}
	})

	t.Run("single expense yields exact negative amount", func(t *testing.T) {
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, categoryID, "45.50", entity.TransactionKindExpense, date),
		}
		balance := CalculateBalance(txns, nil)
		if got := balance.StringFixed(2); got != "-45.50" {
			t.Errorf("expected -45.50, got %s", got)
		}
	})

	t.Run("income and expense net exactly", func(t *testing.T) {
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, categoryID, "3500.00", entity.TransactionKindIncome, date),
			makeTransaction(t, ownerID, categoryID, "45.50", entity.TransactionKindExpense, date),
		}
		balance := CalculateBalance(txns, nil)
		if got := balance.StringFixed(2); got != "3454.50" {
			t.Errorf("expected 3454.50, got %s", got)
		}
	})

	t.Run("order of transactions does not change the result", func(t *testing.T) {
		a := makeTransaction(t, ownerID, categoryID, "10.10", entity.TransactionKindExpense, date)
		b := makeTransaction(t, ownerID, categoryID, "200.00", entity.TransactionKindIncome, date)
		c := makeTransaction(t, ownerID, categoryID, "0.05", entity.TransactionKindExpense, date)

		forward := CalculateBalance([]*entity.Transaction{a, b, c}, nil)
		reversed := CalculateBalance([]*entity.Transaction{c, b, a}, nil)

		if !forward.Equal(reversed) {
			t.Errorf("expected identical balance, got %s and %s",
				forward.StringFixed(2), reversed.StringFixed(2))
		}
	})

	t.Run("random ledgers match the independent sum", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for trial := 0; trial < 50; trial++ {
			txns := make([]*entity.Transaction, rng.Intn(40)) // zero-length included
			expected := decimal.Zero
			for i := range txns {
				// Amounts in cents keep the expectation exact.
				amount := decimal.NewFromInt(int64(rng.Intn(500_000) + 1)).Div(decimal.NewFromInt(100))
				kind := entity.TransactionKindExpense
				if rng.Intn(2) == 0 {
					kind = entity.TransactionKindIncome
				}
				txn, err := entity.NewTransaction(ownerID, categoryID, amount, kind, date, "", nil, nil)
				if err != nil {
					t.Fatalf("failed to create transaction: %v", err)
				}
				txns[i] = txn

				if kind == entity.TransactionKindIncome {
					expected = expected.Add(amount)
				} else {
					expected = expected.Sub(amount)
				}
			}

			balance := CalculateBalance(txns, nil)
			if !balance.Equal(expected) {
				t.Fatalf("trial %d: expected %s, got %s",
					trial, expected.StringFixed(2), balance.StringFixed(2))
			}

			rng.Shuffle(len(txns), func(i, j int) { txns[i], txns[j] = txns[j], txns[i] })
			if shuffled := CalculateBalance(txns, nil); !shuffled.Equal(balance) {
				t.Fatalf("trial %d: shuffle changed balance from %s to %s",
					trial, balance.StringFixed(2), shuffled.StringFixed(2))
			}
		}
	})

	t.Run("soft-deleted transactions are excluded", func(t *testing.T) {
		deleted := makeTransaction(t, ownerID, categoryID, "100.00", entity.TransactionKindExpense, date)
		deletedAt := date.Add(24 * time.Hour)
		deleted.DeletedAt = &deletedAt

		txns := []*entity.Transaction{
			deleted,
			makeTransaction(t, ownerID, categoryID, "50.00", entity.TransactionKindIncome, date),
		}
		balance := CalculateBalance(txns, nil)
		if got := balance.StringFixed(2); got != "50.00" {
			t.Errorf("expected 50.00, got %s", got)
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		window := DateRange{
			Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, categoryID, "10.00", entity.TransactionKindExpense, window.Start),
			makeTransaction(t, ownerID, categoryID, "20.00", entity.TransactionKindExpense, window.End),
			makeTransaction(t, ownerID, categoryID, "99.00", entity.TransactionKindExpense,
				time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)),
		}
		balance := CalculateBalance(txns, &window)
		if got := balance.StringFixed(2); got != "-30.00" {
			t.Errorf("expected -30.00, got %s", got)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	ownerID := uuid.New()
	food := uuid.New()
	transport := uuid.New()
	entertainment := uuid.New()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	txns := []*entity.Transaction{
		makeTransaction(t, ownerID, food, "100.00", entity.TransactionKindExpense, date),
		makeTransaction(t, ownerID, food, "50.00", entity.TransactionKindExpense, date),
		makeTransaction(t, ownerID, transport, "30.00", entity.TransactionKindExpense, date),
		// Income never contributes to a spend breakdown.
		makeTransaction(t, ownerID, food, "2000.00", entity.TransactionKindIncome, date),
		// Outside the requested month.
		makeTransaction(t, ownerID, food, "77.00", entity.TransactionKindExpense,
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	breakdown := CategoryBreakdown(txns, time.March, 2024)

	if got := breakdown[food].StringFixed(2); got != "150.00" {
		t.Errorf("expected food total 150.00, got %s", got)
	}
	if got := breakdown[transport].StringFixed(2); got != "30.00" {
		t.Errorf("expected transport total 30.00, got %s", got)
	}
	if _, ok := breakdown[entertainment]; ok {
		t.Error("expected category without expenses to be omitted")
	}
	if len(breakdown) != 2 {
		t.Errorf("expected 2 categories, got %d", len(breakdown))
	}
}

func makeGoal(t *testing.T, ownerID, categoryID uuid.UUID, limit string, period entity.GoalPeriod, startDate time.Time, endDate *time.Time) *entity.BudgetGoal {
	t.Helper()
	goal, err := entity.NewBudgetGoal(ownerID, categoryID, mustDecimal(t, limit), period, entity.DefaultAlertThreshold, startDate, endDate)
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return goal
}

func TestEvaluateBudgetAlerts(t *testing.T) {
	ownerID := uuid.New()
	foodID := uuid.New()
	transportID := uuid.New()

	categories := []*entity.Category{
		{ID: foodID, OwnerID: ownerID, Name: "Food & Dining"},
		{ID: transportID, OwnerID: ownerID, Name: "Transportation"},
	}

	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	goalStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	threshold := decimal.NewFromInt(80)

	t.Run("alert fires at threshold with exact percent", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "500.00", entity.GoalPeriodMonthly, goalStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "425.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		alert := alerts[0]
		if got := alert.PercentUsed.StringFixed(2); got != "85.00" {
			t.Errorf("expected percent used 85.00, got %s", got)
		}
		if got := alert.Spent.StringFixed(2); got != "425.00" {
			t.Errorf("expected spent 425.00, got %s", got)
		}
		if alert.OverBudget {
			t.Error("expected alert below the limit not to be over budget")
		}
		if alert.CategoryName != "Food & Dining" {
			t.Errorf("expected category name Food & Dining, got %s", alert.CategoryName)
		}
	})

	t.Run("no alert below threshold", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "500.00", entity.GoalPeriodMonthly, goalStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "399.99", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 0 {
			t.Fatalf("expected no alert, got %d", len(alerts))
		}
	})

	t.Run("spend outside the current period window does not count", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "500.00", entity.GoalPeriodMonthly, goalStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "425.00", entity.TransactionKindExpense,
				time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 0 {
			t.Fatalf("expected no alert for last month's spend, got %d", len(alerts))
		}
	})

	t.Run("goal outside its validity window is skipped", func(t *testing.T) {
		endDate := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "500.00", entity.GoalPeriodMonthly, goalStart, &endDate),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "500.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 0 {
			t.Fatalf("expected no alert for expired goal, got %d", len(alerts))
		}
	})

	t.Run("inactive goal is skipped", func(t *testing.T) {
		goal := makeGoal(t, ownerID, foodID, "500.00", entity.GoalPeriodMonthly, goalStart, nil)
		goal.IsActive = false
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "500.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts([]*entity.BudgetGoal{goal}, categories, txns, threshold, now)
		if len(alerts) != 0 {
			t.Fatalf("expected no alert for paused goal, got %d", len(alerts))
		}
	})

	t.Run("over budget flag set when spend exceeds limit", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "200.00", entity.GoalPeriodMonthly, goalStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "250.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if !alerts[0].OverBudget {
			t.Error("expected over budget flag")
		}
		if got := alerts[0].PercentUsed.StringFixed(2); got != "125.00" {
			t.Errorf("expected percent used 125.00, got %s", got)
		}
	})

	t.Run("alerts ordered by percent used desc then name asc", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "100.00", entity.GoalPeriodMonthly, goalStart, nil),
			makeGoal(t, ownerID, transportID, "100.00", entity.GoalPeriodMonthly, goalStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "85.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
			makeTransaction(t, ownerID, transportID, "95.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 2 {
			t.Fatalf("expected 2 alerts, got %d", len(alerts))
		}
		if alerts[0].CategoryName != "Transportation" || alerts[1].CategoryName != "Food & Dining" {
			t.Errorf("expected order Transportation, Food & Dining, got %s, %s",
				alerts[0].CategoryName, alerts[1].CategoryName)
		}
	})

	t.Run("weekly goal uses the ISO week window", func(t *testing.T) {
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "100.00", entity.GoalPeriodWeekly, goalStart, nil),
		}
		// now is Wednesday 2024-03-20; the week runs Mon 18th to Sun 24th.
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "90.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)),
			makeTransaction(t, ownerID, foodID, "90.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if got := alerts[0].Spent.StringFixed(2); got != "90.00" {
			t.Errorf("expected only this week's spend 90.00, got %s", got)
		}
	})

	t.Run("spend before the goal start date does not count", func(t *testing.T) {
		midMonthStart := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		goals := []*entity.BudgetGoal{
			makeGoal(t, ownerID, foodID, "100.00", entity.GoalPeriodMonthly, midMonthStart, nil),
		}
		txns := []*entity.Transaction{
			makeTransaction(t, ownerID, foodID, "90.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
			makeTransaction(t, ownerID, foodID, "85.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
		}

		alerts := EvaluateBudgetAlerts(goals, categories, txns, threshold, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if got := alerts[0].Spent.StringFixed(2); got != "85.00" {
			t.Errorf("expected spend clipped to 85.00, got %s", got)
		}
	})

	t.Run("no goals yields no alerts", func(t *testing.T) {
		alerts := EvaluateBudgetAlerts(nil, categories, nil, threshold, now)
		if len(alerts) != 0 {
			t.Fatalf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestSpendInPeriod(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	goal := makeGoal(t, ownerID, categoryID, "300.00", entity.GoalPeriodMonthly,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil)

	txns := []*entity.Transaction{
		makeTransaction(t, ownerID, categoryID, "120.00", entity.TransactionKindExpense,
			time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)),
		makeTransaction(t, ownerID, categoryID, "80.00", entity.TransactionKindExpense,
			time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC)),
		makeTransaction(t, ownerID, uuid.New(), "55.00", entity.TransactionKindExpense,
			time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC)),
	}

	spent := SpendInPeriod(txns, goal, now)
	if got := spent.StringFixed(2); got != "120.00" {
		t.Errorf("expected 120.00, got %s", got)
	}
}
