package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/usecase/category"
	"github.com/swiftbudget/backend/internal/application/usecase/dashboard"
	"github.com/swiftbudget/backend/internal/application/usecase/goal"
	"github.com/swiftbudget/backend/internal/application/usecase/transaction"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current date is "([^"]*)"$`, theCurrentDateIs)
	ctx.Step(`^a user "([^"]*)" with the default categories$`, aUserWithDefaultCategories)
	ctx.Step(`^"([^"]*)" has a custom category "([^"]*)"$`, hasACustomCategory)

	ctx.Step(`^"([^"]*)" records an? (expense|income) of "([^"]*)" in "([^"]*)" on "([^"]*)"$`, recordsATransaction)
	ctx.Step(`^"([^"]*)" records an? (expense|income) of "([^"]*)" in "([^"]*)" on "([^"]*)" noted "([^"]*)"$`, recordsANotedTransaction)
	ctx.Step(`^"([^"]*)" deletes the transaction noted "([^"]*)"$`, deletesTheTransaction)
	ctx.Step(`^"([^"]*)" restores the transaction noted "([^"]*)"$`, restoresTheTransaction)
	ctx.Step(`^"([^"]*)" moves the transaction noted "([^"]*)" to "([^"]*)"$`, movesTheTransaction)

	ctx.Step(`^"([^"]*)" creates a category named "([^"]*)"$`, createsACategory)
	ctx.Step(`^"([^"]*)" renames the category "([^"]*)" to "([^"]*)"$`, renamesTheCategory)
	ctx.Step(`^"([^"]*)" deletes the category "([^"]*)"$`, deletesTheCategory)
	ctx.Step(`^"([^"]*)" has (\d+) categories$`, hasCategoryCount)

	ctx.Step(`^"([^"]*)" sets a (weekly|monthly|yearly) budget of "([^"]*)" for "([^"]*)" starting "([^"]*)"$`, setsABudget)
	ctx.Step(`^"([^"]*)" sets a (weekly|monthly|yearly) budget of "([^"]*)" for "([^"]*)" starting "([^"]*)" alerting at (\d+) percent$`, setsABudgetWithThreshold)
	ctx.Step(`^"([^"]*)" pauses the budget for "([^"]*)"$`, pausesTheBudget)

	ctx.Step(`^the operation succeeds$`, theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, theOperationFailsWith)

	ctx.Step(`^the balance for "([^"]*)" is "([^"]*)"$`, theBalanceIs)
	ctx.Step(`^the spending summary for "([^"]*)" from "([^"]*)" to "([^"]*)" is requested$`, theSpendingSummaryIsRequested)
	ctx.Step(`^the summary shows total expenses "([^"]*)"$`, theSummaryShowsTotalExpenses)
	ctx.Step(`^the summary shows total income "([^"]*)"$`, theSummaryShowsTotalIncome)
	ctx.Step(`^the summary shows "([^"]*)" spent in "([^"]*)"$`, theSummaryShowsCategorySpend)
	ctx.Step(`^the summary omits "([^"]*)"$`, theSummaryOmitsCategory)

	ctx.Step(`^the budget alerts for "([^"]*)" are evaluated$`, theBudgetAlertsAreEvaluated)
	ctx.Step(`^the evaluation yields (\d+) alerts?$`, theEvaluationYieldsAlerts)
	ctx.Step(`^the top alert is for "([^"]*)" at "([^"]*)" percent used$`, theTopAlertIs)
	ctx.Step(`^the evaluation result comes from the cache$`, theEvaluationComesFromCache)
	ctx.Step(`^the evaluation result is freshly computed$`, theEvaluationIsFresh)

	ctx.Step(`^the budget status for "([^"]*)" on "([^"]*)" shows "([^"]*)" spent of "([^"]*)"$`, theBudgetStatusShows)
}

func (tc *TestContext) owner(alias string) (uuid.UUID, error) {
	if id, ok := tc.owners[alias]; ok {
		return id, nil
	}
	return uuid.Nil, fmt.Errorf("unknown user %q", alias)
}

func (tc *TestContext) category(ownerID uuid.UUID, name string) (uuid.UUID, error) {
	if id, ok := tc.categories[ownerID][strings.ToLower(name)]; ok {
		return id, nil
	}
	return uuid.Nil, fmt.Errorf("unknown category %q", name)
}

func (tc *TestContext) rememberCategory(ownerID uuid.UUID, name string, id uuid.UUID) {
	if tc.categories[ownerID] == nil {
		tc.categories[ownerID] = make(map[string]uuid.UUID)
	}
	tc.categories[ownerID][strings.ToLower(name)] = id
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseAmount(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

func theCurrentDateIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	date, err := parseDate(value)
	if err != nil {
		return err
	}
	tc.clock.Set(date.UTC())
	return nil
}

func aUserWithDefaultCategories(ctx context.Context, alias string) error {
	tc := GetTestContext(ctx)
	ownerID := uuid.New()
	tc.owners[alias] = ownerID

	output, err := tc.seedDefaults.Execute(ctx, category.SeedDefaultsInput{OwnerID: ownerID})
	if err != nil {
		return err
	}
	for _, c := range output.Created {
		tc.rememberCategory(ownerID, c.Name, c.ID)
	}
	return nil
}

func hasACustomCategory(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, err := tc.createCategory.Execute(ctx, category.CreateCategoryInput{OwnerID: ownerID, Name: name})
	if err != nil {
		return err
	}
	tc.rememberCategory(ownerID, name, output.Category.ID)
	return nil
}

func recordsATransaction(ctx context.Context, alias, kind, amount, categoryName, date string) error {
	return recordsANotedTransaction(ctx, alias, kind, amount, categoryName, date, "")
}

func recordsANotedTransaction(ctx context.Context, alias, kind, amount, categoryName, date, note string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	categoryID, err := tc.category(ownerID, categoryName)
	if err != nil {
		return err
	}
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	day, err := parseDate(date)
	if err != nil {
		return err
	}

	output, execErr := tc.createTransaction.Execute(ctx, transaction.CreateTransactionInput{
		OwnerID:    ownerID,
		CategoryID: categoryID,
		Amount:     value,
		Kind:       entity.TransactionKind(kind),
		Date:       day,
		Note:       note,
	})
	tc.lastErr = execErr
	if execErr == nil && note != "" {
		tc.transactions[note] = output.Transaction.ID
	}
	return nil
}

func deletesTheTransaction(ctx context.Context, alias, note string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	txnID, ok := tc.transactions[note]
	if !ok {
		return fmt.Errorf("unknown transaction %q", note)
	}

	tc.lastErr = tc.deleteTransaction.Execute(ctx, transaction.DeleteTransactionInput{
		TransactionID: txnID,
		OwnerID:       ownerID,
	})
	return nil
}

func restoresTheTransaction(ctx context.Context, alias, note string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	txnID, ok := tc.transactions[note]
	if !ok {
		return fmt.Errorf("unknown transaction %q", note)
	}

	tc.lastErr = tc.restoreTransaction.Execute(ctx, transaction.RestoreTransactionInput{
		TransactionID: txnID,
		OwnerID:       ownerID,
	})
	return nil
}

func movesTheTransaction(ctx context.Context, alias, note, categoryName string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	txnID, ok := tc.transactions[note]
	if !ok {
		return fmt.Errorf("unknown transaction %q", note)
	}
	categoryID, err := tc.category(ownerID, categoryName)
	if err != nil {
		return err
	}

	_, execErr := tc.updateTransaction.Execute(ctx, transaction.UpdateTransactionInput{
		TransactionID: txnID,
		OwnerID:       ownerID,
		CategoryID:    &categoryID,
	})
	tc.lastErr = execErr
	return nil
}

func createsACategory(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, execErr := tc.createCategory.Execute(ctx, category.CreateCategoryInput{OwnerID: ownerID, Name: name})
	tc.lastErr = execErr
	if execErr == nil {
		tc.rememberCategory(ownerID, name, output.Category.ID)
	}
	return nil
}

func renamesTheCategory(ctx context.Context, alias, from, to string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	categoryID, err := tc.category(ownerID, from)
	if err != nil {
		return err
	}

	_, execErr := tc.updateCategory.Execute(ctx, category.UpdateCategoryInput{
		CategoryID: categoryID,
		OwnerID:    ownerID,
		Name:       to,
	})
	tc.lastErr = execErr
	if execErr == nil {
		delete(tc.categories[ownerID], strings.ToLower(from))
		tc.rememberCategory(ownerID, to, categoryID)
	}
	return nil
}

func deletesTheCategory(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	categoryID, err := tc.category(ownerID, name)
	if err != nil {
		return err
	}

	tc.lastErr = tc.deleteCategory.Execute(ctx, category.DeleteCategoryInput{
		CategoryID: categoryID,
		OwnerID:    ownerID,
	})
	if tc.lastErr == nil {
		delete(tc.categories[ownerID], strings.ToLower(name))
	}
	return nil
}

func hasCategoryCount(ctx context.Context, alias string, expected int) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, err := tc.listCategories.Execute(ctx, category.ListCategoriesInput{OwnerID: ownerID})
	if err != nil {
		return err
	}
	if len(output.Categories) != expected {
		return fmt.Errorf("expected %d categories, got %d", expected, len(output.Categories))
	}
	return nil
}

func setsABudget(ctx context.Context, alias, period, limit, categoryName, start string) error {
	return setBudget(ctx, alias, period, limit, categoryName, start, nil)
}

func setsABudgetWithThreshold(ctx context.Context, alias, period, limit, categoryName, start string, threshold int) error {
	return setBudget(ctx, alias, period, limit, categoryName, start, &threshold)
}

func setBudget(ctx context.Context, alias, period, limit, categoryName, start string, threshold *int) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	categoryID, err := tc.category(ownerID, categoryName)
	if err != nil {
		return err
	}
	limitAmount, err := parseAmount(limit)
	if err != nil {
		return err
	}
	startDate, err := parseDate(start)
	if err != nil {
		return err
	}

	goalPeriod := entity.GoalPeriod(period)
	output, execErr := tc.createGoal.Execute(ctx, goal.CreateGoalInput{
		OwnerID:        ownerID,
		CategoryID:     categoryID,
		LimitAmount:    limitAmount,
		Period:         &goalPeriod,
		AlertThreshold: threshold,
		StartDate:      startDate,
	})
	tc.lastErr = execErr
	if execErr == nil {
		if tc.goals[ownerID] == nil {
			tc.goals[ownerID] = make(map[string]uuid.UUID)
		}
		tc.goals[ownerID][strings.ToLower(categoryName)] = output.Goal.ID
	}
	return nil
}

func pausesTheBudget(ctx context.Context, alias, categoryName string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	goalID, ok := tc.goals[ownerID][strings.ToLower(categoryName)]
	if !ok {
		return fmt.Errorf("unknown budget for category %q", categoryName)
	}

	_, execErr := tc.toggleGoal.Execute(ctx, goal.ToggleGoalInput{GoalID: goalID, OwnerID: ownerID})
	tc.lastErr = execErr
	return nil
}

func theOperationSucceeds(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected success, got error: %v", tc.lastErr)
	}
	return nil
}

func theOperationFailsWith(ctx context.Context, message string) error {
	tc := GetTestContext(ctx)
	if tc.lastErr == nil {
		return fmt.Errorf("expected failure containing %q, got success", message)
	}
	if !strings.Contains(tc.lastErr.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, tc.lastErr.Error())
	}
	tc.lastErr = nil
	return nil
}

func theBalanceIs(ctx context.Context, alias, expected string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	balance, err := tc.spendingSummary.Balance(ctx, ownerID, nil)
	if err != nil {
		return err
	}
	if balance.StringFixed(2) != expected {
		return fmt.Errorf("expected balance %s, got %s", expected, balance.StringFixed(2))
	}
	return nil
}

func theSpendingSummaryIsRequested(ctx context.Context, alias, start, end string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	startDate, err := parseDate(start)
	if err != nil {
		return err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return err
	}

	output, execErr := tc.spendingSummary.Execute(ctx, dashboard.GetSpendingSummaryInput{
		OwnerID:   ownerID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	tc.lastErr = execErr
	tc.lastSummary = output
	return nil
}

func theSummaryShowsTotalExpenses(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc.lastSummary == nil {
		return fmt.Errorf("no summary requested")
	}
	if got := tc.lastSummary.TotalExpenses.StringFixed(2); got != expected {
		return fmt.Errorf("expected total expenses %s, got %s", expected, got)
	}
	return nil
}

func theSummaryShowsTotalIncome(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc.lastSummary == nil {
		return fmt.Errorf("no summary requested")
	}
	if got := tc.lastSummary.TotalIncome.StringFixed(2); got != expected {
		return fmt.Errorf("expected total income %s, got %s", expected, got)
	}
	return nil
}

func theSummaryShowsCategorySpend(ctx context.Context, expected, categoryName string) error {
	tc := GetTestContext(ctx)
	if tc.lastSummary == nil {
		return fmt.Errorf("no summary requested")
	}
	for _, total := range tc.lastSummary.ByCategory {
		if strings.EqualFold(total.CategoryName, categoryName) {
			if got := total.Amount.StringFixed(2); got != expected {
				return fmt.Errorf("expected %s spent in %s, got %s", expected, categoryName, got)
			}
			return nil
		}
	}
	return fmt.Errorf("category %s not present in summary", categoryName)
}

func theSummaryOmitsCategory(ctx context.Context, categoryName string) error {
	tc := GetTestContext(ctx)
	if tc.lastSummary == nil {
		return fmt.Errorf("no summary requested")
	}
	for _, total := range tc.lastSummary.ByCategory {
		if strings.EqualFold(total.CategoryName, categoryName) {
			return fmt.Errorf("expected %s to be omitted from summary", categoryName)
		}
	}
	return nil
}

func theBudgetAlertsAreEvaluated(ctx context.Context, alias string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, execErr := tc.evaluateAlerts.Execute(ctx, dashboard.EvaluateAlertsInput{OwnerID: ownerID})
	tc.lastErr = execErr
	tc.lastAlerts = output
	return nil
}

func theEvaluationYieldsAlerts(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.lastAlerts == nil {
		return fmt.Errorf("no alert evaluation performed")
	}
	if len(tc.lastAlerts.Alerts) != expected {
		return fmt.Errorf("expected %d alerts, got %d", expected, len(tc.lastAlerts.Alerts))
	}
	return nil
}

func theTopAlertIs(ctx context.Context, categoryName, percent string) error {
	tc := GetTestContext(ctx)
	if tc.lastAlerts == nil || len(tc.lastAlerts.Alerts) == 0 {
		return fmt.Errorf("no alerts available")
	}
	top := tc.lastAlerts.Alerts[0]
	if !strings.EqualFold(top.CategoryName, categoryName) {
		return fmt.Errorf("expected top alert for %s, got %s", categoryName, top.CategoryName)
	}
	if got := top.PercentUsed.StringFixed(2); got != percent {
		return fmt.Errorf("expected percent used %s, got %s", percent, got)
	}
	return nil
}

func theEvaluationComesFromCache(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastAlerts == nil {
		return fmt.Errorf("no alert evaluation performed")
	}
	if !tc.lastAlerts.Cached {
		return fmt.Errorf("expected a cached evaluation result")
	}
	return nil
}

func theEvaluationIsFresh(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastAlerts == nil {
		return fmt.Errorf("no alert evaluation performed")
	}
	if tc.lastAlerts.Cached {
		return fmt.Errorf("expected a freshly computed evaluation result")
	}
	return nil
}

func theBudgetStatusShows(ctx context.Context, alias, categoryName, spent, limit string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	goalID, ok := tc.goals[ownerID][strings.ToLower(categoryName)]
	if !ok {
		return fmt.Errorf("unknown budget for category %q", categoryName)
	}

	output, err := tc.getGoalStatus.Execute(ctx, goal.GetStatusInput{GoalID: goalID, OwnerID: ownerID})
	if err != nil {
		return err
	}
	tc.lastStatus = output

	if got := output.Spent.StringFixed(2); got != spent {
		return fmt.Errorf("expected spent %s, got %s", spent, got)
	}
	if got := output.Limit.StringFixed(2); got != limit {
		return fmt.Errorf("expected limit %s, got %s", limit, got)
	}
	return nil
}
