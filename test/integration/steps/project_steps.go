// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/usecase/project"
	"github.com/swiftbudget/backend/internal/application/usecase/transaction"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

func registerProjectSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" creates a project named "([^"]*)"$`, createsAProject)
	ctx.Step(`^"([^"]*)" renames the project "([^"]*)" to "([^"]*)"$`, renamesTheProject)
	ctx.Step(`^"([^"]*)" archives the project "([^"]*)"$`, archivesTheProject)
	ctx.Step(`^"([^"]*)" deletes the project "([^"]*)"$`, deletesTheProject)

	ctx.Step(`^"([^"]*)" records an? (expense|income) of "([^"]*)" in "([^"]*)" on "([^"]*)" under the project "([^"]*)"$`, recordsAProjectTransaction)
	ctx.Step(`^"([^"]*)" assigns the transaction noted "([^"]*)" to the project "([^"]*)"$`, assignsTransactionToProject)
	ctx.Step(`^"([^"]*)" detaches the transaction noted "([^"]*)" from its project$`, detachesTransactionFromProject)

	ctx.Step(`^"([^"]*)" has (\d+) active projects?$`, hasActiveProjectCount)
	ctx.Step(`^"([^"]*)" has (\d+) projects? including archived$`, hasTotalProjectCount)

	ctx.Step(`^the statistics for the project "([^"]*)" of "([^"]*)" are requested$`, theProjectStatisticsAreRequested)
	ctx.Step(`^the project shows (\d+) transactions? with net spending "([^"]*)"$`, theProjectShowsNetSpending)
	ctx.Step(`^the project shows income "([^"]*)" and expenses "([^"]*)"$`, theProjectShowsIncomeAndExpenses)
}

func (tc *TestContext) project(ownerID uuid.UUID, name string) (uuid.UUID, error) {
	if id, ok := tc.projects[ownerID][strings.ToLower(name)]; ok {
		return id, nil
	}
	return uuid.Nil, fmt.Errorf("unknown project %q", name)
}

// anyProject resolves a project name regardless of who owns it, so scenarios
// can try to use another user's project.
func (tc *TestContext) anyProject(name string) (uuid.UUID, error) {
	for _, byName := range tc.projects {
		if id, ok := byName[strings.ToLower(name)]; ok {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("unknown project %q", name)
}

func (tc *TestContext) rememberProject(ownerID uuid.UUID, name string, id uuid.UUID) {
	if tc.projects[ownerID] == nil {
		tc.projects[ownerID] = make(map[string]uuid.UUID)
	}
	tc.projects[ownerID][strings.ToLower(name)] = id
}

func createsAProject(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, execErr := tc.createProject.Execute(ctx, project.CreateProjectInput{OwnerID: ownerID, Name: name})
	tc.lastErr = execErr
	if execErr == nil {
		tc.rememberProject(ownerID, name, output.Project.ID)
	}
	return nil
}

func renamesTheProject(ctx context.Context, alias, from, to string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	projectID, err := tc.project(ownerID, from)
	if err != nil {
		return err
	}

	_, execErr := tc.updateProject.Execute(ctx, project.UpdateProjectInput{
		ProjectID: projectID,
		OwnerID:   ownerID,
		Name:      &to,
	})
	tc.lastErr = execErr
	if execErr == nil {
		delete(tc.projects[ownerID], strings.ToLower(from))
		tc.rememberProject(ownerID, to, projectID)
	}
	return nil
}

func archivesTheProject(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	projectID, err := tc.project(ownerID, name)
	if err != nil {
		return err
	}

	_, execErr := tc.toggleProject.Execute(ctx, project.ToggleProjectInput{
		ProjectID: projectID,
		OwnerID:   ownerID,
	})
	tc.lastErr = execErr
	return nil
}

func deletesTheProject(ctx context.Context, alias, name string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	projectID, err := tc.project(ownerID, name)
	if err != nil {
		return err
	}

	tc.lastErr = tc.deleteProject.Execute(ctx, project.DeleteProjectInput{
		ProjectID: projectID,
		OwnerID:   ownerID,
	})
	return nil
}

func recordsAProjectTransaction(ctx context.Context, alias, kind, amount, categoryName, date, projectName string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	categoryID, err := tc.category(ownerID, categoryName)
	if err != nil {
		return err
	}
	projectID, err := tc.project(ownerID, projectName)
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

	_, execErr := tc.createTransaction.Execute(ctx, transaction.CreateTransactionInput{
		OwnerID:    ownerID,
		CategoryID: categoryID,
		Amount:     value,
		Kind:       entity.TransactionKind(kind),
		Date:       day,
		ProjectID:  &projectID,
	})
	tc.lastErr = execErr
	return nil
}

func assignsTransactionToProject(ctx context.Context, alias, note, projectName string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	txnID, ok := tc.transactions[note]
	if !ok {
		return fmt.Errorf("unknown transaction %q", note)
	}
	projectID, err := tc.anyProject(projectName)
	if err != nil {
		return err
	}

	_, execErr := tc.updateTransaction.Execute(ctx, transaction.UpdateTransactionInput{
		TransactionID: txnID,
		OwnerID:       ownerID,
		ProjectID:     &projectID,
	})
	tc.lastErr = execErr
	return nil
}

func detachesTransactionFromProject(ctx context.Context, alias, note string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	txnID, ok := tc.transactions[note]
	if !ok {
		return fmt.Errorf("unknown transaction %q", note)
	}

	none := uuid.Nil
	_, execErr := tc.updateTransaction.Execute(ctx, transaction.UpdateTransactionInput{
		TransactionID: txnID,
		OwnerID:       ownerID,
		ProjectID:     &none,
	})
	tc.lastErr = execErr
	return nil
}

func hasActiveProjectCount(ctx context.Context, alias string, expected int) error {
	return assertProjectCount(ctx, alias, expected, false)
}

func hasTotalProjectCount(ctx context.Context, alias string, expected int) error {
	return assertProjectCount(ctx, alias, expected, true)
}

func assertProjectCount(ctx context.Context, alias string, expected int, includeArchived bool) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}

	output, err := tc.listProjects.Execute(ctx, project.ListProjectsInput{
		OwnerID:         ownerID,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		return err
	}
	tc.lastProjectList = output

	if len(output.Projects) != expected {
		return fmt.Errorf("expected %d projects, got %d", expected, len(output.Projects))
	}
	return nil
}

func theProjectStatisticsAreRequested(ctx context.Context, projectName, alias string) error {
	tc := GetTestContext(ctx)
	ownerID, err := tc.owner(alias)
	if err != nil {
		return err
	}
	projectID, err := tc.project(ownerID, projectName)
	if err != nil {
		return err
	}

	output, execErr := tc.getProjectStatistics.Execute(ctx, project.GetStatisticsInput{
		ProjectID: projectID,
		OwnerID:   ownerID,
	})
	tc.lastErr = execErr
	tc.lastProjectStats = output
	return nil
}

func theProjectShowsNetSpending(ctx context.Context, count int, net string) error {
	tc := GetTestContext(ctx)
	if tc.lastProjectStats == nil {
		return fmt.Errorf("no project statistics requested")
	}

	stats := tc.lastProjectStats.Statistics
	if stats.TransactionCount != count {
		return fmt.Errorf("expected %d transactions, got %d", count, stats.TransactionCount)
	}
	if got := stats.NetSpending.StringFixed(2); got != net {
		return fmt.Errorf("expected net spending %s, got %s", net, got)
	}
	return nil
}

func theProjectShowsIncomeAndExpenses(ctx context.Context, income, expenses string) error {
	tc := GetTestContext(ctx)
	if tc.lastProjectStats == nil {
		return fmt.Errorf("no project statistics requested")
	}

	stats := tc.lastProjectStats.Statistics
	if got := stats.TotalIncome.StringFixed(2); got != income {
		return fmt.Errorf("expected income %s, got %s", income, got)
	}
	if got := stats.TotalExpenses.StringFixed(2); got != expenses {
		return fmt.Errorf("expected expenses %s, got %s", expenses, got)
	}
	return nil
}
