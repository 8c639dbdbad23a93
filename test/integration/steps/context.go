// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/usecase/category"
	"github.com/swiftbudget/backend/internal/application/usecase/dashboard"
	"github.com/swiftbudget/backend/internal/application/usecase/goal"
	"github.com/swiftbudget/backend/internal/application/usecase/project"
	"github.com/swiftbudget/backend/internal/application/usecase/transaction"
	"github.com/swiftbudget/backend/internal/integration/cache"
	"github.com/swiftbudget/backend/internal/integration/persistence"
	"github.com/swiftbudget/backend/test/integration/mock"
)

// TestContext holds the wired use cases and accumulated state for one scenario.
type TestContext struct {
	clock *mock.Clock

	createTransaction  *transaction.CreateTransactionUseCase
	updateTransaction  *transaction.UpdateTransactionUseCase
	deleteTransaction  *transaction.DeleteTransactionUseCase
	restoreTransaction *transaction.RestoreTransactionUseCase

	seedDefaults   *category.SeedDefaultsUseCase
	createCategory *category.CreateCategoryUseCase
	updateCategory *category.UpdateCategoryUseCase
	deleteCategory *category.DeleteCategoryUseCase
	listCategories *category.ListCategoriesUseCase

	createGoal    *goal.CreateGoalUseCase
	toggleGoal    *goal.ToggleGoalUseCase
	getGoalStatus *goal.GetStatusUseCase

	createProject        *project.CreateProjectUseCase
	updateProject        *project.UpdateProjectUseCase
	toggleProject        *project.ToggleProjectUseCase
	deleteProject        *project.DeleteProjectUseCase
	listProjects         *project.ListProjectsUseCase
	getProjectStatistics *project.GetStatisticsUseCase

	spendingSummary *dashboard.GetSpendingSummaryUseCase
	evaluateAlerts  *dashboard.EvaluateAlertsUseCase

	// Scenario state, keyed by the aliases the feature files use.
	owners       map[string]uuid.UUID
	categories   map[uuid.UUID]map[string]uuid.UUID // owner -> name -> id
	transactions map[string]uuid.UUID               // note -> id
	goals        map[uuid.UUID]map[string]uuid.UUID // owner -> category name -> goal id
	projects     map[uuid.UUID]map[string]uuid.UUID // owner -> name -> id

	lastErr          error
	lastBalance      decimal.Decimal
	lastSummary      *dashboard.GetSpendingSummaryOutput
	lastAlerts       *dashboard.EvaluateAlertsOutput
	lastStatus       *goal.GetStatusOutput
	lastProjectStats *project.GetStatisticsOutput
	lastProjectList  *project.ListProjectsOutput
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		mock.NewDb()
		mock.NewRedis()
	})
}

// InitializeScenario registers hooks and step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := mock.ClearDb(db); err != nil {
			return ctx, err
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		clock := mock.NewClock()
		now := clock.Now

		transactionRepo := persistence.NewTransactionRepository(db)
		categoryRepo := persistence.NewCategoryRepository(db)
		goalRepo := persistence.NewGoalRepository(db)
		projectRepo := persistence.NewProjectRepository(db)
		summaryCache := cache.NewSummaryCache(redisClient, time.Minute)

		tc := &TestContext{
			clock: clock,

			createTransaction: transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, projectRepo, summaryCache),
			updateTransaction: transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, projectRepo, summaryCache),
			deleteTransaction: transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache),
			restoreTransaction: transaction.NewRestoreTransactionUseCase(
				transactionRepo, summaryCache, transaction.DefaultRecoveryWindow).WithClock(now),

			seedDefaults:   category.NewSeedDefaultsUseCase(categoryRepo),
			createCategory: category.NewCreateCategoryUseCase(categoryRepo),
			updateCategory: category.NewUpdateCategoryUseCase(categoryRepo),
			deleteCategory: category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo),
			listCategories: category.NewListCategoriesUseCase(categoryRepo),

			createGoal:    goal.NewCreateGoalUseCase(goalRepo, categoryRepo, summaryCache),
			toggleGoal:    goal.NewToggleGoalUseCase(goalRepo, summaryCache),
			getGoalStatus: goal.NewGetStatusUseCase(goalRepo, categoryRepo, transactionRepo).WithClock(now),

			createProject:        project.NewCreateProjectUseCase(projectRepo),
			updateProject:        project.NewUpdateProjectUseCase(projectRepo),
			toggleProject:        project.NewToggleProjectUseCase(projectRepo),
			deleteProject:        project.NewDeleteProjectUseCase(projectRepo, transactionRepo),
			listProjects:         project.NewListProjectsUseCase(projectRepo),
			getProjectStatistics: project.NewGetStatisticsUseCase(projectRepo, transactionRepo),

			spendingSummary: dashboard.NewGetSpendingSummaryUseCase(transactionRepo, categoryRepo).WithClock(now),
			evaluateAlerts: dashboard.NewEvaluateAlertsUseCase(
				goalRepo, categoryRepo, transactionRepo, summaryCache).WithClock(now),

			owners:       make(map[string]uuid.UUID),
			categories:   make(map[uuid.UUID]map[string]uuid.UUID),
			transactions: make(map[string]uuid.UUID),
			goals:        make(map[uuid.UUID]map[string]uuid.UUID),
			projects:     make(map[uuid.UUID]map[string]uuid.UUID),
		}

		return SetTestContext(ctx, tc), nil
	})

	registerLedgerSteps(ctx)
	registerProjectSteps(ctx)
}
