// Package main is the entry point for the budget alert worker.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/swiftbudget/backend/config"
	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/application/usecase/dashboard"
	"github.com/swiftbudget/backend/internal/infra/db"
	"github.com/swiftbudget/backend/internal/integration/cache"
	"github.com/swiftbudget/backend/internal/integration/persistence"
	"github.com/swiftbudget/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting budget alert worker",
		"environment", cfg.Env,
		"poll_interval", cfg.Worker.PollInterval.String(),
	)

	if !cfg.Worker.Enabled {
		slog.Info("Alert worker disabled, exiting")
		return
	}

	// Connect and migrate in one step
	database, err := db.Open(&cfg.Database, cfg.Env,
		&model.CategoryModel{},
		&model.ProjectModel{},
		&model.TransactionModel{},
		&model.BudgetGoalModel{},
	)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Initialize Redis client for the summary cache
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create repositories and use cases
	transactionRepo := persistence.NewTransactionRepository(database.Gorm())
	categoryRepo := persistence.NewCategoryRepository(database.Gorm())
	goalRepo := persistence.NewGoalRepository(database.Gorm())
	summaryCache := cache.NewSummaryCache(redisClient, cfg.Redis.CacheTTL)

	evaluateAlerts := dashboard.NewEvaluateAlertsUseCase(goalRepo, categoryRepo, transactionRepo, summaryCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.Worker.PollInterval)
	defer ticker.Stop()

	// Evaluate once at startup, then on every tick.
	runSweep(ctx, goalRepo, evaluateAlerts)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received, stopping alert worker")
			return
		case <-ticker.C:
			runSweep(ctx, goalRepo, evaluateAlerts)
		}
	}
}

// runSweep evaluates budget alerts for every owner with at least one active
// goal and logs each alert that fires.
func runSweep(ctx context.Context, goalRepo adapter.GoalRepository, evaluateAlerts *dashboard.EvaluateAlertsUseCase) {
	ownerIDs, err := goalRepo.ListOwnersWithActiveGoals(ctx)
	if err != nil {
		slog.Error("Failed to list owners with active goals", "error", err)
		return
	}

	for _, ownerID := range ownerIDs {
		output, err := evaluateAlerts.Execute(ctx, dashboard.EvaluateAlertsInput{OwnerID: ownerID})
		if err != nil {
			slog.Error("Alert evaluation failed", "owner_id", ownerID, "error", err)
			continue
		}

		for _, alert := range output.Alerts {
			slog.Warn("Budget alert",
				"owner_id", ownerID,
				"goal_id", alert.GoalID,
				"category", alert.CategoryName,
				"period", string(alert.Period),
				"limit", alert.Limit.StringFixed(2),
				"spent", alert.Spent.StringFixed(2),
				"percent_used", alert.PercentUsed.StringFixed(2),
				"over_budget", alert.OverBudget,
				"cached", output.Cached,
			)
		}
	}
}
