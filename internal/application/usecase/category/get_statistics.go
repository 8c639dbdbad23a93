// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// GetStatisticsInput represents the input for category statistics.
type GetStatisticsInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
}

// GetStatisticsOutput represents the output of category statistics.
type GetStatisticsOutput struct {
	Statistics entity.CategoryStatistics
}

// GetStatisticsUseCase summarizes a category's usage: transaction count,
// total spent, total earned and whether a budget goal targets it.
type GetStatisticsUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes the statistics.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.OwnerID != input.OwnerID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to access category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		OwnerID:     input.OwnerID,
		CategoryIDs: []uuid.UUID{input.CategoryID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load category transactions: %w", err)
	}

	spent := decimal.Zero
	earned := decimal.Zero
	for _, txn := range transactions {
		if txn.Kind == entity.TransactionKindExpense {
			spent = spent.Add(txn.Amount)
		} else {
			earned = earned.Add(txn.Amount)
		}
	}

	hasGoal, err := uc.goalRepo.ExistsByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget goal: %w", err)
	}

	return &GetStatisticsOutput{
		Statistics: entity.CategoryStatistics{
			TransactionCount: len(transactions),
			TotalSpent:       spent,
			TotalEarned:      earned,
			HasBudgetGoal:    hasGoal,
		},
	}, nil
}
