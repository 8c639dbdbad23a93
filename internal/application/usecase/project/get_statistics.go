// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// GetStatisticsInput represents the input for project statistics.
type GetStatisticsInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

// GetStatisticsOutput represents the output of project statistics.
type GetStatisticsOutput struct {
	ProjectName string
	IsActive    bool
	Statistics  entity.ProjectStatistics
}

// GetStatisticsUseCase summarizes a project's transaction activity: count,
// income, expenses and net spending.
type GetStatisticsUseCase struct {
	projectRepo     adapter.ProjectRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(
	projectRepo adapter.ProjectRepository,
	transactionRepo adapter.TransactionRepository,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the statistics over the project's non-deleted transactions.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if project.OwnerID != input.OwnerID {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorizedProject,
			"not authorized to access project",
			domainerror.ErrNotAuthorizedToModifyProject,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		OwnerID:   input.OwnerID,
		ProjectID: &input.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load project transactions: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range transactions {
		if txn.Kind == entity.TransactionKindExpense {
			expenses = expenses.Add(txn.Amount)
		} else {
			income = income.Add(txn.Amount)
		}
	}

	return &GetStatisticsOutput{
		ProjectName: project.Name,
		IsActive:    project.IsActive,
		Statistics: entity.ProjectStatistics{
			TransactionCount: len(transactions),
			TotalIncome:      income,
			TotalExpenses:    expenses,
			NetSpending:      expenses.Sub(income),
		},
	}, nil
}
