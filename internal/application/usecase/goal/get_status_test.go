package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// stubGoalRepo serves a single fixed goal.
type stubGoalRepo struct {
	goal *entity.BudgetGoal
}

func (s *stubGoalRepo) Create(ctx context.Context, goal *entity.BudgetGoal) error { return nil }

func (s *stubGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetGoal, error) {
	if s.goal == nil || s.goal.ID != id {
		return nil, domainerror.ErrGoalNotFound
	}
	return s.goal, nil
}

func (s *stubGoalRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*entity.BudgetGoal, error) {
	return []*entity.BudgetGoal{s.goal}, nil
}

func (s *stubGoalRepo) ExistsActive(ctx context.Context, ownerID, categoryID uuid.UUID, period entity.GoalPeriod, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubGoalRepo) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubGoalRepo) Update(ctx context.Context, goal *entity.BudgetGoal) error { return nil }
func (s *stubGoalRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubGoalRepo) ListOwnersWithActiveGoals(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

// stubCategoryRepo serves a single fixed category.
type stubCategoryRepo struct {
	category *entity.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *entity.Category) error { return nil }
func (s *stubCategoryRepo) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	return nil
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if s.category == nil || s.category.ID != id {
		return nil, domainerror.ErrCategoryNotFound
	}
	return s.category, nil
}

func (s *stubCategoryRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	return []*entity.Category{s.category}, nil
}

func (s *stubCategoryRepo) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

// stubTransactionRepo serves a fixed snapshot.
type stubTransactionRepo struct {
	transactions []*entity.Transaction
}

func (s *stubTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error { return nil }

func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Transaction, error) {
	return s.transactions, nil
}

func (s *stubTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return s.transactions, nil
}

func (s *stubTransactionRepo) Update(ctx context.Context, txn *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubTransactionRepo) Restore(ctx context.Context, id uuid.UUID) error           { return nil }
func (s *stubTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}
func (s *stubTransactionRepo) ClearProject(ctx context.Context, projectID uuid.UUID) error {
	return nil
}

func TestGetStatus(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	category, err := entity.NewCategory(ownerID, "Food & Dining", true)
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	newStatusUseCase := func(goal *entity.BudgetGoal, txns []*entity.Transaction) *GetStatusUseCase {
		return NewGetStatusUseCase(
			&stubGoalRepo{goal: goal},
			&stubCategoryRepo{category: category},
			&stubTransactionRepo{transactions: txns},
		).WithClock(func() time.Time { return now })
	}

	t.Run("reports spend against the current period", func(t *testing.T) {
		goal, err := entity.NewBudgetGoal(ownerID, category.ID, decimal.NewFromInt(500),
			entity.GoalPeriodMonthly, 80, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil)
		if err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}

		txn, err := entity.NewTransaction(ownerID, category.ID, decimal.NewFromInt(425),
			entity.TransactionKindExpense, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "", nil, nil)
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		output, err := newStatusUseCase(goal, []*entity.Transaction{txn}).Execute(
			context.Background(), GetStatusInput{GoalID: goal.ID, OwnerID: ownerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := output.PercentUsed.StringFixed(2); got != "85.00" {
			t.Errorf("expected 85.00 percent used, got %s", got)
		}
		if got := output.Remaining.StringFixed(2); got != "75.00" {
			t.Errorf("expected 75.00 remaining, got %s", got)
		}
		if !output.ShouldAlert {
			t.Error("expected the goal to alert at 85 percent")
		}
	})

	t.Run("non-positive limit reports zero percent instead of dividing", func(t *testing.T) {
		// Construction rejects such limits, but rows are not guaranteed to
		// have come through the constructor.
		goal := &entity.BudgetGoal{
			ID:             uuid.New(),
			OwnerID:        ownerID,
			CategoryID:     category.ID,
			LimitAmount:    decimal.Zero,
			Period:         entity.GoalPeriodMonthly,
			AlertThreshold: 80,
			StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			IsActive:       true,
		}

		txn, err := entity.NewTransaction(ownerID, category.ID, decimal.NewFromInt(50),
			entity.TransactionKindExpense, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "", nil, nil)
		if err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		output, err := newStatusUseCase(goal, []*entity.Transaction{txn}).Execute(
			context.Background(), GetStatusInput{GoalID: goal.ID, OwnerID: ownerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.PercentUsed.Equal(decimal.Zero) {
			t.Errorf("expected 0 percent used, got %s", output.PercentUsed.StringFixed(2))
		}
		if got := output.Spent.StringFixed(2); got != "50.00" {
			t.Errorf("expected 50.00 spent, got %s", got)
		}
	})

	t.Run("foreign goal is rejected", func(t *testing.T) {
		goal, err := entity.NewBudgetGoal(ownerID, category.ID, decimal.NewFromInt(500),
			entity.GoalPeriodMonthly, 80, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil)
		if err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}

		_, err = newStatusUseCase(goal, nil).Execute(
			context.Background(), GetStatusInput{GoalID: goal.ID, OwnerID: uuid.New()})
		if err == nil {
			t.Fatal("expected an authorization error")
		}
	})
}
