package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// stubTransactionRepo serves a fixed snapshot, applying only the date filter.
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
	var out []*entity.Transaction
	for _, txn := range s.transactions {
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
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

func trendTransaction(t *testing.T, amount string, kind entity.TransactionKind, date time.Time) *entity.Transaction {
	t.Helper()
	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", amount, err)
	}
	txn, err := entity.NewTransaction(uuid.New(), uuid.New(), value, kind, date, "", nil, nil)
	if err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func TestGetMonthlyTrend(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	repo := &stubTransactionRepo{
		transactions: []*entity.Transaction{
			trendTransaction(t, "3000.00", entity.TransactionKindIncome,
				time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
			trendTransaction(t, "500.00", entity.TransactionKindExpense,
				time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)),
			trendTransaction(t, "200.00", entity.TransactionKindExpense,
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		},
	}

	uc := NewGetMonthlyTrendUseCase(repo).WithClock(func() time.Time { return now })

	t.Run("computes trailing months oldest first", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthlyTrendInput{
			OwnerID: uuid.New(),
			Months:  3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(output.Points))
		}

		if output.Points[0].Month != "2024-01" || output.Points[2].Month != "2024-03" {
			t.Errorf("expected months 2024-01..2024-03, got %s..%s",
				output.Points[0].Month, output.Points[2].Month)
		}

		feb := output.Points[1]
		if got := feb.Net.StringFixed(2); got != "2500.00" {
			t.Errorf("expected February net 2500.00, got %s", got)
		}

		march := output.Points[2]
		if got := march.Expenses.StringFixed(2); got != "200.00" {
			t.Errorf("expected March expenses 200.00, got %s", got)
		}
		if got := march.Net.StringFixed(2); got != "-200.00" {
			t.Errorf("expected March net -200.00, got %s", got)
		}
	})

	t.Run("zero months falls back to the default", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthlyTrendInput{OwnerID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Points) != DefaultTrendMonths {
			t.Errorf("expected %d points, got %d", DefaultTrendMonths, len(output.Points))
		}
	})

	t.Run("negative months is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetMonthlyTrendInput{OwnerID: uuid.New(), Months: -1})
		if !errors.Is(err, domainerror.ErrInvalidTrendMonths) {
			t.Errorf("expected ErrInvalidTrendMonths, got %v", err)
		}
	})
}
