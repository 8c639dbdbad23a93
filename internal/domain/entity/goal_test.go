package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

func TestNewBudgetGoal(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid goal with defaults applied", func(t *testing.T) {
		goal, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriodMonthly, DefaultAlertThreshold, start, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !goal.IsActive {
			t.Error("expected new goal to be active")
		}
		if goal.AlertThreshold != 80 {
			t.Errorf("expected threshold 80, got %d", goal.AlertThreshold)
		}
	})

	t.Run("rejects zero limit", func(t *testing.T) {
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.Zero,
			GoalPeriodMonthly, DefaultAlertThreshold, start, nil)
		if !errors.Is(err, domainerror.ErrInvalidLimitAmount) {
			t.Errorf("expected ErrInvalidLimitAmount, got %v", err)
		}
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriod("daily"), DefaultAlertThreshold, start, nil)
		if !errors.Is(err, domainerror.ErrInvalidGoalPeriod) {
			t.Errorf("expected ErrInvalidGoalPeriod, got %v", err)
		}
	})

	t.Run("rejects threshold above 100", func(t *testing.T) {
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriodMonthly, 101, start, nil)
		if !errors.Is(err, domainerror.ErrInvalidAlertThreshold) {
			t.Errorf("expected ErrInvalidAlertThreshold, got %v", err)
		}
	})

	t.Run("rejects negative threshold", func(t *testing.T) {
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriodMonthly, -1, start, nil)
		if !errors.Is(err, domainerror.ErrInvalidAlertThreshold) {
			t.Errorf("expected ErrInvalidAlertThreshold, got %v", err)
		}
	})

	t.Run("rejects inverted validity window", func(t *testing.T) {
		end := start.AddDate(0, 0, -1)
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriodMonthly, DefaultAlertThreshold, start, &end)
		if !errors.Is(err, domainerror.ErrInvalidValidityWindow) {
			t.Errorf("expected ErrInvalidValidityWindow, got %v", err)
		}
	})

	t.Run("accepts single-day validity window", func(t *testing.T) {
		end := start
		_, err := NewBudgetGoal(ownerID, categoryID, decimal.NewFromInt(500),
			GoalPeriodMonthly, DefaultAlertThreshold, start, &end)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestBudgetGoalInValidityWindow(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	goal := &BudgetGoal{StartDate: start, EndDate: &end}

	if goal.InValidityWindow(start.AddDate(0, 0, -1)) {
		t.Error("expected day before start to be outside the window")
	}
	if !goal.InValidityWindow(start) {
		t.Error("expected start date to be inside the window")
	}
	if !goal.InValidityWindow(end) {
		t.Error("expected end date to be inside the window")
	}
	if goal.InValidityWindow(end.AddDate(0, 0, 1)) {
		t.Error("expected day after end to be outside the window")
	}

	openEnded := &BudgetGoal{StartDate: start}
	if !openEnded.InValidityWindow(start.AddDate(10, 0, 0)) {
		t.Error("expected open-ended goal to accept far future dates")
	}
}
