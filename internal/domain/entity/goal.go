// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// GoalPeriod represents the recurrence period of a budget goal.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// DefaultAlertThreshold is the percentage of the limit at which an alert fires.
const DefaultAlertThreshold = 80

// BudgetGoal represents a spending ceiling for one category over a recurrence
// period. At most one active goal may exist per (owner, category, period).
type BudgetGoal struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	CategoryID     uuid.UUID
	LimitAmount    decimal.Decimal
	Period         GoalPeriod
	AlertThreshold int
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBudgetGoal creates a new BudgetGoal entity, validating that the limit is
// strictly positive (a zero limit would make percent-used undefined), the
// period is one of the three allowed values, the alert threshold is within
// 0-100 and the validity window is not inverted.
func NewBudgetGoal(
	ownerID uuid.UUID,
	categoryID uuid.UUID,
	limitAmount decimal.Decimal,
	period GoalPeriod,
	alertThreshold int,
	startDate time.Time,
	endDate *time.Time,
) (*BudgetGoal, error) {
	if limitAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be greater than zero",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	if !ValidGoalPeriod(period) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"period must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidGoalPeriod,
		)
	}

	if alertThreshold < 0 || alertThreshold > 100 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAlertThreshold,
			"alert threshold must be between 0 and 100",
			domainerror.ErrInvalidAlertThreshold,
		)
	}

	start := DateOnly(startDate)
	var end *time.Time
	if endDate != nil {
		e := DateOnly(*endDate)
		if e.Before(start) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidValidityWindow,
				"end date cannot be before start date",
				domainerror.ErrInvalidValidityWindow,
			)
		}
		end = &e
	}

	now := time.Now().UTC()

	return &BudgetGoal{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		CategoryID:     categoryID,
		LimitAmount:    limitAmount,
		Period:         period,
		AlertThreshold: alertThreshold,
		StartDate:      start,
		EndDate:        end,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ValidGoalPeriod reports whether the period is one of the allowed values.
func ValidGoalPeriod(period GoalPeriod) bool {
	return period == GoalPeriodWeekly ||
		period == GoalPeriodMonthly ||
		period == GoalPeriodYearly
}

// InValidityWindow reports whether the given date falls inside the goal's
// validity window.
func (g *BudgetGoal) InValidityWindow(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(g.StartDate) {
		return false
	}
	if g.EndDate != nil && d.After(*g.EndDate) {
		return false
	}
	return true
}

// GoalWithCategory represents a budget goal with its associated category.
type GoalWithCategory struct {
	Goal     *BudgetGoal
	Category *Category
}
