// Package ledger implements the pure aggregation core of SwiftBudget:
// balance, per-category spend and budget-threshold alerts computed over an
// in-memory snapshot of one owner's records. All operations are stateless,
// side-effect free and never fail on well-formed input.
package ledger

import (
	"time"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// DateRange is an inclusive calendar-date filter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the given date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	d := entity.DateOnly(date)
	return !d.Before(entity.DateOnly(r.Start)) && !d.After(entity.DateOnly(r.End))
}

// PeriodBounds returns the calendar-aligned window of the goal period
// containing the given date: ISO week (Monday through Sunday), calendar
// month, or calendar year.
func PeriodBounds(date time.Time, period entity.GoalPeriod) DateRange {
	d := entity.DateOnly(date)

	switch period {
	case entity.GoalPeriodWeekly:
		weekday := int(d.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		start := d.AddDate(0, 0, -(weekday - 1))
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case entity.GoalPeriodYearly:
		start := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	default: // monthly
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	}
}

// MonthBounds returns the window of the given calendar month.
func MonthBounds(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// intersect clips the period window to the goal's validity window, so spend
// accrued before a goal started never counts against it.
func intersect(window DateRange, goal *entity.BudgetGoal) DateRange {
	if goal.StartDate.After(window.Start) {
		window.Start = goal.StartDate
	}
	if goal.EndDate != nil && goal.EndDate.Before(window.End) {
		window.End = *goal.EndDate
	}
	return window
}
