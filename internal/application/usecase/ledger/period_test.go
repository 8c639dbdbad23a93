package ledger

import (
	"testing"
	"time"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		period entity.GoalPeriod
		start  time.Time
		end    time.Time
	}{
		{
			name:   "weekly mid-week",
			date:   date(2024, time.March, 20), // Wednesday
			period: entity.GoalPeriodWeekly,
			start:  date(2024, time.March, 18),
			end:    date(2024, time.March, 24),
		},
		{
			name:   "weekly on Monday",
			date:   date(2024, time.March, 18),
			period: entity.GoalPeriodWeekly,
			start:  date(2024, time.March, 18),
			end:    date(2024, time.March, 24),
		},
		{
			name:   "weekly on Sunday stays in the same week",
			date:   date(2024, time.March, 24),
			period: entity.GoalPeriodWeekly,
			start:  date(2024, time.March, 18),
			end:    date(2024, time.March, 24),
		},
		{
			name:   "weekly spanning a month boundary",
			date:   date(2024, time.April, 1), // Monday
			period: entity.GoalPeriodWeekly,
			start:  date(2024, time.April, 1),
			end:    date(2024, time.April, 7),
		},
		{
			name:   "monthly in a leap February",
			date:   date(2024, time.February, 14),
			period: entity.GoalPeriodMonthly,
			start:  date(2024, time.February, 1),
			end:    date(2024, time.February, 29),
		},
		{
			name:   "monthly in December",
			date:   date(2023, time.December, 31),
			period: entity.GoalPeriodMonthly,
			start:  date(2023, time.December, 1),
			end:    date(2023, time.December, 31),
		},
		{
			name:   "yearly",
			date:   date(2024, time.July, 4),
			period: entity.GoalPeriodYearly,
			start:  date(2024, time.January, 1),
			end:    date(2024, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := PeriodBounds(tt.date, tt.period)
			if !bounds.Start.Equal(tt.start) {
				t.Errorf("expected start %s, got %s", tt.start, bounds.Start)
			}
			if !bounds.End.Equal(tt.end) {
				t.Errorf("expected end %s, got %s", tt.end, bounds.End)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	bounds := MonthBounds(2024, time.February)
	if !bounds.Start.Equal(date(2024, time.February, 1)) {
		t.Errorf("expected start 2024-02-01, got %s", bounds.Start)
	}
	if !bounds.End.Equal(date(2024, time.February, 29)) {
		t.Errorf("expected end 2024-02-29, got %s", bounds.End)
	}
}

func TestDateRangeContains(t *testing.T) {
	window := DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)}

	if !window.Contains(date(2024, time.March, 1)) {
		t.Error("expected start to be inside the range")
	}
	if !window.Contains(date(2024, time.March, 31)) {
		t.Error("expected end to be inside the range")
	}
	if window.Contains(date(2024, time.February, 29)) {
		t.Error("expected day before start to be outside the range")
	}
	if window.Contains(date(2024, time.April, 1)) {
		t.Error("expected day after end to be outside the range")
	}
	// Time-of-day is irrelevant for the calendar-date comparison.
	if !window.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)) {
		t.Error("expected any time on the end date to be inside the range")
	}
}
