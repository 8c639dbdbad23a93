// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alert represents a notification-worthy budget condition: spend within a
// goal's current period has reached the configured percentage of its limit.
// Alerts are computed on demand and never persisted.
type Alert struct {
	GoalID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Period       GoalPeriod
	Limit        decimal.Decimal
	Spent        decimal.Decimal
	PercentUsed  decimal.Decimal
	OverBudget   bool
}
