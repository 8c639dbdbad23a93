// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum length for a category name.
const MaxCategoryNameLength = 50

// DefaultCategoryNames is the set of categories seeded for every new owner.
// Default categories cannot be renamed or deleted.
var DefaultCategoryNames = []string{
	"Food & Dining",
	"Groceries",
	"Rent/Mortgage",
	"Utilities",
	"Transportation",
	"Healthcare",
	"Entertainment",
	"Shopping",
	"Income",
	"Other",
}

// Category represents a transaction category. Names are unique per owner,
// case-insensitively; different owners may use the same name.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	IsDefault bool
	CreatedAt time.Time
}

// NewCategory creates a new Category entity, validating that the name is
// present and within bounds. Per-owner uniqueness is enforced by the
// application layer, which has access to the owner's existing categories.
func NewCategory(ownerID uuid.UUID, name string, isDefault bool) (*Category, error) {
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name too long",
			domainerror.ErrCategoryNameTooLong,
		)
	}

	return &Category{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		IsDefault: isDefault,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// CategoryStatistics summarizes a category's usage, shown before deletion
// decisions and on the category listing.
type CategoryStatistics struct {
	TransactionCount int
	TotalSpent       decimal.Decimal
	TotalEarned      decimal.Decimal
	HasBudgetGoal    bool
}
