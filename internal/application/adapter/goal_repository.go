// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// GoalRepository defines the interface for budget goal persistence operations.
type GoalRepository interface {
	// Create creates a new budget goal in the database.
	Create(ctx context.Context, goal *entity.BudgetGoal) error

	// FindByID retrieves a budget goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetGoal, error)

	// FindByOwner retrieves the owner's budget goals, newest first.
	// When activeOnly is set, inactive goals are filtered out.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*entity.BudgetGoal, error)

	// ExistsActive checks whether an active goal already exists for the
	// (owner, category, period) triple, optionally excluding one goal ID.
	ExistsActive(ctx context.Context, ownerID, categoryID uuid.UUID, period entity.GoalPeriod, excludeID *uuid.UUID) (bool, error)

	// ExistsByCategory checks whether any goal targets the category.
	ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// Update updates an existing budget goal in the database.
	Update(ctx context.Context, goal *entity.BudgetGoal) error

	// Delete removes a budget goal from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ListOwnersWithActiveGoals returns the distinct owners that have at
	// least one active goal. Used by the alert worker.
	ListOwnersWithActiveGoals(ctx context.Context) ([]uuid.UUID, error)
}
