// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch creates several categories in one operation.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByOwner retrieves all categories for an owner, name ascending.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error)

	// ExistsByOwnerAndName checks for a case-insensitive name collision within
	// an owner's categories, optionally excluding one category ID (for renames).
	ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
