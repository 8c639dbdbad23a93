// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByOwner retrieves the owner's projects, name ascending. When
	// activeOnly is set, archived projects are filtered out.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*entity.Project, error)

	// ExistsByOwnerAndName checks for a case-insensitive name collision within
	// an owner's projects, optionally excluding one project ID (for renames).
	ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing project in the database.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
