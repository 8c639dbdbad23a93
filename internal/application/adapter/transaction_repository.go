// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	OwnerID        uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	CategoryIDs    []uuid.UUID
	ProjectID      *uuid.UUID
	Kind           *entity.TransactionKind
	IncludeDeleted bool
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID, soft-deleted rows included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByOwner retrieves the owner's full non-deleted ledger, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// Restore clears the soft-delete flag of a transaction.
	Restore(ctx context.Context, id uuid.UUID) error

	// CountByCategory counts non-deleted transactions referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// ClearProject detaches all transactions from a project. Used when a
	// project is deleted; the transactions themselves survive.
	ClearProject(ctx context.Context, projectID uuid.UUID) error
}
