// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// SummaryCache caches computed alert evaluations per owner. Any write to an
// owner's ledger or goals must invalidate their entry; aggregation itself
// stays pure and never touches the cache.
type SummaryCache interface {
	// GetAlerts returns the cached alerts for an owner, or (nil, false) on miss.
	GetAlerts(ctx context.Context, ownerID uuid.UUID) ([]entity.Alert, bool, error)

	// SetAlerts stores the alerts computed for an owner.
	SetAlerts(ctx context.Context, ownerID uuid.UUID, alerts []entity.Alert) error

	// Invalidate drops all cached values for an owner.
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
