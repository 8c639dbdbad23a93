// Package cache implements caching adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

const alertKeyPrefix = "alerts:"

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a Redis-backed summary cache. Entries expire after
// ttl so stale alerts cannot outlive a missed invalidation.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

// GetAlerts returns the cached alerts for an owner, or (nil, false) on miss.
func (c *summaryCache) GetAlerts(ctx context.Context, ownerID uuid.UUID) ([]entity.Alert, bool, error) {
	payload, err := c.client.Get(ctx, alertKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var alerts []entity.Alert
	if err := json.Unmarshal(payload, &alerts); err != nil {
		// A corrupt entry is treated as a miss so the caller recomputes.
		return nil, false, nil
	}
	return alerts, true, nil
}

// SetAlerts stores the alerts computed for an owner.
func (c *summaryCache) SetAlerts(ctx context.Context, ownerID uuid.UUID, alerts []entity.Alert) error {
	payload, err := json.Marshal(alerts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, alertKey(ownerID), payload, c.ttl).Err()
}

// Invalidate drops all cached values for an owner.
func (c *summaryCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	return c.client.Del(ctx, alertKey(ownerID)).Err()
}

func alertKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s%s", alertKeyPrefix, ownerID)
}
