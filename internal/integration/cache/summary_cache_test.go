package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*summaryCache, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &summaryCache{client: client, ttl: time.Minute}, server
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	alerts := []entity.Alert{
		{
			GoalID:       uuid.New(),
			CategoryID:   uuid.New(),
			CategoryName: "Food & Dining",
			Period:       entity.GoalPeriodMonthly,
			Limit:        decimal.NewFromInt(500),
			Spent:        decimal.NewFromInt(425),
			PercentUsed:  decimal.NewFromInt(85),
			OverBudget:   false,
		},
	}

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newTestCache(t)
		got, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit || got != nil {
			t.Error("expected a miss on empty cache")
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.SetAlerts(ctx, ownerID, alerts); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !hit {
			t.Fatal("expected a hit after set")
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(got))
		}
		if got[0].CategoryName != "Food & Dining" {
			t.Errorf("expected category name Food & Dining, got %s", got[0].CategoryName)
		}
		if !got[0].PercentUsed.Equal(decimal.NewFromInt(85)) {
			t.Errorf("expected percent used 85, got %s", got[0].PercentUsed)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.SetAlerts(ctx, ownerID, alerts); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if err := c.Invalidate(ctx, ownerID); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		_, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if hit {
			t.Error("expected a miss after invalidate")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c, server := newTestCache(t)
		if err := c.SetAlerts(ctx, ownerID, alerts); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		server.FastForward(2 * time.Minute)

		_, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if hit {
			t.Error("expected a miss after TTL expiry")
		}
	})

	t.Run("corrupt entry is treated as a miss", func(t *testing.T) {
		c, server := newTestCache(t)
		server.Set(alertKey(ownerID), "not json")

		_, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if hit {
			t.Error("expected corrupt payload to read as a miss")
		}
	})

	t.Run("empty alert list round-trips as a hit", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.SetAlerts(ctx, ownerID, []entity.Alert{}); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, hit, err := c.GetAlerts(ctx, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !hit {
			t.Error("expected a hit for cached empty result")
		}
		if len(got) != 0 {
			t.Errorf("expected no alerts, got %d", len(got))
		}
	})
}
