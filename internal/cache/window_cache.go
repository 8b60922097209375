package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
)

const keyPrefix = "health-insights:window:"

// WindowCache stores one Window per calendar day.
type WindowCache struct {
	kv KV
}

func NewWindowCache(kv KV) *WindowCache {
	return &WindowCache{kv: kv}
}

// Get returns the window stored for day, or ErrMiss.
func (c *WindowCache) Get(ctx context.Context, day time.Time) (*domain.Window, error) {
	raw, err := c.kv.Get(ctx, key(day))
	if err != nil {
		return nil, err
	}

	var w domain.Window
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("decode cached window: %w", err)
	}
	return &w, nil
}

// Put stores w for day until ttl elapses.
func (c *WindowCache) Put(ctx context.Context, day time.Time, w *domain.Window, ttl time.Duration) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode window: %w", err)
	}
	return c.kv.Set(ctx, key(day), string(raw), ttl)
}

// Invalidate drops the window stored for day.
func (c *WindowCache) Invalidate(ctx context.Context, day time.Time) error {
	return c.kv.Delete(ctx, key(day))
}

func key(day time.Time) string {
	return keyPrefix + day.Format("2006-01-02")
}
