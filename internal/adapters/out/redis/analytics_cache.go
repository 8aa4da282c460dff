// Package redis provides the Redis-backed analytics cache.
package redis

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache implements the analytics cache port over a Redis client.
// Values are opaque JSON payloads; keys carry their own namespace prefix.
type AnalyticsCache struct {
	client *redis.Client
}

// NewAnalyticsCache creates a cache backed by the given client.
func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{client: client}
}

// Get returns the cached payload or ports.ErrCacheMiss when the key is
// absent or expired.
func (c *AnalyticsCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload under the key for the given TTL.
func (c *AnalyticsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
