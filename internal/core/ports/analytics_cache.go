package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by AnalyticsCache.Get when no entry exists for
// the key. Query handlers fall through to the database on a miss and treat
// any other cache error as a miss too.
var ErrCacheMiss = errors.New("analytics cache miss")

// AnalyticsCache is a read-through cache for analytics query payloads, which
// aggregate over whole order histories and are too expensive to run on every
// request.
type AnalyticsCache interface {
	// Get returns the cached payload for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores payload under key for the given lifetime.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
