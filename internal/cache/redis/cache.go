// Package redis implements the fetch cache on Redis so multiple instances
// share one TTL window per key.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/observability"
	"github.com/modelrates/modelrates/internal/telemetry"
)

const (
	backendName = "redis"
	keyPrefix   = "modelrates:fetch:"
)

// FetchCache stores fetch payloads as JSON under a TTL enforced by Redis.
// Values come back as json.RawMessage; callers decode via cache.Decode.
type FetchCache struct {
	client  *redis.Client
	group   singleflight.Group
	metrics *telemetry.Metrics
}

// NewFetchCache creates a Redis-backed fetch cache. metrics may be nil.
func NewFetchCache(client *redis.Client, metrics *telemetry.Metrics) *FetchCache {
	return &FetchCache{
		client:  client,
		metrics: metrics,
	}
}

// FetchWithCache returns the cached payload for key when present, otherwise
// invokes fetch and stores the JSON-marshaled result. Fetch and marshal
// failures degrade to fallback; Redis read failures are treated as misses.
func (c *FetchCache) FetchWithCache(
	ctx context.Context,
	key string,
	fetch domain.FetchFunc,
	ttl time.Duration,
	fallback any,
) any {
	if raw, ok := c.lookup(ctx, key); ok {
		c.metrics.RecordCacheLookup(backendName, true)
		return raw
	}
	c.metrics.RecordCacheLookup(backendName, false)

	v, err, _ := c.group.Do(key, func() (any, error) {
		if raw, ok := c.lookup(ctx, key); ok {
			return raw, nil
		}

		data, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to marshal cache payload: %w", marshalErr)
		}

		if setErr := c.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); setErr != nil {
			// The fetched value is still good; only the shared cache missed out.
			observability.FromContext(ctx).Warn("failed to store cache entry",
				observability.String("cache_key", key),
				observability.Error(setErr))
		}

		return json.RawMessage(payload), nil
	})
	if err != nil {
		observability.FromContext(ctx).Warn("fetch failed, using fallback",
			observability.String("cache_key", key),
			observability.Error(err))
		return fallback
	}

	return v
}

// Clear drops the entry for key, or every entry under the cache prefix when
// key is empty.
func (c *FetchCache) Clear(ctx context.Context, key string) {
	if key != "" {
		if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
			observability.FromContext(ctx).Warn("failed to clear cache entry",
				observability.String("cache_key", key),
				observability.Error(err))
		}
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			observability.FromContext(ctx).Warn("failed to clear cache entry",
				observability.String("cache_key", iter.Val()),
				observability.Error(err))
		}
	}
}

func (c *FetchCache) lookup(ctx context.Context, key string) (json.RawMessage, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(payload), true
}
