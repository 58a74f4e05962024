// Package memory implements the in-process TTL fetch cache.
package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/observability"
	"github.com/modelrates/modelrates/internal/telemetry"
)

const backendName = "memory"

type entry struct {
	data      any
	createdAt time.Time
	ttl       time.Duration
}

// valid reports whether the entry is still fresh. Expired entries are
// logically absent; eviction is lazy, checked on read.
func (e entry) valid(now time.Time) bool {
	return now.Before(e.createdAt.Add(e.ttl))
}

// FetchCache is a process-wide TTL cache around fetch operations. Concurrent
// fetches for the same uncached key are coalesced into a single flight.
type FetchCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	metrics *telemetry.Metrics

	// now is replaceable in tests.
	now func() time.Time
}

// NewFetchCache creates an empty in-memory fetch cache. metrics may be nil.
func NewFetchCache(metrics *telemetry.Metrics) *FetchCache {
	return &FetchCache{
		entries: make(map[string]entry),
		metrics: metrics,
		now:     time.Now,
	}
}

// FetchWithCache returns the fresh cached value for key when present,
// otherwise invokes fetch. A failed fetch degrades to fallback (possibly nil)
// and is never propagated as an error.
func (c *FetchCache) FetchWithCache(
	ctx context.Context,
	key string,
	fetch domain.FetchFunc,
	ttl time.Duration,
	fallback any,
) any {
	if v, ok := c.lookup(key); ok {
		c.metrics.RecordCacheLookup(backendName, true)
		return v
	}
	c.metrics.RecordCacheLookup(backendName, false)

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent flight may have filled the entry while we waited.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		data, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		c.store(key, data, ttl)
		return data, nil
	})
	if err != nil {
		observability.FromContext(ctx).Warn("fetch failed, using fallback",
			observability.String("cache_key", key),
			observability.Error(err))
		return fallback
	}

	return v
}

// Clear drops the entry for key, or every entry when key is empty.
func (c *FetchCache) Clear(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key == "" {
		c.entries = make(map[string]entry)
		return
	}
	delete(c.entries, key)
}

func (c *FetchCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !e.valid(c.now()) {
		return nil, false
	}
	return e.data, true
}

func (c *FetchCache) store(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		data:      data,
		createdAt: c.now(),
		ttl:       ttl,
	}
}
