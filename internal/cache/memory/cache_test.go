package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchCache_FetchWithCache(t *testing.T) {
	ctx := context.Background()

	t.Run("caches the fetched value within TTL", func(t *testing.T) {
		cache := NewFetchCache(nil)

		calls := 0
		fetch := func(ctx context.Context) (any, error) {
			calls++
			return "live-data", nil
		}

		first := cache.FetchWithCache(ctx, "key", fetch, time.Minute, "fallback")
		second := cache.FetchWithCache(ctx, "key", fetch, time.Minute, "fallback")

		require.Equal(t, "live-data", first)
		require.Equal(t, "live-data", second)
		require.Equal(t, 1, calls)
	})

	t.Run("refetches after expiry", func(t *testing.T) {
		cache := NewFetchCache(nil)

		current := time.Now()
		cache.now = func() time.Time { return current }

		calls := 0
		fetch := func(ctx context.Context) (any, error) {
			calls++
			return calls, nil
		}

		first := cache.FetchWithCache(ctx, "key", fetch, time.Minute, nil)
		require.Equal(t, 1, first)

		// Advance past the TTL.
		current = current.Add(2 * time.Minute)

		second := cache.FetchWithCache(ctx, "key", fetch, time.Minute, nil)
		require.Equal(t, 2, second)
		require.Equal(t, 2, calls)
	})

	t.Run("failed fetch returns fallback without caching it", func(t *testing.T) {
		cache := NewFetchCache(nil)

		failing := func(ctx context.Context) (any, error) {
			return nil, errors.New("upstream down")
		}

		got := cache.FetchWithCache(ctx, "key", failing, time.Minute, "static-table")
		require.Equal(t, "static-table", got)

		// A later successful fetch must not be shadowed by the fallback.
		recovered := cache.FetchWithCache(ctx, "key", func(ctx context.Context) (any, error) {
			return "fresh", nil
		}, time.Minute, "static-table")
		require.Equal(t, "fresh", recovered)
	})

	t.Run("nil fallback on failure", func(t *testing.T) {
		cache := NewFetchCache(nil)

		got := cache.FetchWithCache(ctx, "key", func(ctx context.Context) (any, error) {
			return nil, errors.New("nope")
		}, time.Minute, nil)
		require.Nil(t, got)
	})

	t.Run("concurrent fetches for the same key coalesce", func(t *testing.T) {
		cache := NewFetchCache(nil)

		var calls atomic.Int32
		slowFetch := func(ctx context.Context) (any, error) {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)
			return "shared", nil
		}

		const workers = 10
		var wg sync.WaitGroup
		results := make([]any, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = cache.FetchWithCache(ctx, "key", slowFetch, time.Minute, nil)
			}(i)
		}
		wg.Wait()

		require.Equal(t, int32(1), calls.Load())
		for _, r := range results {
			require.Equal(t, "shared", r)
		}
	})

	t.Run("distinct keys are cached independently", func(t *testing.T) {
		cache := NewFetchCache(nil)

		a := cache.FetchWithCache(ctx, "a", func(ctx context.Context) (any, error) {
			return "value-a", nil
		}, time.Minute, nil)
		b := cache.FetchWithCache(ctx, "b", func(ctx context.Context) (any, error) {
			return "value-b", nil
		}, time.Minute, nil)

		require.Equal(t, "value-a", a)
		require.Equal(t, "value-b", b)
	})
}

func TestFetchCache_Clear(t *testing.T) {
	ctx := context.Background()

	newCounter := func() (func(ctx context.Context) (any, error), *int) {
		calls := new(int)
		return func(ctx context.Context) (any, error) {
			*calls++
			return *calls, nil
		}, calls
	}

	t.Run("clear one key", func(t *testing.T) {
		cache := NewFetchCache(nil)
		fetchA, callsA := newCounter()
		fetchB, callsB := newCounter()

		cache.FetchWithCache(ctx, "a", fetchA, time.Minute, nil)
		cache.FetchWithCache(ctx, "b", fetchB, time.Minute, nil)

		cache.Clear(ctx, "a")

		cache.FetchWithCache(ctx, "a", fetchA, time.Minute, nil)
		cache.FetchWithCache(ctx, "b", fetchB, time.Minute, nil)

		require.Equal(t, 2, *callsA)
		require.Equal(t, 1, *callsB)
	})

	t.Run("empty key clears everything", func(t *testing.T) {
		cache := NewFetchCache(nil)
		fetchA, callsA := newCounter()
		fetchB, callsB := newCounter()

		cache.FetchWithCache(ctx, "a", fetchA, time.Minute, nil)
		cache.FetchWithCache(ctx, "b", fetchB, time.Minute, nil)

		cache.Clear(ctx, "")

		cache.FetchWithCache(ctx, "a", fetchA, time.Minute, nil)
		cache.FetchWithCache(ctx, "b", fetchB, time.Minute, nil)

		require.Equal(t, 2, *callsA)
		require.Equal(t, 2, *callsB)
	})
}
