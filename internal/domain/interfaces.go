package domain

import (
	"context"
	"time"
)

// PricingSource is one provider's pricing knowledge: a fallback chain of live
// lookups backed by a static table.
type PricingSource interface {
	// Name returns the canonical provider name.
	Name() string

	// FetchPricingData runs the fallback chain and returns the provider's
	// records. It fails only on terminal errors (an unusable static table);
	// network failures at any tier are absorbed by the chain.
	FetchPricingData(ctx context.Context) ([]PricingRecord, error)

	// PricingWithStatus wraps FetchPricingData and never fails: errors are
	// converted into an unavailable ProviderStatus with an empty record list.
	PricingWithStatus(ctx context.Context) ([]PricingRecord, ProviderStatus)
}

// FetchFunc produces a value to cache, typically via network I/O.
type FetchFunc func(ctx context.Context) (any, error)

// FetchCache is a TTL cache wrapped around arbitrary fetch operations. It is
// shared process-wide state; implementations must be safe for concurrent use.
type FetchCache interface {
	// FetchWithCache returns the cached value for key when fresh; otherwise it
	// invokes fetch and caches the result. On fetch failure it returns
	// fallback (which may be nil) — this layer never propagates fetch errors.
	FetchWithCache(ctx context.Context, key string, fetch FetchFunc, ttl time.Duration, fallback any) any

	// Clear drops the entry for key, or every entry when key is empty.
	Clear(ctx context.Context, key string)
}

// ModelLister discovers which model identifiers a provider currently serves.
type ModelLister interface {
	// ListModels returns the provider's live model identifiers.
	ListModels(ctx context.Context) ([]string, error)
}
