package domain

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/modelrates/modelrates/internal/observability"
)

// AggregationObserver receives aggregation timings. Implemented by the
// telemetry package; nil-safe implementations expected.
type AggregationObserver interface {
	RecordAggregation(scope string, durationMS float64)
}

// Aggregator fans out to every configured pricing source concurrently and
// merges the results. The source set is fixed at construction; each call
// produces fresh records and statuses with no cross-call state.
type Aggregator struct {
	sources  []PricingSource
	aliases  map[string]string
	observer AggregationObserver
}

// NewAggregator creates an aggregator over the given sources. aliases maps
// lowercase alternative provider names to canonical ones and may be nil.
// observer may be nil.
func NewAggregator(sources []PricingSource, aliases map[string]string, observer AggregationObserver) *Aggregator {
	return &Aggregator{
		sources:  sources,
		aliases:  aliases,
		observer: observer,
	}
}

type sourceResult struct {
	records []PricingRecord
	status  ProviderStatus
}

// GetAllPricing fetches every provider concurrently. Any subset of providers
// may fail without affecting the others; the merged list and the status list
// both follow source registration order.
func (a *Aggregator) GetAllPricing(ctx context.Context) ([]PricingRecord, []ProviderStatus) {
	start := time.Now()

	results := a.fetchConcurrently(ctx, a.sources)

	records := make([]PricingRecord, 0, totalRecords(results))
	statuses := make([]ProviderStatus, 0, len(results))
	for _, res := range results {
		records = append(records, res.records...)
		statuses = append(statuses, res.status)
	}

	a.recordDuration("all", start)
	return records, statuses
}

// GetPricingByProvider fetches a single provider by case-insensitive name or
// alias. An unknown provider yields empty results and an empty status list —
// deliberately distinct from a known provider that failed, which yields a
// status entry with IsAvailable=false.
func (a *Aggregator) GetPricingByProvider(ctx context.Context, name string) ([]PricingRecord, []ProviderStatus) {
	start := time.Now()

	canonical := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := a.aliases[canonical]; ok {
		canonical = alias
	}

	var matched []PricingSource
	for _, src := range a.sources {
		if strings.ToLower(src.Name()) == canonical {
			matched = append(matched, src)
		}
	}
	if len(matched) == 0 {
		return []PricingRecord{}, []ProviderStatus{}
	}

	results := a.fetchConcurrently(ctx, matched)

	records := make([]PricingRecord, 0, totalRecords(results))
	statuses := make([]ProviderStatus, 0, len(results))
	for _, res := range results {
		records = append(records, res.records...)
		statuses = append(statuses, res.status)
	}

	a.recordDuration("provider", start)
	return records, statuses
}

// FindModelPricing returns the record for the given model name via
// case-insensitive exact match over the full aggregate, or nil when no
// provider defines it. When several providers define the same name, the
// first-registered provider wins.
func (a *Aggregator) FindModelPricing(ctx context.Context, modelName string) *PricingRecord {
	records, _ := a.GetAllPricing(ctx)
	return findModel(ctx, records, modelName)
}

// findModel performs the case-insensitive first-match lookup over an already
// fetched record list.
func findModel(ctx context.Context, records []PricingRecord, modelName string) *PricingRecord {
	wanted := strings.ToLower(strings.TrimSpace(modelName))

	var match *PricingRecord
	for i := range records {
		if strings.ToLower(records[i].ModelName) != wanted {
			continue
		}
		if match == nil {
			match = &records[i]
			continue
		}
		observability.FromContext(ctx).Debug("duplicate model name across providers",
			observability.String("model", modelName),
			observability.String("kept_provider", match.Provider),
			observability.String("ignored_provider", records[i].Provider))
	}

	return match
}

// fetchConcurrently launches every source fetch in its own goroutine and
// joins once. A source that panics past its own handling is converted to a
// synthetic failed status rather than aborting the aggregation.
func (a *Aggregator) fetchConcurrently(ctx context.Context, sources []PricingSource) []sourceResult {
	results := make([]sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src PricingSource) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					observability.FromContext(ctx).Error("provider fetch panicked",
						observability.String("panic", fmt.Sprint(r)))
					results[i] = sourceResult{
						status: ProviderStatus{
							ProviderName: "Unknown",
							IsAvailable:  false,
							ErrorMessage: fmt.Sprintf("unexpected provider failure: %v", r),
						},
					}
				}
			}()

			records, status := src.PricingWithStatus(ctx)
			results[i] = sourceResult{records: records, status: status}
		}(i, src)
	}
	wg.Wait()

	return results
}

func (a *Aggregator) recordDuration(scope string, start time.Time) {
	if a.observer == nil {
		return
	}
	a.observer.RecordAggregation(scope, float64(time.Since(start))/float64(time.Millisecond))
}

func totalRecords(results []sourceResult) int {
	n := 0
	for _, res := range results {
		n += len(res.records)
	}
	return n
}
