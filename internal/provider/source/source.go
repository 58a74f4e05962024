// Package source implements the one generic pricing source. Provider
// differences live in catalog.ProviderConfig; the fallback chain here is the
// same for everyone: live model discovery, live pricing scrape, performance
// probe, static table.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/modelrates/modelrates/internal/cache"
	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/fetch"
	"github.com/modelrates/modelrates/internal/observability"
	"github.com/modelrates/modelrates/internal/provider/catalog"
	"github.com/modelrates/modelrates/internal/telemetry"
)

// ErrEmptyStaticTable is the provider-terminal error: without a static table
// the fallback chain has no floor to land on.
var ErrEmptyStaticTable = errors.New("static pricing table is empty")

// Fallback tier names, in chain order.
const (
	TierDiscovery = "discovery"
	TierScrape    = "scrape"
	TierProbe     = "probe"
	TierStatic    = "static"
)

// TierState says what happened to one fallback tier during a fetch.
type TierState string

const (
	// TierOK means the tier produced data.
	TierOK TierState = "ok"
	// TierSkipped means the tier was not attempted (e.g. no API key).
	TierSkipped TierState = "skipped"
	// TierFailed means the tier was attempted and produced nothing.
	TierFailed TierState = "failed"
)

// TierStatus is the inspectable outcome of one tier, so "skipped" and
// "attempted but failed" stay distinguishable to tests and logs.
type TierStatus struct {
	Tier   string
	State  TierState
	Reason string
}

// Source serves one provider's pricing through the fallback chain.
type Source struct {
	cfg     catalog.ProviderConfig
	cache   domain.FetchCache
	fetcher *fetch.Fetcher
	lister  domain.ModelLister
	metrics *telemetry.Metrics
}

// New creates a source for one provider. lister is optional; when nil, live
// discovery uses the provider's HTTP model-listing endpoint. metrics may be
// nil.
func New(
	cfg catalog.ProviderConfig,
	fetchCache domain.FetchCache,
	fetcher *fetch.Fetcher,
	lister domain.ModelLister,
	metrics *telemetry.Metrics,
) *Source {
	return &Source{
		cfg:     cfg,
		cache:   fetchCache,
		fetcher: fetcher,
		lister:  lister,
		metrics: metrics,
	}
}

// Name returns the canonical provider name.
func (s *Source) Name() string {
	return s.cfg.Name
}

// FetchPricingData runs the fallback chain. Network failures at any tier are
// absorbed; the only failure it propagates is an unusable static table.
func (s *Source) FetchPricingData(ctx context.Context) ([]domain.PricingRecord, error) {
	records, _, err := s.FetchPricingDetail(ctx)
	return records, err
}

// FetchPricingDetail is FetchPricingData plus the per-tier outcomes.
func (s *Source) FetchPricingDetail(ctx context.Context) ([]domain.PricingRecord, []TierStatus, error) {
	if len(s.cfg.StaticTable) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", s.cfg.Name, ErrEmptyStaticTable)
	}

	ctx = observability.WithProvider(ctx, s.cfg.Name)

	chain := make([]TierStatus, 0, 4)

	discovered, status := s.discoverModels(ctx)
	chain = append(chain, status)
	if len(discovered) > 0 {
		s.logUndocumentedModels(ctx, discovered)
	}

	livePricing, status := s.scrapePricing(ctx)
	chain = append(chain, status)

	perf, status := s.probePerformance(ctx)
	chain = append(chain, status)

	records := s.merge(livePricing, perf)
	chain = append(chain, TierStatus{Tier: TierStatic, State: TierOK})
	s.metrics.RecordFetch(s.cfg.Name, TierStatic, string(TierOK))

	return records, chain, nil
}

// PricingWithStatus wraps FetchPricingData so it never fails: errors become
// an unavailable ProviderStatus with an empty record list.
func (s *Source) PricingWithStatus(ctx context.Context) ([]domain.PricingRecord, domain.ProviderStatus) {
	records, err := s.FetchPricingData(ctx)
	if err != nil {
		observability.FromContext(ctx).Warn("provider fetch failed",
			observability.String("provider", s.cfg.Name),
			observability.Error(err))
		return nil, domain.ProviderStatus{
			ProviderName: s.cfg.Name,
			IsAvailable:  false,
			ErrorMessage: err.Error(),
			ModelsCount:  0,
		}
	}

	return records, domain.ProviderStatus{
		ProviderName: s.cfg.Name,
		IsAvailable:  true,
		ModelsCount:  len(records),
	}
}

// discoverModels is tier 1: list the model identifiers the provider currently
// serves. Skipped without an API key; failure falls through silently.
func (s *Source) discoverModels(ctx context.Context) ([]string, TierStatus) {
	if s.cfg.APIKey == "" && s.lister == nil {
		return nil, s.tierResult(TierDiscovery, TierSkipped, "no API key configured")
	}

	fetchFn := func(ctx context.Context) (any, error) {
		if s.lister != nil {
			return s.lister.ListModels(ctx)
		}
		return s.fetcher.ModelList(ctx, s.cfg.APIEndpoint, s.cfg.APIKey)
	}

	v := s.cache.FetchWithCache(ctx, s.cacheKey("models"), fetchFn, s.cfg.PricingTTL, nil)
	models, ok := cache.Decode[[]string](v)
	if !ok || len(models) == 0 {
		return nil, s.tierResult(TierDiscovery, TierFailed, "model list unavailable")
	}

	return models, s.tierResult(TierDiscovery, TierOK, "")
}

// scrapePricing is tier 2: per-model costs from the public pricing page.
func (s *Source) scrapePricing(ctx context.Context) (map[string]fetch.ModelPrice, TierStatus) {
	if s.cfg.PricingURL == "" {
		return nil, s.tierResult(TierScrape, TierSkipped, "no pricing URL configured")
	}

	fetchFn := func(ctx context.Context) (any, error) {
		return s.fetcher.PricingPage(ctx, s.cfg.PricingURL)
	}

	v := s.cache.FetchWithCache(ctx, s.cacheKey("pricing_web"), fetchFn, s.cfg.PricingTTL, nil)
	pricing, ok := cache.Decode[map[string]fetch.ModelPrice](v)
	if !ok || len(pricing) == 0 {
		return nil, s.tierResult(TierScrape, TierFailed, "pricing page unavailable")
	}

	return pricing, s.tierResult(TierScrape, TierOK, "")
}

// perfEstimate is the throughput/latency pair applied to every record.
type perfEstimate struct {
	throughput float64
	latencyMS  float64
	probed     bool
}

// probePerformance is tier 3: a lightweight status-endpoint probe. Failure
// yields the provider's configured default estimates.
func (s *Source) probePerformance(ctx context.Context) (perfEstimate, TierStatus) {
	defaults := perfEstimate{
		throughput: s.cfg.DefaultThroughput,
		latencyMS:  s.cfg.DefaultLatencyMS,
	}

	if s.cfg.StatusURL == "" {
		return defaults, s.tierResult(TierProbe, TierSkipped, "no status URL configured")
	}

	fetchFn := func(ctx context.Context) (any, error) {
		return s.fetcher.HealthCheck(ctx, s.cfg.StatusURL)
	}

	v := s.cache.FetchWithCache(ctx, s.cacheKey("performance"), fetchFn, s.cfg.PerformanceTTL, nil)
	health, ok := cache.Decode[fetch.HealthStatus](v)
	if !ok {
		return defaults, s.tierResult(TierProbe, TierFailed, "status endpoint unavailable")
	}
	if !health.Healthy {
		return defaults, s.tierResult(TierProbe, TierFailed,
			fmt.Sprintf("status endpoint unhealthy (status %d)", health.StatusCode))
	}

	est := defaults
	if health.LatencyMS > 0 {
		est.latencyMS = health.LatencyMS
		est.probed = true
	}

	return est, s.tierResult(TierProbe, TierOK, "")
}

// logUndocumentedModels notes live model identifiers the static table does
// not cover yet; they are candidates for the next catalog update.
func (s *Source) logUndocumentedModels(ctx context.Context, discovered []string) {
	missing := 0
	for _, model := range discovered {
		if _, ok := s.cfg.StaticTable[model]; !ok {
			missing++
		}
	}
	if missing > 0 {
		observability.FromContext(ctx).Debug("live models missing from static table",
			observability.String("provider", s.cfg.Name),
			observability.Int("count", missing))
	}
}

// merge builds the final record list: the static table is the canonical model
// list, live scraped prices win over static ones per model, and performance
// estimates apply across the board.
func (s *Source) merge(
	livePricing map[string]fetch.ModelPrice,
	perf perfEstimate,
) []domain.PricingRecord {
	liveByModel := make(map[string]fetch.ModelPrice, len(livePricing))
	for model, price := range livePricing {
		liveByModel[strings.ToLower(model)] = price
	}

	names := make([]string, 0, len(s.cfg.StaticTable))
	for name := range s.cfg.StaticTable {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now().UTC()
	records := make([]domain.PricingRecord, 0, len(names))
	for _, name := range names {
		static := s.cfg.StaticTable[name]

		inputPer1K := static.InputPer1K
		outputPer1K := static.OutputPer1K
		provenance := s.cfg.StaticSource
		if live, ok := liveByModel[strings.ToLower(name)]; ok {
			inputPer1K = live.Input
			outputPer1K = live.Output
			provenance = s.cfg.Name + " Pricing Page (Live)"
		}

		throughput := perf.throughput
		latency := perf.latencyMS
		if static.Throughput > 0 {
			throughput = static.Throughput
		}
		if static.LatencyMS > 0 && !perf.probed {
			latency = static.LatencyMS
		}

		rec := domain.PricingRecord{
			ModelName:          name,
			Provider:           s.cfg.Name,
			CostPerInputToken:  inputPer1K / 1000, // table units are per 1K tokens
			CostPerOutputToken: outputPer1K / 1000,
			Currency:           domain.DefaultCurrency,
			Unit:               domain.UnitPerToken,
			UseCases:           static.UseCases,
			Strengths:          static.Strengths,
			BestFor:            static.BestFor,
			Source:             provenance,
			LastUpdated:        now,
		}
		if throughput > 0 {
			rec.Throughput = &throughput
		}
		if latency > 0 {
			rec.LatencyMS = &latency
		}
		if static.ContextWindow > 0 {
			cw := static.ContextWindow
			rec.ContextWindow = &cw
		}

		records = append(records, rec)
	}

	return records
}

func (s *Source) cacheKey(suffix string) string {
	return strings.ToLower(strings.ReplaceAll(s.cfg.Name, " ", "_")) + "_" + suffix
}

func (s *Source) tierResult(tier string, state TierState, reason string) TierStatus {
	s.metrics.RecordFetch(s.cfg.Name, tier, string(state))
	return TierStatus{Tier: tier, State: state, Reason: reason}
}
