package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the pricing service. A nil
// *Metrics is a valid no-op receiver so tests can skip metrics wiring.
type Metrics struct {
	FetchTotal            *prometheus.CounterVec
	CacheLookupTotal      *prometheus.CounterVec
	AggregationDurationMS *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "modelrates_fetch_total",
			Help: "Provider fetch attempts by fallback tier and outcome.",
		}, []string{"provider", "tier", "outcome"}),

		CacheLookupTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "modelrates_cache_lookup_total",
			Help: "Fetch-cache lookups by backend and result.",
		}, []string{"backend", "result"}),

		AggregationDurationMS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "modelrates_aggregation_duration_ms",
			Help:    "Wall-clock duration of a full aggregation call in milliseconds.",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"scope"}),
	}
}

// RecordFetch records one provider fetch attempt at a fallback tier.
func (m *Metrics) RecordFetch(provider, tier, outcome string) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(provider, tier, outcome).Inc()
}

// RecordCacheLookup records a fetch-cache lookup result.
func (m *Metrics) RecordCacheLookup(backend string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupTotal.WithLabelValues(backend, result).Inc()
}

// RecordAggregation records the duration of one aggregation call.
func (m *Metrics) RecordAggregation(scope string, durationMS float64) {
	if m == nil {
		return
	}
	m.AggregationDurationMS.WithLabelValues(scope).Observe(durationMS)
}
