package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildPerformanceReport derives the performance view from a merged catalog.
// Scores require both their numerator and a positive input cost; when either
// is missing the score stays absent rather than collapsing to zero.
func BuildPerformanceReport(records []PricingRecord, statuses []ProviderStatus) PerformanceReport {
	metrics := make([]PerformanceMetrics, 0, len(records))

	var bestThroughput, lowestLatency, largestContext, bestValue *PerformanceMetrics

	for _, rec := range records {
		m := PerformanceMetrics{
			ModelName:          rec.ModelName,
			Provider:           rec.Provider,
			Throughput:         rec.Throughput,
			LatencyMS:          rec.LatencyMS,
			ContextWindow:      rec.ContextWindow,
			CostPerInputToken:  rec.CostPerInputToken,
			CostPerOutputToken: rec.CostPerOutputToken,
		}

		if rec.Throughput != nil && rec.CostPerInputToken > 0 {
			score := perDollar(*rec.Throughput, rec.CostPerInputToken)
			m.PerformanceScore = &score
		}
		if rec.ContextWindow != nil && rec.CostPerInputToken > 0 {
			score := perDollar(float64(*rec.ContextWindow), rec.CostPerInputToken)
			m.ValueScore = &score
		}

		metrics = append(metrics, m)
		last := &metrics[len(metrics)-1]

		if last.Throughput != nil &&
			(bestThroughput == nil || *last.Throughput > *bestThroughput.Throughput) {
			bestThroughput = last
		}
		if last.LatencyMS != nil &&
			(lowestLatency == nil || *last.LatencyMS < *lowestLatency.LatencyMS) {
			lowestLatency = last
		}
		if last.ContextWindow != nil &&
			(largestContext == nil || *last.ContextWindow > *largestContext.ContextWindow) {
			largestContext = last
		}
		if last.ValueScore != nil &&
			(bestValue == nil || *last.ValueScore > *bestValue.ValueScore) {
			bestValue = last
		}
	}

	report := PerformanceReport{
		Models:         metrics,
		TotalModels:    len(metrics),
		ProviderStatus: statuses,
		Timestamp:      time.Now().UTC(),
	}
	if bestThroughput != nil {
		report.BestThroughput = bestThroughput.ModelName
	}
	if lowestLatency != nil {
		report.LowestLatency = lowestLatency.ModelName
	}
	if largestContext != nil {
		report.LargestContext = largestContext.ModelName
	}
	if bestValue != nil {
		report.BestValue = bestValue.ModelName
	}

	return report
}

// perDollar divides a capability figure by a per-token dollar cost.
func perDollar(numerator, costPerToken float64) float64 {
	return decimal.NewFromFloat(numerator).
		Div(decimal.NewFromFloat(costPerToken)).
		InexactFloat64()
}
