package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modelrates/modelrates/internal/domain"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func TestBuildPerformanceReport(t *testing.T) {
	fast := testRecord("fast-model", "ProviderA", 0.0000005, 0.0000015)
	fast.Throughput = ptrF(500)
	fast.LatencyMS = ptrF(100)
	fast.ContextWindow = ptrI(8192)

	big := testRecord("big-model", "ProviderB", 0.00003, 0.00006)
	big.Throughput = ptrF(80)
	big.LatencyMS = ptrF(500)
	big.ContextWindow = ptrI(2_000_000)

	bare := testRecord("bare-model", "ProviderC", 0.000001, 0.000002)

	statuses := []domain.ProviderStatus{
		{ProviderName: "ProviderA", IsAvailable: true, ModelsCount: 1},
		{ProviderName: "ProviderB", IsAvailable: true, ModelsCount: 1},
		{ProviderName: "ProviderC", IsAvailable: true, ModelsCount: 1},
	}

	report := domain.BuildPerformanceReport([]domain.PricingRecord{fast, big, bare}, statuses)

	require.Equal(t, 3, report.TotalModels)
	require.Len(t, report.Models, 3)
	require.Equal(t, statuses, report.ProviderStatus)

	t.Run("scores derive from throughput and context per input dollar", func(t *testing.T) {
		fastMetrics := report.Models[0]
		require.NotNil(t, fastMetrics.PerformanceScore)
		require.InDelta(t, 500/0.0000005, *fastMetrics.PerformanceScore, 1)
		require.NotNil(t, fastMetrics.ValueScore)
		require.InDelta(t, 8192/0.0000005, *fastMetrics.ValueScore, 1)
	})

	t.Run("missing inputs leave scores absent", func(t *testing.T) {
		bareMetrics := report.Models[2]
		require.Nil(t, bareMetrics.PerformanceScore)
		require.Nil(t, bareMetrics.ValueScore)
	})

	t.Run("best-in-class picks", func(t *testing.T) {
		require.Equal(t, "fast-model", report.BestThroughput)
		require.Equal(t, "fast-model", report.LowestLatency)
		require.Equal(t, "big-model", report.LargestContext)
		// 8192/0.0000005 > 2M/0.00003
		require.Equal(t, "fast-model", report.BestValue)
	})

	t.Run("zero cost never produces a score", func(t *testing.T) {
		free := testRecord("free-model", "ProviderD", 0, 0)
		free.Throughput = ptrF(1000)
		free.ContextWindow = ptrI(4096)

		freeReport := domain.BuildPerformanceReport([]domain.PricingRecord{free}, nil)
		require.Nil(t, freeReport.Models[0].PerformanceScore)
		require.Nil(t, freeReport.Models[0].ValueScore)
	})

	t.Run("empty catalog leaves picks empty", func(t *testing.T) {
		empty := domain.BuildPerformanceReport(nil, nil)
		require.Zero(t, empty.TotalModels)
		require.Empty(t, empty.BestThroughput)
		require.Empty(t, empty.LowestLatency)
		require.Empty(t, empty.LargestContext)
		require.Empty(t, empty.BestValue)
	})
}

func TestBuildUseCaseReport(t *testing.T) {
	recA1 := testRecord("a-1", "ProviderA", 0.001, 0.002)
	recA1.UseCases = []string{"chat", "coding"}
	recA1.Strengths = []string{"fast"}
	recA1.BestFor = "interactive work"

	recB := testRecord("b-1", "ProviderB", 0.002, 0.004)
	recB.UseCases = []string{"analysis"}

	recA2 := testRecord("a-2", "ProviderA", 0.003, 0.006)

	report := domain.BuildUseCaseReport([]domain.PricingRecord{recA1, recB, recA2})

	require.Equal(t, 3, report.TotalModels)
	require.Len(t, report.Providers, 2)

	t.Run("providers keep first-seen order", func(t *testing.T) {
		require.Equal(t, "ProviderA", report.Providers[0].Provider)
		require.Equal(t, "ProviderB", report.Providers[1].Provider)
	})

	t.Run("models group under their provider", func(t *testing.T) {
		require.Len(t, report.Providers[0].Models, 2)
		require.Equal(t, "a-1", report.Providers[0].Models[0].ModelName)
		require.Equal(t, "a-2", report.Providers[0].Models[1].ModelName)
		require.Equal(t, []string{"chat", "coding"}, report.Providers[0].Models[0].UseCases)
		require.Equal(t, "interactive work", report.Providers[0].Models[0].BestFor)

		require.Len(t, report.Providers[1].Models, 1)
		require.Equal(t, []string{"analysis"}, report.Providers[1].Models[0].UseCases)
	})

	t.Run("empty catalog yields empty report", func(t *testing.T) {
		empty := domain.BuildUseCaseReport(nil)
		require.Zero(t, empty.TotalModels)
		require.Empty(t, empty.Providers)
	})
}

func TestPricingRecordViews(t *testing.T) {
	rec := testRecord("view-model", "ProviderA", 0.00001, 0.00003)
	rec.Throughput = ptrF(100)

	t.Run("volume costs assume an even split", func(t *testing.T) {
		view := rec.View()

		// 5K in * 0.00001 + 5K out * 0.00003 = 0.2
		require.InDelta(t, 0.2, view.CostAt10KTokens.TotalCost, 1e-9)
		require.InDelta(t, 2.0, view.CostAt100KTokens.TotalCost, 1e-9)
		require.InDelta(t, 20.0, view.CostAt1MTokens.TotalCost, 1e-9)
	})

	t.Run("time estimate from throughput", func(t *testing.T) {
		view := rec.View()
		require.NotNil(t, view.EstimatedTime1MTokens)
		require.InDelta(t, 10_000, *view.EstimatedTime1MTokens, 1e-9)
	})

	t.Run("no throughput means no time estimate", func(t *testing.T) {
		bare := testRecord("bare", "ProviderA", 0.00001, 0.00003)
		require.Nil(t, bare.View().EstimatedTime1MTokens)
	})
}
