package domain

import "time"

const (
	// DefaultCurrency is the currency all catalog pricing is denominated in.
	DefaultCurrency = "USD"

	// UnitPerToken marks pricing expressed per single token.
	UnitPerToken = "per_token"

	tokensPerMillion = 1_000_000
)

// PricingRecord is one model's pricing and performance snapshot. Records are
// constructed fresh on every aggregation call and never mutated afterwards.
type PricingRecord struct {
	ModelName          string   `json:"model_name"`
	Provider           string   `json:"provider"`
	CostPerInputToken  float64  `json:"cost_per_input_token"`
	CostPerOutputToken float64  `json:"cost_per_output_token"`
	Throughput         *float64 `json:"throughput,omitempty"` // tokens per second
	LatencyMS          *float64 `json:"latency_ms,omitempty"`
	ContextWindow      *int     `json:"context_window,omitempty"`
	Currency           string   `json:"currency"`
	Unit               string   `json:"unit"`
	UseCases           []string `json:"use_cases,omitempty"`
	Strengths          []string `json:"strengths,omitempty"`
	BestFor            string   `json:"best_for,omitempty"`
	// Source records which fallback tier produced this record.
	Source      string    `json:"source,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// CostBreakdown is the input/output/total cost at a fixed token volume.
type CostBreakdown struct {
	InputCost  float64 `json:"input_cost"`
	OutputCost float64 `json:"output_cost"`
	TotalCost  float64 `json:"total_cost"`
}

// CostAtTokens computes the cost of processing totalTokens assuming a 50/50
// input/output split.
func (r PricingRecord) CostAtTokens(totalTokens int) CostBreakdown {
	half := float64(totalTokens) / 2
	in := half * r.CostPerInputToken
	out := half * r.CostPerOutputToken
	return CostBreakdown{
		InputCost:  in,
		OutputCost: out,
		TotalCost:  in + out,
	}
}

// EstimatedTime1MTokens returns the estimated wall-clock seconds to process
// one million tokens, or nil when throughput is unknown.
func (r PricingRecord) EstimatedTime1MTokens() *float64 {
	if r.Throughput == nil || *r.Throughput <= 0 {
		return nil
	}
	seconds := tokensPerMillion / *r.Throughput
	return &seconds
}

// RecordView is the presentation shape of a PricingRecord, with the derived
// volume costs precomputed.
type RecordView struct {
	PricingRecord
	CostAt10KTokens       CostBreakdown `json:"cost_at_10k_tokens"`
	CostAt100KTokens      CostBreakdown `json:"cost_at_100k_tokens"`
	CostAt1MTokens        CostBreakdown `json:"cost_at_1m_tokens"`
	EstimatedTime1MTokens *float64      `json:"estimated_time_1m_tokens,omitempty"`
}

// View computes the derived fields for presentation.
func (r PricingRecord) View() RecordView {
	return RecordView{
		PricingRecord:         r,
		CostAt10KTokens:       r.CostAtTokens(10_000),
		CostAt100KTokens:      r.CostAtTokens(100_000),
		CostAt1MTokens:        r.CostAtTokens(tokensPerMillion),
		EstimatedTime1MTokens: r.EstimatedTime1MTokens(),
	}
}

// ProviderStatus is the outcome of attempting to fetch one provider's data.
// A provider may legitimately return zero models while available; an empty
// catalog is not conflated with a failed fetch.
type ProviderStatus struct {
	ProviderName string `json:"provider_name"`
	IsAvailable  bool   `json:"is_available"`
	ErrorMessage string `json:"error_message,omitempty"`
	ModelsCount  int    `json:"models_count"`
}

// CostEstimate is the cost breakdown for a single model at a given token mix.
type CostEstimate struct {
	ModelName    string    `json:"model_name"`
	Provider     string    `json:"provider"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	InputCost    float64   `json:"input_cost"`
	OutputCost   float64   `json:"output_cost"`
	TotalCost    float64   `json:"total_cost"`
	Currency     string    `json:"currency"`
	Timestamp    time.Time `json:"timestamp"`
}

// ModelCostComparison is one model's entry in a batch comparison. Models that
// were not found are still present, flagged unavailable with zeroed costs.
type ModelCostComparison struct {
	ModelName       string  `json:"model_name"`
	Provider        string  `json:"provider,omitempty"`
	InputCost       float64 `json:"input_cost"`
	OutputCost      float64 `json:"output_cost"`
	TotalCost       float64 `json:"total_cost"`
	CostPer1MTokens float64 `json:"cost_per_1m_tokens"`
	IsAvailable     bool    `json:"is_available"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

// CostRange is the spread of total costs across the available models in a
// comparison.
type CostRange struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Difference float64 `json:"difference"`
}

// CostComparison is the result of comparing several models at one token mix.
type CostComparison struct {
	InputTokens        int                   `json:"input_tokens"`
	OutputTokens       int                   `json:"output_tokens"`
	TotalTokens        int                   `json:"total_tokens"`
	Models             []ModelCostComparison `json:"models"`
	CheapestModel      string                `json:"cheapest_model,omitempty"`
	MostExpensiveModel string                `json:"most_expensive_model,omitempty"`
	CostRange          *CostRange            `json:"cost_range,omitempty"`
	Currency           string                `json:"currency"`
	Timestamp          time.Time             `json:"timestamp"`
}

// PerformanceMetrics is the performance view of one model. Scores are absent
// (nil) when the fields they derive from are unknown, never coerced to zero.
type PerformanceMetrics struct {
	ModelName          string   `json:"model_name"`
	Provider           string   `json:"provider"`
	Throughput         *float64 `json:"throughput,omitempty"`
	LatencyMS          *float64 `json:"latency_ms,omitempty"`
	ContextWindow      *int     `json:"context_window,omitempty"`
	CostPerInputToken  float64  `json:"cost_per_input_token"`
	CostPerOutputToken float64  `json:"cost_per_output_token"`
	PerformanceScore   *float64 `json:"performance_score,omitempty"` // throughput per input-token dollar
	ValueScore         *float64 `json:"value_score,omitempty"`       // context window per input-token dollar
}

// PerformanceReport aggregates performance metrics with best-in-class picks.
type PerformanceReport struct {
	Models         []PerformanceMetrics `json:"models"`
	TotalModels    int                  `json:"total_models"`
	BestThroughput string               `json:"best_throughput,omitempty"`
	LowestLatency  string               `json:"lowest_latency,omitempty"`
	LargestContext string               `json:"largest_context,omitempty"`
	BestValue      string               `json:"best_value,omitempty"`
	ProviderStatus []ProviderStatus     `json:"provider_status"`
	Timestamp      time.Time            `json:"timestamp"`
}

// ModelUseCases describes what one model is suited for.
type ModelUseCases struct {
	ModelName string   `json:"model_name"`
	UseCases  []string `json:"use_cases,omitempty"`
	Strengths []string `json:"strengths,omitempty"`
	BestFor   string   `json:"best_for,omitempty"`
}

// ProviderUseCases groups use-case summaries for one provider's models.
type ProviderUseCases struct {
	Provider string          `json:"provider"`
	Models   []ModelUseCases `json:"models"`
}

// UseCaseReport is the use-case view over the merged catalog, grouped by
// provider in registration order.
type UseCaseReport struct {
	Providers   []ProviderUseCases `json:"providers"`
	TotalModels int                `json:"total_models"`
	Timestamp   time.Time          `json:"timestamp"`
}
