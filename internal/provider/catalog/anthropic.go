package catalog

// Anthropic pricing per 1K tokens in USD.
// Source: https://www.anthropic.com/api
func Anthropic(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:              "Anthropic",
		APIEndpoint:       "https://api.anthropic.com/v1/models",
		PricingURL:        "https://www.anthropic.com/api",
		StatusURL:         "https://status.anthropic.com/",
		APIKey:            apiKey,
		RequiresAuth:      true,
		PricingTTL:        DefaultPricingTTL,
		PerformanceTTL:    DefaultPerformanceTTL,
		DefaultThroughput: 35.0,
		DefaultLatencyMS:  1400.0,
		StaticSource:      "Anthropic Official Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"claude-3-opus": {
				InputPer1K:    0.015,
				OutputPer1K:   0.075,
				ContextWindow: 200000,
				Throughput:    25.0,
				LatencyMS:     2000.0,
				UseCases:      []string{"Deep analysis", "Complex writing", "Scientific reasoning", "Long document synthesis"},
				Strengths:     []string{"Top-tier reasoning", "200K context", "Careful outputs"},
				BestFor:       "Demanding analytical work over very long inputs",
			},
			"claude-3-sonnet": {
				InputPer1K:    0.003,
				OutputPer1K:   0.015,
				ContextWindow: 200000,
				Throughput:    35.0,
				LatencyMS:     1500.0,
				UseCases:      []string{"Enterprise assistants", "Content drafting", "Data processing", "Knowledge-base Q&A"},
				Strengths:     []string{"Balanced cost/quality", "200K context", "Consistent"},
				BestFor:       "Everyday enterprise workloads balancing quality and spend",
			},
			"claude-3-haiku": {
				InputPer1K:    0.00025,
				OutputPer1K:   0.00125,
				ContextWindow: 200000,
				Throughput:    50.0,
				LatencyMS:     900.0,
				UseCases:      []string{"Real-time chat", "Moderation", "Ticket triage", "Lightweight extraction"},
				Strengths:     []string{"Fast", "Cheap", "Still 200K context"},
				BestFor:       "Latency-sensitive, high-volume flows on a budget",
			},
		},
	}
}
