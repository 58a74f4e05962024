package catalog

// OpenAI pricing per 1K tokens in USD.
// Source: https://openai.com/api/pricing/
func OpenAI(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:              "OpenAI",
		APIEndpoint:       "https://api.openai.com/v1/models",
		PricingURL:        "https://openai.com/api/pricing/",
		StatusURL:         "https://status.openai.com/api/v2/status.json",
		APIKey:            apiKey,
		RequiresAuth:      true,
		PricingTTL:        DefaultPricingTTL,
		PerformanceTTL:    DefaultPerformanceTTL,
		DefaultThroughput: 40.0,
		DefaultLatencyMS:  1200.0,
		StaticSource:      "OpenAI Official Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"gpt-4": {
				InputPer1K:    0.03,
				OutputPer1K:   0.06,
				ContextWindow: 8192,
				Throughput:    20.0,
				LatencyMS:     2500.0,
				UseCases:      []string{"Complex reasoning", "Expert-level analysis", "Code review", "Research assistance"},
				Strengths:     []string{"Strongest reasoning", "Reliable outputs", "Broad knowledge"},
				BestFor:       "High-stakes tasks where answer quality matters more than cost",
			},
			"gpt-4-turbo": {
				InputPer1K:    0.01,
				OutputPer1K:   0.03,
				ContextWindow: 128000,
				Throughput:    40.0,
				LatencyMS:     1500.0,
				UseCases:      []string{"Long document analysis", "Code generation", "Multi-turn assistants", "Data extraction"},
				Strengths:     []string{"128K context", "Faster than GPT-4", "Lower cost than GPT-4"},
				BestFor:       "Production assistants needing long context at a moderate price",
			},
			"gpt-3.5-turbo": {
				InputPer1K:    0.0005,
				OutputPer1K:   0.0015,
				ContextWindow: 16385,
				Throughput:    60.0,
				LatencyMS:     800.0,
				UseCases:      []string{"Chatbots", "Summarization", "Classification", "High-volume tasks"},
				Strengths:     []string{"Very affordable", "Fast", "Well understood"},
				BestFor:       "High-volume applications with straightforward prompts",
			},
		},
	}
}
