package catalog

// Cohere pricing per 1K tokens in USD.
// Source: https://cohere.com/pricing
func Cohere(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:              "Cohere",
		APIEndpoint:       "https://api.cohere.ai/v1/models",
		PricingURL:        "https://cohere.com/pricing",
		StatusURL:         "https://status.cohere.com/",
		APIKey:            apiKey,
		PricingTTL:        DefaultPricingTTL,
		PerformanceTTL:    DefaultPerformanceTTL,
		DefaultThroughput: 100.0,
		DefaultLatencyMS:  300.0,
		StaticSource:      "Cohere Official Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"command-r-plus": {
				InputPer1K:    0.003,
				OutputPer1K:   0.015,
				ContextWindow: 128000,
				UseCases:      []string{"Enterprise search", "RAG systems", "Long document analysis", "Complex reasoning"},
				Strengths:     []string{"Enterprise-optimized", "Excellent for RAG", "Strong context window"},
				BestFor:       "Enterprise applications requiring long-context understanding",
			},
			"command-r": {
				InputPer1K:    0.0005,
				OutputPer1K:   0.0015,
				ContextWindow: 128000,
				UseCases:      []string{"Customer support automation", "FAQ systems", "Information retrieval", "Document Q&A"},
				Strengths:     []string{"Cost-effective RAG", "Good retrieval capabilities", "Large context"},
				BestFor:       "Mid-tier applications needing retrieval-augmented generation",
			},
			"command": {
				InputPer1K:    0.001,
				OutputPer1K:   0.002,
				ContextWindow: 4096,
				UseCases:      []string{"Content generation", "Copywriting", "Product descriptions"},
				Strengths:     []string{"Good for generation", "Affordable", "Reliable"},
				BestFor:       "Content creation tasks with reasonable budgets",
			},
			"command-light": {
				InputPer1K:    0.0003,
				OutputPer1K:   0.0006,
				ContextWindow: 4096,
				UseCases:      []string{"Lightweight chatbots", "Quick classification", "Simple generation"},
				Strengths:     []string{"Minimal cost", "Fast responses", "Good for simple tasks"},
				BestFor:       "Budget-conscious applications with simpler requirements",
			},
		},
	}
}
