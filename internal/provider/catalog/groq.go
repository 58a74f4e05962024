package catalog

// Groq pricing per 1K tokens in USD.
// Source: https://groq.com/pricing/
func Groq(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:           "Groq",
		APIEndpoint:    "https://api.groq.com/openai/v1/models",
		PricingURL:     "https://groq.com/pricing/",
		StatusURL:      "https://status.groq.com/",
		APIKey:         apiKey,
		RequiresAuth:   true,
		PricingTTL:     DefaultPricingTTL,
		PerformanceTTL: DefaultPerformanceTTL,
		// Groq serves open models on custom hardware; inference is far faster
		// than the other providers.
		DefaultThroughput: 500.0,
		DefaultLatencyMS:  100.0,
		StaticSource:      "Groq Official Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"llama-3.1-405b": {
				InputPer1K:    0.00059,
				OutputPer1K:   0.00079,
				ContextWindow: 131072,
				UseCases:      []string{"Complex reasoning", "Long context analysis", "Advanced research", "Multi-turn conversations"},
				Strengths:     []string{"Largest Llama model", "Excellent reasoning", "Very fast on Groq"},
				BestFor:       "Complex tasks requiring state-of-the-art reasoning with ultra-fast inference",
			},
			"llama-3.1-70b": {
				InputPer1K:    0.00059,
				OutputPer1K:   0.00079,
				ContextWindow: 131072,
				UseCases:      []string{"General purpose", "Code generation", "Data analysis", "Creative writing"},
				Strengths:     []string{"Great balance", "Fast inference", "Long context"},
				BestFor:       "High-performance applications needing speed and quality",
			},
			"llama-3.1-8b": {
				InputPer1K:    0.00005,
				OutputPer1K:   0.00008,
				ContextWindow: 131072,
				UseCases:      []string{"High-volume tasks", "Real-time processing", "Simple Q&A", "Classification"},
				Strengths:     []string{"Ultra-fast", "Very affordable", "Long context"},
				BestFor:       "High-throughput applications with cost constraints",
			},
			"mixtral-8x7b": {
				InputPer1K:    0.00024,
				OutputPer1K:   0.00024,
				ContextWindow: 32768,
				UseCases:      []string{"Code generation", "Multilingual tasks", "Reasoning"},
				Strengths:     []string{"Mixture of experts", "Fast", "Good quality"},
				BestFor:       "Applications needing balanced performance and speed",
			},
			"gemma2-9b": {
				InputPer1K:    0.0002,
				OutputPer1K:   0.0002,
				ContextWindow: 8192,
				UseCases:      []string{"Improved Gemma tasks", "Balanced performance", "Research"},
				Strengths:     []string{"Enhanced over Gemma", "Fast", "Open source"},
				BestFor:       "Next-gen Gemma applications with speed requirements",
			},
		},
	}
}
