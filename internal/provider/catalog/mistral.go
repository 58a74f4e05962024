package catalog

// Mistral AI pricing per 1K tokens in USD.
// Source: https://mistral.ai/technology/#pricing
func Mistral(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:              "Mistral AI",
		APIEndpoint:       "https://api.mistral.ai/v1/models",
		PricingURL:        "https://mistral.ai/technology/#pricing",
		StatusURL:         "https://status.mistral.ai/",
		APIKey:            apiKey,
		PricingTTL:        DefaultPricingTTL,
		PerformanceTTL:    DefaultPerformanceTTL,
		DefaultThroughput: 90.0,
		DefaultLatencyMS:  280.0,
		StaticSource:      "Mistral AI Official Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"mistral-large-latest": {
				InputPer1K:    0.004,
				OutputPer1K:   0.012,
				ContextWindow: 32000,
				UseCases:      []string{"Complex reasoning", "Advanced analytics", "Code generation", "Multi-step planning"},
				Strengths:     []string{"Excellent reasoning", "Strong code skills", "Well-balanced"},
				BestFor:       "Complex tasks requiring strong reasoning and code understanding",
			},
			"mistral-medium-latest": {
				InputPer1K:    0.0027,
				OutputPer1K:   0.0081,
				ContextWindow: 32000,
				UseCases:      []string{"General chat", "Content creation", "Code assistance", "Business logic"},
				Strengths:     []string{"Good balance", "Versatile", "Cost-effective"},
				BestFor:       "All-purpose assistant for varied business needs",
			},
			"mistral-small-latest": {
				InputPer1K:    0.001,
				OutputPer1K:   0.003,
				ContextWindow: 32000,
				UseCases:      []string{"Customer support", "FAQ automation", "Text classification", "Simple tasks"},
				Strengths:     []string{"Lightweight", "Affordable", "Fast responses"},
				BestFor:       "High-volume applications requiring fast, affordable responses",
			},
			"mistral-tiny": {
				InputPer1K:    0.00025,
				OutputPer1K:   0.00025,
				ContextWindow: 32000,
				UseCases:      []string{"Real-time processing", "Extreme cost optimization", "Simple classification"},
				Strengths:     []string{"Minimal cost", "Instant responses", "Edge deployment"},
				BestFor:       "Extreme cost optimization and ultra-fast responses",
			},
			"open-mistral-7b": {
				InputPer1K:    0.00025,
				OutputPer1K:   0.00025,
				ContextWindow: 32000,
				UseCases:      []string{"Self-hosted deployment", "Privacy-focused applications", "Custom fine-tuning"},
				Strengths:     []string{"Open source", "Self-hostable", "Privacy-friendly"},
				BestFor:       "Organizations needing self-hosted or locally deployable models",
			},
			"open-mixtral-8x7b": {
				InputPer1K:    0.0007,
				OutputPer1K:   0.0007,
				ContextWindow: 32000,
				UseCases:      []string{"Advanced open-source use", "Custom deployment", "High-performance inference"},
				Strengths:     []string{"Mixture of experts", "Self-hostable", "Good performance"},
				BestFor:       "Advanced use cases with self-hosted open-source requirements",
			},
		},
	}
}
