package catalog

// Google Gemini pricing per 1K tokens in USD.
// Source: https://ai.google.dev/pricing
func Google(apiKey string) ProviderConfig {
	return ProviderConfig{
		Name:              "Google",
		APIEndpoint:       "https://generativelanguage.googleapis.com/v1beta/models",
		PricingURL:        "https://ai.google.dev/pricing",
		StatusURL:         "https://status.cloud.google.com/",
		APIKey:            apiKey,
		PricingTTL:        DefaultPricingTTL,
		PerformanceTTL:    DefaultPerformanceTTL,
		DefaultThroughput: 120.0,
		DefaultLatencyMS:  250.0,
		StaticSource:      "Google AI Pricing (Static)",
		StaticTable: map[string]ModelPricing{
			"gemini-1.5-pro": {
				InputPer1K:    0.00125,
				OutputPer1K:   0.00375,
				ContextWindow: 2097152,
				UseCases:      []string{"Entire book analysis", "Large codebase understanding", "Video content analysis", "Complex multi-modal reasoning"},
				Strengths:     []string{"2M token context", "Multimodal capabilities", "Advanced reasoning"},
				BestFor:       "Processing massive amounts of data with multimodal understanding",
			},
			"gemini-1.5-flash": {
				InputPer1K:    0.000075,
				OutputPer1K:   0.0003,
				ContextWindow: 1048576,
				UseCases:      []string{"Fast document processing", "Real-time chat", "Quick summarization", "Content extraction"},
				Strengths:     []string{"Extremely fast", "Affordable", "1M token context"},
				BestFor:       "Speed-critical applications with large documents",
			},
			"gemini-1.0-pro": {
				InputPer1K:    0.0005,
				OutputPer1K:   0.0015,
				ContextWindow: 32760,
				UseCases:      []string{"General-purpose AI", "Chatbots", "Content moderation", "Text classification"},
				Strengths:     []string{"Balanced performance", "Good for most tasks", "Proven stability"},
				BestFor:       "General-purpose applications across various domains",
			},
			"gemini-1.0-ultra": {
				InputPer1K:    0.0125,
				OutputPer1K:   0.0375,
				ContextWindow: 32760,
				UseCases:      []string{"High-stakes reasoning", "Complex problem solving", "Advanced analysis"},
				Strengths:     []string{"Maximum intelligence", "Advanced reasoning", "Premium quality"},
				BestFor:       "Premium use cases demanding highest quality outputs",
			},
		},
	}
}
