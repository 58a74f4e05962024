// Package catalog holds the per-provider configuration the generic pricing
// source is driven by: endpoints, cache TTLs, default performance estimates,
// and the hand-curated static pricing tables. Adding a provider is a data
// change here, not a new type.
package catalog

import "time"

const (
	// DefaultPricingTTL bounds how often pricing endpoints and pages are
	// re-fetched.
	DefaultPricingTTL = 2 * time.Hour

	// DefaultPerformanceTTL bounds how often status endpoints are probed.
	DefaultPerformanceTTL = 5 * time.Minute
)

// ModelPricing is one model's hand-curated entry: costs per 1K tokens in USD
// plus capability metadata. Throughput/LatencyMS are optional per-model
// estimates; zero means "use the provider default".
type ModelPricing struct {
	InputPer1K    float64
	OutputPer1K   float64
	ContextWindow int
	Throughput    float64
	LatencyMS     float64
	UseCases      []string
	Strengths     []string
	BestFor       string
}

// ProviderConfig is everything the generic source needs to serve one
// provider's fallback chain.
type ProviderConfig struct {
	Name string

	// APIEndpoint is the model-listing endpoint used for live discovery when
	// an API key is configured.
	APIEndpoint string

	// PricingURL is the public pricing page used by the scrape tier.
	PricingURL string

	// StatusURL is the public status endpoint used by the performance probe.
	StatusURL string

	APIKey       string
	RequiresAuth bool

	PricingTTL     time.Duration
	PerformanceTTL time.Duration

	// Default performance estimates used when the probe yields nothing.
	DefaultThroughput float64
	DefaultLatencyMS  float64

	// StaticTable is the fallback of last resort and the canonical model
	// list for the merge.
	StaticTable map[string]ModelPricing

	// StaticSource is the provenance label stamped on static records.
	StaticSource string
}

// Keys carries the optional per-provider API keys from configuration.
type Keys struct {
	OpenAI    string
	Anthropic string
	Google    string
	Mistral   string
	Groq      string
	Cohere    string
}

// All returns every provider configuration in registration order. The merged
// catalog preserves this ordering.
func All(keys Keys) []ProviderConfig {
	return []ProviderConfig{
		OpenAI(keys.OpenAI),
		Anthropic(keys.Anthropic),
		Google(keys.Google),
		Mistral(keys.Mistral),
		Groq(keys.Groq),
		Cohere(keys.Cohere),
	}
}

// Aliases maps common alternative provider names to canonical ones, all
// lowercase.
func Aliases() map[string]string {
	return map[string]string{
		"mistral": "mistral ai",
		"gemini":  "google",
		"claude":  "anthropic",
		"gpt":     "openai",
	}
}
