package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modelrates/modelrates/internal/provider/catalog"
)

func TestAll(t *testing.T) {
	configs := catalog.All(catalog.Keys{})

	t.Run("six providers in stable order", func(t *testing.T) {
		names := make([]string, 0, len(configs))
		for _, cfg := range configs {
			names = append(names, cfg.Name)
		}
		require.Equal(t,
			[]string{"OpenAI", "Anthropic", "Google", "Mistral AI", "Groq", "Cohere"},
			names)
	})

	t.Run("every provider has a usable fallback floor", func(t *testing.T) {
		for _, cfg := range configs {
			require.NotEmpty(t, cfg.StaticTable, "provider %s", cfg.Name)
			require.NotEmpty(t, cfg.StaticSource, "provider %s", cfg.Name)
			require.Positive(t, cfg.PricingTTL, "provider %s", cfg.Name)
			require.Positive(t, cfg.PerformanceTTL, "provider %s", cfg.Name)
		}
	})

	t.Run("static prices and metadata are sane", func(t *testing.T) {
		for _, cfg := range configs {
			for model, pricing := range cfg.StaticTable {
				require.NotEmpty(t, model, "provider %s", cfg.Name)
				require.Positive(t, pricing.InputPer1K, "%s/%s", cfg.Name, model)
				require.Positive(t, pricing.OutputPer1K, "%s/%s", cfg.Name, model)
				require.GreaterOrEqual(t, pricing.OutputPer1K, pricing.InputPer1K,
					"%s/%s: output rate should not undercut input rate", cfg.Name, model)
				require.Positive(t, pricing.ContextWindow, "%s/%s", cfg.Name, model)
			}
		}
	})

	t.Run("model names are unique within a provider by construction and lowercase", func(t *testing.T) {
		for _, cfg := range configs {
			for model := range cfg.StaticTable {
				require.Equal(t, strings.ToLower(model), model, "provider %s", cfg.Name)
			}
		}
	})

	t.Run("keys flow into their providers", func(t *testing.T) {
		keyed := catalog.All(catalog.Keys{OpenAI: "sk-1", Groq: "gsk-2"})

		require.Equal(t, "sk-1", keyed[0].APIKey)
		require.Empty(t, keyed[1].APIKey)
		require.Equal(t, "gsk-2", keyed[4].APIKey)
	})
}

func TestAliases(t *testing.T) {
	aliases := catalog.Aliases()
	configs := catalog.All(catalog.Keys{})

	canonical := make(map[string]bool, len(configs))
	for _, cfg := range configs {
		canonical[strings.ToLower(cfg.Name)] = true
	}

	for alias, target := range aliases {
		require.Equal(t, strings.ToLower(alias), alias, "aliases must be lowercase")
		require.True(t, canonical[target], "alias %q points to unknown provider %q", alias, target)
	}
}
