package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modelrates/modelrates/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, 2*time.Hour, cfg.Cache.PricingTTL())
		require.Equal(t, 5*time.Minute, cfg.Cache.PerformanceTTL())
		require.Equal(t, 10*time.Second, cfg.Cache.FetchTimeout())
		require.Empty(t, cfg.Redis.Addr)
		require.False(t, cfg.MCP.Enabled)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, 2, cfg.OpenAI.MaxRetries)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("PRICING_CACHE_TTL", "60")
		t.Setenv("PERFORMANCE_CACHE_TTL", "15")
		t.Setenv("FETCH_TIMEOUT", "5")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("MCP_ENABLED", "true")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("ANTHROPIC_API_KEY", "ant-test-key")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, time.Minute, cfg.Cache.PricingTTL())
		require.Equal(t, 15*time.Second, cfg.Cache.PerformanceTTL())
		require.Equal(t, 5*time.Second, cfg.Cache.FetchTimeout())
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.True(t, cfg.MCP.Enabled)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "ant-test-key", cfg.Providers.AnthropicAPIKey)
	})
}

func TestCatalogKeys(t *testing.T) {
	os.Clearenv()
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GROQ_API_KEY", "gsk-groq")

	cfg := config.Load()
	keys := cfg.CatalogKeys()

	require.Equal(t, "sk-openai", keys.OpenAI)
	require.Equal(t, "gsk-groq", keys.Groq)
	require.Empty(t, keys.Anthropic)
	require.Empty(t, keys.Cohere)
}
