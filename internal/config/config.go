package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/modelrates/modelrates/internal/provider/catalog"
	"github.com/modelrates/modelrates/internal/provider/openai"
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Cache     CacheConfig
	Redis     RedisConfig
	MCP       MCPConfig
	Providers ProviderConfig
	OpenAI    openai.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig contains fetch cache settings. TTLs are in seconds.
type CacheConfig struct {
	PricingTTLSeconds     int `env:"PRICING_CACHE_TTL"     envDefault:"7200"`
	PerformanceTTLSeconds int `env:"PERFORMANCE_CACHE_TTL" envDefault:"300"`
	FetchTimeoutSeconds   int `env:"FETCH_TIMEOUT"         envDefault:"10"`
}

// PricingTTL returns the pricing cache TTL as a duration.
func (c *CacheConfig) PricingTTL() time.Duration {
	return time.Duration(c.PricingTTLSeconds) * time.Second
}

// PerformanceTTL returns the performance cache TTL as a duration.
func (c *CacheConfig) PerformanceTTL() time.Duration {
	return time.Duration(c.PerformanceTTLSeconds) * time.Second
}

// FetchTimeout returns the outbound HTTP timeout as a duration.
func (c *CacheConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// RedisConfig contains shared cache settings. An empty Addr selects the
// in-process cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// MCPConfig contains MCP server settings.
type MCPConfig struct {
	Enabled bool `env:"MCP_ENABLED" envDefault:"false"`
}

// ProviderConfig contains the optional per-provider API keys used by the
// live-discovery tier.
type ProviderConfig struct {
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" envDefault:""`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"    envDefault:""`
	MistralAPIKey   string `env:"MISTRAL_API_KEY"   envDefault:""`
	GroqAPIKey      string `env:"GROQ_API_KEY"      envDefault:""`
	CohereAPIKey    string `env:"COHERE_API_KEY"    envDefault:""`
}

// CatalogKeys maps the configured API keys into the provider catalog's shape.
func (c *Config) CatalogKeys() catalog.Keys {
	return catalog.Keys{
		OpenAI:    c.OpenAI.APIKey,
		Anthropic: c.Providers.AnthropicAPIKey,
		Google:    c.Providers.GoogleAPIKey,
		Mistral:   c.Providers.MistralAPIKey,
		Groq:      c.Providers.GroqAPIKey,
		Cohere:    c.Providers.CohereAPIKey,
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*CacheConfig
	*RedisConfig
	*MCPConfig
	*ProviderConfig
	*openai.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Cache,
		&cfg.Redis,
		&cfg.MCP,
		&cfg.Providers,
		&cfg.OpenAI,
	}
}
