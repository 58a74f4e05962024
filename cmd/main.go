package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	cachememory "github.com/modelrates/modelrates/internal/cache/memory"
	cacheredis "github.com/modelrates/modelrates/internal/cache/redis"
	"github.com/modelrates/modelrates/internal/config"
	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/fetch"
	"github.com/modelrates/modelrates/internal/http"
	"github.com/modelrates/modelrates/internal/http/middleware"
	"github.com/modelrates/modelrates/internal/mcp"
	"github.com/modelrates/modelrates/internal/observability"
	"github.com/modelrates/modelrates/internal/provider/catalog"
	"github.com/modelrates/modelrates/internal/provider/openai"
	"github.com/modelrates/modelrates/internal/provider/source"
	"github.com/modelrates/modelrates/internal/telemetry"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(cfg *config.Config, httpServer *http.Server, mcpServer *mcp.Server) {
		if cfg.MCP.Enabled {
			if err := mcpServer.Serve(); err != nil {
				log.Fatalf("MCP server failed: %v", err)
			}
			return
		}

		if err := httpServer.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() *telemetry.Metrics {
		return telemetry.NewMetrics(prometheus.DefaultRegisterer)
	}); err != nil {
		log.Fatalf("Failed to provide metrics: %v", err)
	}

	// Fetch cache: shared Redis when configured, in-process otherwise.
	if err := container.Provide(func(redisCfg *config.RedisConfig, metrics *telemetry.Metrics) domain.FetchCache {
		if redisCfg.Addr == "" {
			return cachememory.NewFetchCache(metrics)
		}

		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		return cacheredis.NewFetchCache(client, metrics)
	}); err != nil {
		log.Fatalf("Failed to provide fetch cache: %v", err)
	}

	// Outbound HTTP client
	if err := container.Provide(func(cacheCfg *config.CacheConfig) *fetch.Fetcher {
		return fetch.NewFetcher(cacheCfg.FetchTimeout())
	}); err != nil {
		log.Fatalf("Failed to provide fetcher: %v", err)
	}

	// OpenAI SDK lister for the live-discovery tier; nil when no key is set,
	// the source then falls back to the plain HTTP listing endpoint.
	if err := container.Provide(func(openaiCfg *openai.Config) domain.ModelLister {
		if openaiCfg.APIKey == "" {
			return nil
		}

		lister, err := openai.NewLister(*openaiCfg)
		if err != nil {
			log.Fatalf("Failed to create OpenAI lister: %v", err)
		}
		return lister
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI lister: %v", err)
	}

	// Pricing sources, one per catalog provider, in registration order.
	if err := container.Provide(func(
		cfg *config.Config,
		cacheCfg *config.CacheConfig,
		fetchCache domain.FetchCache,
		fetcher *fetch.Fetcher,
		lister domain.ModelLister,
		metrics *telemetry.Metrics,
	) []domain.PricingSource {
		configs := catalog.All(cfg.CatalogKeys())

		sources := make([]domain.PricingSource, 0, len(configs))
		for _, pc := range configs {
			pc.PricingTTL = cacheCfg.PricingTTL()
			pc.PerformanceTTL = cacheCfg.PerformanceTTL()

			// The SDK lister only serves the provider it belongs to.
			var providerLister domain.ModelLister
			if pc.Name == "OpenAI" {
				providerLister = lister
			}

			sources = append(sources, source.New(pc, fetchCache, fetcher, providerLister, metrics))
		}
		return sources
	}); err != nil {
		log.Fatalf("Failed to provide pricing sources: %v", err)
	}

	// Domain services
	if err := container.Provide(func(sources []domain.PricingSource, metrics *telemetry.Metrics) *domain.Aggregator {
		return domain.NewAggregator(sources, catalog.Aliases(), metrics)
	}); err != nil {
		log.Fatalf("Failed to provide aggregator: %v", err)
	}

	// HTTP layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	// MCP layer
	if err := container.Provide(mcp.NewServer); err != nil {
		log.Fatalf("Failed to provide MCP server: %v", err)
	}

	return container
}
