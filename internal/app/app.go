package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/config"
	"github.com/guttosm/dcapulse/internal/api"
	"github.com/guttosm/dcapulse/internal/logger"
	"github.com/guttosm/dcapulse/internal/market"
	"github.com/guttosm/dcapulse/internal/service"
	"github.com/redis/go-redis/v9"
)

// redisOpener is an indirection used by the wiring below; overridden in tests to avoid real connections.
var redisOpener = func(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	return market.NewRedisClient(ctx, market.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Dependencies groups what both the HTTP server and the one-shot simulate mode need.
type Dependencies struct {
	Service service.DCAService
	Redis   *redis.Client // nil when caching is disabled
}

// Close releases external connections.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
}

// NewDependencies builds the market data chain and the simulation service.
//
// Chain: Binance client -> optional Redis cache -> DCA service.
func NewDependencies(ctx context.Context, cfg config.Config) (*Dependencies, error) {
	rdb, err := redisOpener(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	var fetcher market.PriceFetcher = market.NewBinanceClient(
		cfg.Binance.BaseURL,
		market.NewHTTPClient(cfg.Binance.Timeout),
	)
	if rdb != nil {
		fetcher = market.NewCachingPriceFetcher(rdb, cfg.Redis.TTL, fetcher, "")
		logger.L().Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("kline cache enabled")
	}

	svc := service.NewDCAService(fetcher, service.Options{
		FetchTimeout: cfg.Binance.Timeout,
		Parallelism:  cfg.Simulation.Parallelism,
	})

	return &Dependencies{Service: svc, Redis: rdb}, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data chain and simulation service (NewDependencies).
//   - Creates the HTTP handler and router with CORS restricted to the configured origin.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., Redis connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	deps, err := NewDependencies(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(deps.Service)

	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigin:  cfg.Server.AllowedOrigin,
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
	})

	var ping func(ctx context.Context) error
	if deps.Redis != nil {
		rdb := deps.Redis
		ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	api.NewHealthHandler(ping).Register(router)

	return router, deps.Close, nil
}
