package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/dcapulse/internal/domain/models"
	"github.com/guttosm/dcapulse/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL       = 5 * time.Minute
	defaultCacheNamespace = "klines"
)

// CachingPriceFetcher decorates a PriceFetcher with a Redis cache keyed by the exact
// request window. Cache failures never fail a fetch; a nil client disables caching.
type CachingPriceFetcher struct {
	inner     PriceFetcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ PriceFetcher = (*CachingPriceFetcher)(nil)

// NewCachingPriceFetcher wraps inner. ttl <= 0 defaults to 5 minutes, an empty namespace to "klines".
func NewCachingPriceFetcher(rdb *redis.Client, ttl time.Duration, inner PriceFetcher, namespace string) *CachingPriceFetcher {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if namespace == "" {
		namespace = defaultCacheNamespace
	}
	return &CachingPriceFetcher{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// FetchDailyCandles serves the window from Redis when present, otherwise from inner.
// Only non-empty responses are stored.
func (c *CachingPriceFetcher) FetchDailyCandles(ctx context.Context, symbol string, start, end time.Time, limit int) ([]models.Candle, error) {
	if c.rdb == nil {
		return c.inner.FetchDailyCandles(ctx, symbol, start, end, limit)
	}

	key := c.cacheKey(symbol, start, end, limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			logger.L().Debug().Str("key", key).Int("candles", len(out)).Msg("kline cache hit")
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FetchDailyCandles(ctx, symbol, start, end, limit)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			logger.L().Warn().Err(err).Str("key", key).Msg("kline cache store failed")
		}
	}
	return out, nil
}

func (c *CachingPriceFetcher) cacheKey(symbol string, start, end time.Time, limit int) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d:%d",
		c.namespace,
		safe(symbol),
		DailyInterval,
		start.UnixMilli(),
		end.UnixMilli(),
		limit,
	)
}

// safe escapes characters that would break the key layout.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
