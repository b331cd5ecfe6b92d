// Package market provides access to historical daily candles from the
// Binance public market data API, optionally fronted by a Redis cache.
package market

import (
	"context"
	"time"

	"github.com/guttosm/dcapulse/internal/domain/models"
)

// DailyInterval is the only kline interval the simulator works with.
const DailyInterval = "1d"

// PriceFetcher returns the daily candles of symbol whose open time falls in
// [start, end], ordered by ascending time, at most limit of them.
// An empty slice with a nil error means the provider has no data for the window.
type PriceFetcher interface {
	FetchDailyCandles(ctx context.Context, symbol string, start, end time.Time, limit int) ([]models.Candle, error)
}
