package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/dcapulse/internal/domain/models"
	"github.com/guttosm/dcapulse/internal/logger"
	"github.com/shopspring/decimal"
)

// DefaultBinanceBaseURL is the public Binance spot REST endpoint.
const DefaultBinanceBaseURL = "https://api.binance.com"

// klineColumns is the number of leading kline columns this client reads.
const klineColumns = 7

// BinanceClient fetches daily klines from GET /api/v3/klines.
type BinanceClient struct {
	baseURL string
	client  *http.Client
}

var _ PriceFetcher = (*BinanceClient)(nil)

// NewBinanceClient builds a client for baseURL (DefaultBinanceBaseURL when empty).
func NewBinanceClient(baseURL string, client *http.Client) *BinanceClient {
	if baseURL == "" {
		baseURL = DefaultBinanceBaseURL
	}
	return &BinanceClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// binanceError is the body Binance returns on 4xx/5xx responses.
type binanceError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// FetchDailyCandles requests up to limit daily klines of symbol between start and end
// (both sent as millisecond epoch timestamps).
func (b *BinanceClient) FetchDailyCandles(ctx context.Context, symbol string, start, end time.Time, limit int) ([]models.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", DailyInterval)
	q.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	q.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	q.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s/api/v3/klines?%s", b.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		var apiErr binanceError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Msg != "" {
			return nil, fmt.Errorf("binance http %d: %s (code %d)", res.StatusCode, apiErr.Msg, apiErr.Code)
		}
		return nil, fmt.Errorf("binance http %d", res.StatusCode)
	}

	var rows [][]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode klines: %w", err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i, row := range rows {
		c, err := parseKline(row)
		if err != nil {
			return nil, fmt.Errorf("kline %d: %w", i, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// parseKline maps one positional kline array onto a Candle.
func parseKline(row []json.RawMessage) (models.Candle, error) {
	if len(row) < klineColumns {
		return models.Candle{}, fmt.Errorf("expected at least %d columns, got %d", klineColumns, len(row))
	}

	var openMs, closeMs int64
	if err := json.Unmarshal(row[0], &openMs); err != nil {
		return models.Candle{}, fmt.Errorf("parse open time %s: %w", row[0], err)
	}
	if err := json.Unmarshal(row[6], &closeMs); err != nil {
		return models.Candle{}, fmt.Errorf("parse close time %s: %w", row[6], err)
	}

	prices := make([]decimal.Decimal, 5)
	names := [...]string{"open", "high", "low", "close", "volume"}
	for i := range prices {
		if err := json.Unmarshal(row[i+1], &prices[i]); err != nil {
			return models.Candle{}, fmt.Errorf("parse %s %s: %w", names[i], row[i+1], err)
		}
	}

	return models.Candle{
		OpenTime:  time.UnixMilli(openMs).UTC(),
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    prices[4],
		CloseTime: time.UnixMilli(closeMs).UTC(),
	}, nil
}
