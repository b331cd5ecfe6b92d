package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/dcapulse/internal/domain/models"
	"github.com/guttosm/dcapulse/internal/logger"
	"github.com/guttosm/dcapulse/internal/market"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// ChunkCandles is the provider's maximum number of daily candles per call.
	// One window therefore spans ChunkCandles calendar days.
	ChunkCandles = 1000
	chunkSpan    = ChunkCandles * 24 * time.Hour

	// DefaultFetchTimeout bounds every single provider call.
	DefaultFetchTimeout = 10 * time.Second

	// quantityPrecision is the number of decimal places kept for acquired asset quantity.
	quantityPrecision = 18
)

var hundred = decimal.NewFromInt(100)

// DCAService runs dollar-cost-averaging simulations over historical daily candles.
type DCAService interface {
	Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResult, error)
}

// Options tunes how windows are fetched.
//
// Fields:
//   - FetchTimeout: per-call bound (default 10s).
//   - Parallelism: how many windows may be in flight at once. 0 or 1 fetches strictly
//     in order, stopping at the first empty window.
type Options struct {
	FetchTimeout time.Duration
	Parallelism  int
}

type dcaService struct {
	fetcher market.PriceFetcher
	opts    Options
}

// NewDCAService builds a DCAService backed by fetcher.
func NewDCAService(fetcher market.PriceFetcher, opts Options) DCAService {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	return &dcaService{fetcher: fetcher, opts: opts}
}

// window is one provider-sized slice of the requested range.
type window struct {
	start time.Time
	end   time.Time
}

// planWindows partitions [start, end) into windows that start every chunkSpan.
// Each window end is clamped to end. Zero bounds or start >= end produce no windows.
func planWindows(start, end time.Time) []window {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	var out []window
	for cur := start; cur.Before(end); cur = cur.Add(chunkSpan) {
		chunkEnd := cur.Add(chunkSpan)
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		out = append(out, window{start: cur, end: chunkEnd})
	}
	return out
}

// accumulator is the running state of one simulation. It is never shared between runs.
type accumulator struct {
	invested decimal.Decimal
	quantity decimal.Decimal
	first    decimal.Decimal
	last     decimal.Decimal
	seen     bool
	candles  int
}

// add buys amount worth of the asset at the candle's close.
func (a *accumulator) add(amount decimal.Decimal, c models.Candle) error {
	if !c.Close.IsPositive() {
		return fmt.Errorf("%w: non-positive close price %s at %s", ErrExternalFetch, c.Close, c.OpenTime.Format(time.DateOnly))
	}
	a.quantity = a.quantity.Add(amount.DivRound(c.Close, quantityPrecision))
	a.invested = a.invested.Add(amount)
	a.last = c.Close
	if !a.seen {
		a.first = c.Close
		a.seen = true
	}
	a.candles++
	return nil
}

// result derives the final metrics.
func (a *accumulator) result(symbol string) (*models.SimulationResult, error) {
	if !a.seen {
		return nil, ErrNoDataInRange
	}
	if a.invested.IsZero() {
		return nil, ErrNothingInvested
	}

	value := a.quantity.Mul(a.last)
	pl := value.Sub(a.invested)

	return &models.SimulationResult{
		Symbol:           symbol,
		TotalInvested:    a.invested,
		AssetQuantity:    a.quantity,
		PortfolioValue:   value,
		StartPrice:       a.first,
		LastPrice:        a.last,
		ProfitOrLoss:     pl,
		PercentageChange: pl.Div(a.invested).Mul(hundred).StringFixed(2),
		CandleCount:      a.candles,
	}, nil
}

// Simulate buys req.DailyInvestment worth of req.Symbol at every daily close between
// req.Start and req.End and values the position at the last observed close.
//
// Errors:
//   - ErrExternalFetch (wrapping the cause) when any provider call fails. No partial result.
//   - ErrNoDataInRange when no candle was observed.
func (s *dcaService) Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResult, error) {
	started := time.Now()
	windows := planWindows(req.Start, req.End)

	var (
		acc accumulator
		err error
	)
	if s.opts.Parallelism > 1 && len(windows) > 1 {
		err = s.foldParallel(ctx, req, windows, &acc)
	} else {
		err = s.foldSequential(ctx, req, windows, &acc)
	}
	if err != nil {
		logger.L().Error().Err(err).Str("symbol", req.Symbol).Int("windows", len(windows)).Msg("simulation failed")
		return nil, err
	}

	res, err := acc.result(req.Symbol)
	if err != nil {
		logger.L().Info().Err(err).Str("symbol", req.Symbol).Str("start", req.StartDate).Str("end", req.EndDate).Msg("simulation produced no result")
		return nil, err
	}

	logger.L().Info().
		Str("symbol", res.Symbol).
		Str("start", req.StartDate).
		Str("end", req.EndDate).
		Int("windows", len(windows)).
		Int("candles", res.CandleCount).
		Str("percentage_change", res.PercentageChange).
		Dur("elapsed", time.Since(started)).
		Msg("simulation done")
	return res, nil
}

// foldSequential fetches one window at a time and stops at the first empty one.
func (s *dcaService) foldSequential(ctx context.Context, req models.SimulationRequest, windows []window, acc *accumulator) error {
	for i, w := range windows {
		i, w := i, w
		candles, err := s.fetch(ctx, req.Symbol, w)
		if err != nil {
			return err
		}
		logger.L().Debug().Int("idx", i+1).Int("total", len(windows)).Int("candles", len(candles)).Msg("window fetched")
		if len(candles) == 0 {
			return nil
		}
		if err := foldCandles(acc, req.DailyInvestment, candles); err != nil {
			return err
		}
	}
	return nil
}

// foldParallel prefetches windows with bounded concurrency, then folds them in
// ascending time order so start and last prices match the sequential result.
func (s *dcaService) foldParallel(ctx context.Context, req models.SimulationRequest, windows []window, acc *accumulator) error {
	results := make([][]models.Candle, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Parallelism)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			candles, err := s.fetch(gctx, req.Symbol, w)
			if err != nil {
				return err
			}
			results[i] = candles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, candles := range results {
		if len(candles) == 0 {
			return nil
		}
		if err := foldCandles(acc, req.DailyInvestment, candles); err != nil {
			return err
		}
	}
	return nil
}

// fetch runs one provider call under its own timeout.
func (s *dcaService) fetch(ctx context.Context, symbol string, w window) ([]models.Candle, error) {
	fctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	candles, err := s.fetcher.FetchDailyCandles(fctx, symbol, w.start, w.end, ChunkCandles)
	if err != nil {
		return nil, fmt.Errorf("%w: window %s..%s: %w", ErrExternalFetch,
			w.start.Format(time.DateOnly), w.end.Format(time.DateOnly), err)
	}
	return candles, nil
}

func foldCandles(acc *accumulator, amount decimal.Decimal, candles []models.Candle) error {
	for _, c := range candles {
		if err := acc.add(amount, c); err != nil {
			return err
		}
	}
	return nil
}
