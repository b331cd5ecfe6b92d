package service

import "errors"

// Validation failures. They are reported before any market data call is made.
var (
	ErrInvalidSymbol     = errors.New("symbol must be 6 to 8 uppercase letters, e.g. 'BTCUSDT'")
	ErrInvalidAmount     = errors.New("daily investment must be a positive number")
	ErrInvalidDateFormat = errors.New("dates must use the YYYY-MM-DD format")
)

// Simulation failures.
var (
	// ErrExternalFetch wraps any market data failure (timeout, network, non-2xx, bad payload).
	ErrExternalFetch = errors.New("failed to fetch price history")
	// ErrNoDataInRange means every window was fetched but no candle was observed.
	ErrNoDataInRange = errors.New("no price data available for the requested period")
	// ErrNothingInvested guards the percentage computation when nothing was spent.
	ErrNothingInvested = errors.New("total invested is zero, percentage change is undefined")
)

// IsClientError reports whether err was caused by the request itself rather than
// by the service or its market data provider.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSymbol) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrNoDataInRange) ||
		errors.Is(err, ErrNothingInvested)
}
