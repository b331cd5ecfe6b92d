package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationRequest is a validated DCA simulation input.
//
// Fields:
//   - Symbol: trading pair identifier (e.g., "BTCUSDT").
//   - DailyInvestment: amount of quote currency spent on every daily candle (> 0).
//   - StartDate / EndDate: the raw YYYY-MM-DD strings supplied by the caller.
//   - Start / End: midnight UTC of each date. Zero when the date cannot be placed on a calendar.
type SimulationRequest struct {
	Symbol          string
	DailyInvestment decimal.Decimal
	StartDate       string
	EndDate         string
	Start           time.Time
	End             time.Time
}

// SimulationResult is the outcome of one DCA run.
//
// PercentageChange is already rounded to two decimals and kept as text, matching the API contract.
//
// swagger:model SimulationResult
type SimulationResult struct {
	Symbol           string
	TotalInvested    decimal.Decimal
	AssetQuantity    decimal.Decimal
	PortfolioValue   decimal.Decimal
	StartPrice       decimal.Decimal
	LastPrice        decimal.Decimal
	ProfitOrLoss     decimal.Decimal
	PercentageChange string
	CandleCount      int
}
