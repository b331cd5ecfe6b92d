package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle represents one daily price observation returned by the market data provider.
//
// Only Close takes part in the DCA simulation. The remaining fields are kept so the
// cache layer can store the provider response without losing information.
//
// Binance kline column order:
//  1. OpenTime
//  2. Open
//  3. High
//  4. Low
//  5. Close
//  6. Volume
//  7. CloseTime
type Candle struct {
	OpenTime  time.Time       `json:"open_time"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
	CloseTime time.Time       `json:"close_time"`
}
