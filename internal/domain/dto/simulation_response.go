package dto

import "github.com/guttosm/dcapulse/internal/domain/models"

// SimulationResponse represents the JSON structure returned by POST /calculate.
//
// Monetary fields are plain JSON numbers; percentageChange is text with two decimals.
type SimulationResponse struct {
	Symbol           string  `json:"symbol" example:"BTCUSDT"`
	TotalInvested    float64 `json:"totalInvested" example:"3650"`
	PortfolioValue   float64 `json:"portfolioValue" example:"5120.42"`
	StartPrice       float64 `json:"startPrice" example:"16625.08"`
	LastPrice        float64 `json:"lastPrice" example:"42283.58"`
	ProfitOrLoss     float64 `json:"profitOrLoss" example:"1470.42"`
	PercentageChange string  `json:"percentageChange" example:"40.28"`
}

// NewSimulationResponse maps a domain result onto the API contract.
func NewSimulationResponse(r *models.SimulationResult) SimulationResponse {
	return SimulationResponse{
		Symbol:           r.Symbol,
		TotalInvested:    r.TotalInvested.InexactFloat64(),
		PortfolioValue:   r.PortfolioValue.InexactFloat64(),
		StartPrice:       r.StartPrice.InexactFloat64(),
		LastPrice:        r.LastPrice.InexactFloat64(),
		ProfitOrLoss:     r.ProfitOrLoss.InexactFloat64(),
		PercentageChange: r.PercentageChange,
	}
}
