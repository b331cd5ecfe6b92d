package dto

import (
	"encoding/json"
	"strings"
)

// SimulationRequest represents the JSON body accepted by POST /calculate.
//
// DailyInvestment is kept raw so that both JSON numbers (10) and numeric
// strings ("10") reach the validator, which owns the decision about what
// counts as a valid amount.
type SimulationRequest struct {
	Symbol          string          `json:"symbol" example:"BTCUSDT"`
	DailyInvestment json.RawMessage `json:"dailyInvestment" swaggertype:"number" example:"10"`
	StartDate       string          `json:"startDate" example:"2023-01-01"`
	EndDate         string          `json:"endDate" example:"2024-01-01"`
}

// AmountText returns the daily investment as text with surrounding JSON quotes removed.
func (r SimulationRequest) AmountText() string {
	s := strings.TrimSpace(string(r.DailyInvestment))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal([]byte(s), &unquoted); err == nil {
			return strings.TrimSpace(unquoted)
		}
	}
	return s
}
