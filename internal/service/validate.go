package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/dcapulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

var (
	// A 3-5 letter base followed by a 3 letter quote; effectively 6-8 uppercase letters.
	symbolPattern = regexp.MustCompile(`^[A-Z]{3,5}[A-Z]{3}$`)
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseRequest validates raw simulation input and converts it into a SimulationRequest.
//
// Rules, checked in this order (first failure wins):
//   - symbol matches ^[A-Z]{3,5}[A-Z]{3}$, else ErrInvalidSymbol.
//   - dailyInvestment parses as a decimal strictly greater than zero, else ErrInvalidAmount.
//   - startDate and endDate match YYYY-MM-DD, else ErrInvalidDateFormat.
//
// The date check is syntactic only: "2024-02-30" is accepted and rolls over to 2024-03-01.
func ParseRequest(symbol, dailyInvestment, startDate, endDate string) (models.SimulationRequest, error) {
	if !symbolPattern.MatchString(symbol) {
		return models.SimulationRequest{}, ErrInvalidSymbol
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(dailyInvestment))
	if err != nil || !amount.IsPositive() {
		return models.SimulationRequest{}, ErrInvalidAmount
	}

	if !datePattern.MatchString(startDate) || !datePattern.MatchString(endDate) {
		return models.SimulationRequest{}, ErrInvalidDateFormat
	}

	return models.SimulationRequest{
		Symbol:          symbol,
		DailyInvestment: amount,
		StartDate:       startDate,
		EndDate:         endDate,
		Start:           toUTCMidnight(startDate),
		End:             toUTCMidnight(endDate),
	}, nil
}

// toUTCMidnight converts a YYYY-MM-DD string to midnight UTC.
//
// Day-of-month overflow normalizes forward (2023-02-29 -> 2023-03-01). A month outside
// 1..12 or a day outside 1..31 cannot be placed on a calendar and yields the zero time;
// the simulator plans no windows for a zero bound.
func toUTCMidnight(s string) time.Time {
	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
