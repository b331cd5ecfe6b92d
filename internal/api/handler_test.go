package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/domain/models"
	"github.com/guttosm/dcapulse/internal/service"
	"github.com/shopspring/decimal"
)

type mockDCAService struct {
	resp   *models.SimulationResult
	err    error
	called bool
	got    models.SimulationRequest
}

func (m *mockDCAService) Simulate(_ context.Context, req models.SimulationRequest) (*models.SimulationResult, error) {
	m.called = true
	m.got = req
	return m.resp, m.err
}

var _ service.DCAService = (*mockDCAService)(nil)

func setupRouterWithMock(s service.DCAService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.POST("/calculate", h.Calculate)
	return r
}

func sampleResult() *models.SimulationResult {
	return &models.SimulationResult{
		Symbol:           "BTCUSDT",
		TotalInvested:    decimal.NewFromInt(10),
		PortfolioValue:   decimal.NewFromInt(10),
		StartPrice:       decimal.NewFromInt(50000),
		LastPrice:        decimal.NewFromInt(50000),
		ProfitOrLoss:     decimal.Zero,
		PercentageChange: "0.00",
		CandleCount:      1,
	}
}

func TestCalculate_TableDriven(t *testing.T) {
	valid := `{"symbol":"BTCUSDT","dailyInvestment":10,"startDate":"2024-01-01","endDate":"2024-01-02"}`

	cases := []struct {
		name       string
		svc        *mockDCAService
		body       string
		status     int
		wantCalled bool
		wantError  string
	}{
		{
			name:   "malformed json",
			svc:    &mockDCAService{},
			body:   `{"symbol":`,
			status: http.StatusBadRequest,
		},
		{
			name:      "lowercase symbol",
			svc:       &mockDCAService{},
			body:      `{"symbol":"ethusdt","dailyInvestment":10,"startDate":"2024-01-01","endDate":"2024-01-02"}`,
			status:    http.StatusBadRequest,
			wantError: service.ErrInvalidSymbol.Error(),
		},
		{
			name:      "negative amount",
			svc:       &mockDCAService{},
			body:      `{"symbol":"BTCUSDT","dailyInvestment":-1,"startDate":"2024-01-01","endDate":"2024-01-02"}`,
			status:    http.StatusBadRequest,
			wantError: service.ErrInvalidAmount.Error(),
		},
		{
			name:      "non numeric amount",
			svc:       &mockDCAService{},
			body:      `{"symbol":"BTCUSDT","dailyInvestment":"ten","startDate":"2024-01-01","endDate":"2024-01-02"}`,
			status:    http.StatusBadRequest,
			wantError: service.ErrInvalidAmount.Error(),
		},
		{
			name:      "bad date",
			svc:       &mockDCAService{},
			body:      `{"symbol":"BTCUSDT","dailyInvestment":10,"startDate":"01/01/2024","endDate":"2024-01-02"}`,
			status:    http.StatusBadRequest,
			wantError: service.ErrInvalidDateFormat.Error(),
		},
		{
			name:       "no data",
			svc:        &mockDCAService{err: service.ErrNoDataInRange},
			body:       valid,
			status:     http.StatusBadRequest,
			wantCalled: true,
			wantError:  service.ErrNoDataInRange.Error(),
		},
		{
			name:       "provider failure",
			svc:        &mockDCAService{err: fmt.Errorf("%w: %w", service.ErrExternalFetch, context.DeadlineExceeded)},
			body:       valid,
			status:     http.StatusInternalServerError,
			wantCalled: true,
			wantError:  service.ErrExternalFetch.Error(),
		},
		{
			name:       "unexpected failure",
			svc:        &mockDCAService{err: errors.New("boom")},
			body:       valid,
			status:     http.StatusInternalServerError,
			wantCalled: true,
			wantError:  "internal server error",
		},
		{
			name:       "success",
			svc:        &mockDCAService{resp: sampleResult()},
			body:       valid,
			status:     http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "success with string amount",
			svc:        &mockDCAService{resp: sampleResult()},
			body:       `{"symbol":"BTCUSDT","dailyInvestment":"10","startDate":"2024-01-01","endDate":"2024-01-02"}`,
			status:     http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.svc.called != tc.wantCalled {
				t.Fatalf("service called=%v, want %v", tc.svc.called, tc.wantCalled)
			}
			if tc.wantError != "" {
				var body map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if body["error"] != tc.wantError {
					t.Fatalf("error=%v, want %q", body["error"], tc.wantError)
				}
			}
		})
	}
}

func TestCalculate_SuccessBody(t *testing.T) {
	svc := &mockDCAService{resp: sampleResult()}
	r := setupRouterWithMock(svc)

	body := `{"symbol":"BTCUSDT","dailyInvestment":10,"startDate":"2024-01-01","endDate":"2024-01-02"}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := map[string]any{
		"symbol":           "BTCUSDT",
		"totalInvested":    float64(10),
		"portfolioValue":   float64(10),
		"startPrice":       float64(50000),
		"lastPrice":        float64(50000),
		"profitOrLoss":     float64(0),
		"percentageChange": "0.00",
	}
	for k, v := range want {
		if out[k] != v {
			t.Fatalf("%s=%v (%T), want %v", k, out[k], out[k], v)
		}
	}

	if !svc.got.DailyInvestment.Equal(decimal.NewFromInt(10)) || svc.got.Symbol != "BTCUSDT" || svc.got.StartDate != "2024-01-01" {
		t.Fatalf("unexpected request passed to service: %+v", svc.got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidSymbol, http.StatusBadRequest},
		{service.ErrNoDataInRange, http.StatusBadRequest},
		{service.ErrNothingInvested, http.StatusBadRequest},
		{fmt.Errorf("%w: x", service.ErrExternalFetch), http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Fatalf("statusFor(%v)=%d, want %d", c.err, got, c.want)
		}
	}
}
