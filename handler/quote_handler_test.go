package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/provider"
	"github.com/DavidL050/Forex/service"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRates struct {
	gotSymbols []string
	rates      map[string]float64
	err        error
}

func (s *stubRates) Latest(_ context.Context, _ string, symbols []string) (map[string]float64, error) {
	s.gotSymbols = symbols
	return s.rates, s.err
}

type stubHistory struct {
	gotSymbol string
	candles   []model.Candle
	err       error
}

func (s *stubHistory) DailyHistory(_ context.Context, symbol string) ([]model.Candle, error) {
	s.gotSymbol = symbol
	return s.candles, s.err
}

func TestQuoteHandler_ListCurrencies(t *testing.T) {
	h := NewQuoteHandler(service.NewQuoteService(&stubRates{}, &stubHistory{}, []string{"EUR/USD", "GBP/USD"}))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(h.ListCurrencies).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/currencies", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["EUR/USD","GBP/USD"]`, rr.Body.String())
}

func TestQuoteHandler_GetRates(t *testing.T) {
	rates := &stubRates{rates: map[string]float64{"EUR": 0.92, "JPY": 151.3, "USD": 1}}
	h := NewQuoteHandler(service.NewQuoteService(rates, &stubHistory{}, nil))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/api/rates?pairs=EUR/USD,USD/JPY", nil)
	ErrorHandlingMiddleware(h.GetRates).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"EUR":0.92,"JPY":151.3,"USD":1}`, rr.Body.String())
	assert.Equal(t, []string{"EUR", "USD", "JPY"}, rates.gotSymbols)
}

func TestQuoteHandler_GetRatesUpstreamError(t *testing.T) {
	rates := &stubRates{err: &provider.UpstreamError{Provider: "rates", Message: "API error: Invalid App ID provided"}}
	h := NewQuoteHandler(service.NewQuoteService(rates, &stubHistory{}, nil))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(h.GetRates).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/rates", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"rates: API error: Invalid App ID provided"}`, rr.Body.String())
}

func TestQuoteHandler_GetAnalysis(t *testing.T) {
	h := NewQuoteHandler(service.NewQuoteService(&stubRates{}, &stubHistory{}, nil))
	rr := httptest.NewRecorder()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/analysis/EUR/USD", nil), map[string]string{"pair": "EUR/USD"})
	ErrorHandlingMiddleware(h.GetAnalysis).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"pair": "EUR/USD",
		"analysis": "BUY",
		"indicators": {"rsi": 65, "macd": "bullish", "moving_averages": "uptrend"}
	}`, rr.Body.String())
}

func TestQuoteHandler_GetHistory(t *testing.T) {
	candles := []model.Candle{{Date: "2024-05-01", Open: 1.07, High: 1.08, Low: 1.06, Close: 1.075}}

	tests := []struct {
		name       string
		pair       string
		history    *stubHistory
		status     int
		want       string
		wantSymbol string
	}{
		{
			name:       "ok",
			pair:       "eur-usd",
			history:    &stubHistory{candles: candles},
			status:     http.StatusOK,
			want:       `[{"date":"2024-05-01","open":1.07,"high":1.08,"low":1.06,"close":1.075}]`,
			wantSymbol: "EURUSD=X",
		},
		{
			name:       "unknown symbol",
			pair:       "EUR/XYZ",
			history:    &stubHistory{err: provider.ErrSymbolNotFound},
			status:     http.StatusNotFound,
			want:       `{"message":"No historical data found for EUR/XYZ"}`,
			wantSymbol: "EURXYZ=X",
		},
		{
			name:       "empty series",
			pair:       "GBPUSD",
			history:    &stubHistory{},
			status:     http.StatusNotFound,
			want:       `{"message":"No historical data found for GBP/USD"}`,
			wantSymbol: "GBPUSD=X",
		},
		{
			name:    "invalid pair",
			pair:    "EURO",
			history: &stubHistory{},
			status:  http.StatusBadRequest,
			want:    `{"message":"Invalid currency pair"}`,
		},
		{
			name:       "provider down",
			pair:       "EUR/USD",
			history:    &stubHistory{err: errors.New("connection refused")},
			status:     http.StatusInternalServerError,
			want:       `{"error":"history: connection refused"}`,
			wantSymbol: "EURUSD=X",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewQuoteHandler(service.NewQuoteService(&stubRates{}, tc.history, nil))
			rr := httptest.NewRecorder()

			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/history/x", nil), map[string]string{"pair": tc.pair})
			ErrorHandlingMiddleware(h.GetHistory).ServeHTTP(rr, req)

			require.Equal(t, tc.status, rr.Code)
			assert.JSONEq(t, tc.want, rr.Body.String())
			assert.Equal(t, tc.wantSymbol, tc.history.gotSymbol)
		})
	}
}
