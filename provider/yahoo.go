// file: provider/yahoo.go

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/sirupsen/logrus"
)

const historyProvider = "yahoo"

// HistoryClient reads daily series from the Yahoo Finance chart API.
type HistoryClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHistoryClient(baseURL string, timeout time.Duration) *HistoryClient {
	return &HistoryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		GMTOffset int64 `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open  []*float64 `json:"open"`
			High  []*float64 `json:"high"`
			Low   []*float64 `json:"low"`
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// FXSymbol maps a currency pair to Yahoo's FX ticker, e.g. EUR/USD -> EURUSD=X.
func FXSymbol(base, quote string) string {
	return strings.ToUpper(base) + strings.ToUpper(quote) + "=X"
}

// DailyHistory returns the last month of daily candles for symbol, oldest
// first. Rows with a missing field are skipped. An unknown symbol yields
// ErrSymbolNotFound; any other failure is an *UpstreamError.
func (c *HistoryClient) DailyHistory(ctx context.Context, symbol string) ([]model.Candle, error) {
	params := url.Values{}
	params.Set("range", "1mo")
	params.Set("interval", "1d")
	endpoint := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + params.Encode()

	log := logger.Log.WithFields(logrus.Fields{
		"provider": historyProvider,
		"symbol":   symbol,
	})
	log.Info("Requesting price history")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Provider: historyProvider, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("History request failed")
		return nil, &UpstreamError{Provider: historyProvider, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &UpstreamError{Provider: historyProvider, Status: resp.StatusCode, Err: err}
	}

	var payload chartResponse
	decodeErr := json.Unmarshal(body, &payload)

	if decodeErr == nil && payload.Chart.Error != nil {
		if payload.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
		}
		log.WithField("code", payload.Chart.Error.Code).Warn("History provider reported an error")
		return nil, &UpstreamError{
			Provider: historyProvider,
			Status:   resp.StatusCode,
			Message:  firstNonEmpty(payload.Chart.Error.Description, payload.Chart.Error.Code),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Warn("History provider returned a non-2xx status")
		return nil, &UpstreamError{
			Provider: historyProvider,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return nil, &UpstreamError{Provider: historyProvider, Status: resp.StatusCode, Message: "invalid response body", Err: decodeErr}
	}

	if len(payload.Chart.Result) == 0 {
		return []model.Candle{}, nil
	}
	candles := normalizeCandles(payload.Chart.Result[0])
	if skipped := len(payload.Chart.Result[0].Timestamp) - len(candles); skipped > 0 {
		log.WithField("skipped", skipped).Warn("Skipped incomplete history rows")
	}
	return candles, nil
}

func normalizeCandles(r chartResult) []model.Candle {
	candles := make([]model.Candle, 0, len(r.Timestamp))
	if len(r.Indicators.Quote) == 0 {
		return candles
	}
	q := r.Indicators.Quote[0]

	for i, ts := range r.Timestamp {
		open, ok1 := at(q.Open, i)
		high, ok2 := at(q.High, i)
		low, ok3 := at(q.Low, i)
		closePrice, ok4 := at(q.Close, i)
		if ts <= 0 || !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		candles = append(candles, model.Candle{
			Date:  time.Unix(ts+r.Meta.GMTOffset, 0).UTC().Format("2006-01-02"),
			Open:  open,
			High:  high,
			Low:   low,
			Close: closePrice,
		})
	}
	return candles
}

func at(values []*float64, i int) (float64, bool) {
	if i >= len(values) || values[i] == nil {
		return 0, false
	}
	return *values[i], true
}
