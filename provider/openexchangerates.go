// file: provider/openexchangerates.go

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
	"github.com/sirupsen/logrus"
)

const ratesProvider = "openexchangerates"

// RatesClient queries the Open Exchange Rates latest.json endpoint.
type RatesClient struct {
	baseURL    string
	appID      string
	httpClient *http.Client
}

func NewRatesClient(baseURL, appID string, timeout time.Duration) *RatesClient {
	return &RatesClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		httpClient: newHTTPClient(timeout),
	}
}

type latestResponse struct {
	Error       bool               `json:"error"`
	Status      int                `json:"status"`
	Message     string             `json:"message"`
	Description string             `json:"description"`
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
}

// Latest returns the provider's rate mapping for symbols relative to base.
// Every failure is returned as *UpstreamError.
func (c *RatesClient) Latest(ctx context.Context, base string, symbols []string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("base", base)
	params.Set("symbols", strings.Join(symbols, ","))
	endpoint := c.baseURL + "/latest.json?" + params.Encode()

	log := logger.Log.WithFields(logrus.Fields{
		"provider": ratesProvider,
		"base":     base,
		"symbols":  strings.Join(symbols, ","),
	})
	log.Info("Requesting latest exchange rates")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Provider: ratesProvider, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Rates request failed")
		return nil, &UpstreamError{Provider: ratesProvider, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &UpstreamError{Provider: ratesProvider, Status: resp.StatusCode, Err: err}
	}

	var payload latestResponse
	decodeErr := json.Unmarshal(body, &payload)

	if decodeErr == nil && payload.Error {
		log.WithField("status", resp.StatusCode).Warn("Rates provider reported an error")
		return nil, &UpstreamError{
			Provider: ratesProvider,
			Status:   resp.StatusCode,
			Message:  "API error: " + firstNonEmpty(payload.Description, payload.Message, "Unknown error"),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Warn("Rates provider returned a non-2xx status")
		return nil, &UpstreamError{
			Provider: ratesProvider,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return nil, &UpstreamError{Provider: ratesProvider, Status: resp.StatusCode, Message: "invalid response body", Err: decodeErr}
	}

	if payload.Rates == nil {
		payload.Rates = map[string]float64{}
	}
	return payload.Rates, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
