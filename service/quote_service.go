// file: service/quote_service.go

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/provider"
)

// RatesBase is the fixed base currency for rate lookups.
const RatesBase = "USD"

// defaultSymbols are queried when no pairs are requested.
var defaultSymbols = []string{"EUR", "GBP", "JPY", "CHF", "AUD", "CAD", "NZD"}

type RatesProvider interface {
	Latest(ctx context.Context, base string, symbols []string) (map[string]float64, error)
}

type HistoryProvider interface {
	DailyHistory(ctx context.Context, symbol string) ([]model.Candle, error)
}

// QuoteService is the gateway to the external rate and history providers.
type QuoteService struct {
	rates   RatesProvider
	history HistoryProvider
	pairs   []string
}

func NewQuoteService(rates RatesProvider, history HistoryProvider, pairs []string) *QuoteService {
	return &QuoteService{rates: rates, history: history, pairs: pairs}
}

// ListSupportedPairs returns the static catalog.
func (s *QuoteService) ListSupportedPairs() []string {
	out := make([]string, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// GetRates returns the provider's USD-based rates for every currency that
// appears in pairs. Failures are *provider.UpstreamError.
func (s *QuoteService) GetRates(ctx context.Context, pairs []string) (map[string]float64, error) {
	symbols := SymbolsForPairs(pairs)
	if len(symbols) == 0 {
		symbols = defaultSymbols
	}

	rates, err := s.rates.Latest(ctx, RatesBase, symbols)
	if err != nil {
		var upstream *provider.UpstreamError
		if !errors.As(err, &upstream) {
			err = &provider.UpstreamError{Provider: "rates", Err: err}
		}
		return nil, err
	}
	return rates, nil
}

// SymbolsForPairs splits "BASE/QUOTE" pairs into currency codes, dropping
// duplicates and keeping first-seen order.
func SymbolsForPairs(pairs []string) []string {
	seen := make(map[string]struct{})
	var symbols []string
	for _, pair := range pairs {
		for _, code := range strings.Split(pair, "/") {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			symbols = append(symbols, code)
		}
	}
	return symbols
}

// GetHistory returns about one month of daily candles for base/quote.
// ErrNoData is returned when the provider has nothing for the pair.
func (s *QuoteService) GetHistory(ctx context.Context, base, quote string) ([]model.Candle, error) {
	candles, err := s.history.DailyHistory(ctx, provider.FXSymbol(base, quote))
	if err != nil {
		if errors.Is(err, provider.ErrSymbolNotFound) {
			return nil, fmt.Errorf("%s/%s: %w", base, quote, ErrNoData)
		}
		var upstream *provider.UpstreamError
		if !errors.As(err, &upstream) {
			err = &provider.UpstreamError{Provider: "history", Err: err}
		}
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", base, quote, ErrNoData)
	}
	return candles, nil
}

// GetAnalysis returns the technical-analysis document for pair. The
// indicator values are fixed placeholders.
func (s *QuoteService) GetAnalysis(pair string) model.Analysis {
	return model.Analysis{
		Pair:     pair,
		Analysis: "BUY",
		Indicators: model.Indicators{
			RSI:            65,
			MACD:           "bullish",
			MovingAverages: "uptrend",
		},
	}
}

// ParsePair accepts EUR/USD, EUR-USD, EUR_USD and EURUSD and returns the
// upper-cased currency codes.
func ParsePair(s string) (string, string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	var base, quote string
	if i := strings.IndexAny(s, "/-_"); i >= 0 {
		base, quote = s[:i], s[i+1:]
	} else if len(s) == 6 {
		base, quote = s[:3], s[3:]
	}

	if !isCurrencyCode(base) || !isCurrencyCode(quote) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPair, s)
	}
	return base, quote, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
