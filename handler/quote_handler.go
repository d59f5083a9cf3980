package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/provider"
	"github.com/DavidL050/Forex/service"
	"github.com/gorilla/mux"
)

// QuoteHandler serves the currency catalog, rates, analysis and history.
type QuoteHandler struct {
	quotes *service.QuoteService
}

func NewQuoteHandler(quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// ListCurrencies godoc
// @Summary      List supported currency pairs
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/currencies [get]
func (h *QuoteHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.quotes.ListSupportedPairs())
	return nil
}

// GetRates godoc
// @Summary      Latest exchange rates
// @Description  USD-based rates for every currency in the requested pairs.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        pairs query string false "Comma separated pairs, e.g. EUR/USD,USD/JPY"
// @Success      200  {object}  map[string]number
// @Failure      401  {object}  model.MessageResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/rates [get]
func (h *QuoteHandler) GetRates(w http.ResponseWriter, r *http.Request) *common.AppError {
	var pairs []string
	if raw := r.URL.Query().Get("pairs"); raw != "" {
		pairs = strings.Split(raw, ",")
	}

	rates, err := h.quotes.GetRates(r.Context(), pairs)
	if err != nil {
		return upstreamError(err)
	}

	common.WriteJSON(w, http.StatusOK, rates)
	return nil
}

// GetAnalysis godoc
// @Summary      Technical analysis for a pair
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        pair path string true "Currency pair"
// @Success      200  {object}  model.Analysis
// @Failure      401  {object}  model.MessageResponse
// @Router       /api/analysis/{pair} [get]
func (h *QuoteHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.quotes.GetAnalysis(mux.Vars(r)["pair"]))
	return nil
}

// GetHistory godoc
// @Summary      One month of daily OHLC prices
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        pair path string true "Currency pair: EUR/USD, EUR-USD or EURUSD"
// @Success      200  {array}   model.Candle
// @Failure      400  {object}  model.MessageResponse
// @Failure      401  {object}  model.MessageResponse
// @Failure      404  {object}  model.MessageResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/history/{pair} [get]
func (h *QuoteHandler) GetHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	base, quote, err := service.ParsePair(mux.Vars(r)["pair"])
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid currency pair", err)
	}

	candles, err := h.quotes.GetHistory(r.Context(), base, quote)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			return common.NewAppError(http.StatusNotFound, "No historical data found for "+base+"/"+quote, nil)
		}
		return upstreamError(err)
	}

	common.WriteJSON(w, http.StatusOK, candles)
	return nil
}

// upstreamError surfaces the provider's error text to the client.
func upstreamError(err error) *common.AppError {
	var upstream *provider.UpstreamError
	if !errors.As(err, &upstream) {
		return internalError(err)
	}
	return common.NewAppError(http.StatusInternalServerError, "Upstream provider error", err).
		WithBody(map[string]string{"error": err.Error()})
}
