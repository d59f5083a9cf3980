// file: model/quote.go

package model

// Candle is one daily OHLC row of a price history series.
type Candle struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Indicators is the indicator block of an Analysis.
type Indicators struct {
	RSI            int    `json:"rsi"`
	MACD           string `json:"macd"`
	MovingAverages string `json:"moving_averages"`
}

// Analysis is the technical-analysis document for a pair.
type Analysis struct {
	Pair       string     `json:"pair"`
	Analysis   string     `json:"analysis"`
	Indicators Indicators `json:"indicators"`
}
