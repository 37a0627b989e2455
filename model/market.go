package model

import "time"

// PriceBar is one OHLCV candle. Bars are kept chronological, oldest first.
type PriceBar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Closes extracts the closing prices of a bar series.
func Closes(bars []PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

type YahooTimeRange string

const (
	Range1d  YahooTimeRange = "1d"
	Range5d  YahooTimeRange = "5d"
	Range1mo YahooTimeRange = "1mo"
	Range3mo YahooTimeRange = "3mo"
	Range6mo YahooTimeRange = "6mo"
	Range1y  YahooTimeRange = "1y"
	Range2y  YahooTimeRange = "2y"
	Range5y  YahooTimeRange = "5y"
	RangeMax YahooTimeRange = "max"
)

type YahooInterval string

const (
	Interval1d  YahooInterval = "1d"
	Interval1wk YahooInterval = "1wk"
	Interval1mo YahooInterval = "1mo"
)

// YahooChartResponse is the top-level chart API container
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  any           `json:"error"`
}

type ChartResult struct {
	Meta       ChartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators ChartIndicators `json:"indicators"`
}

type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	ExchangeName       string  `json:"exchangeName"`
	LongName           string  `json:"longName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"chartPreviousClose"`
	FiftyTwoWeekHigh   float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow    float64 `json:"fiftyTwoWeekLow"`
}

type ChartIndicators struct {
	Quote []ChartQuote `json:"quote"`
}

type ChartQuote struct {
	Low    []float64 `json:"low"`
	High   []float64 `json:"high"`
	Open   []float64 `json:"open"`
	Volume []int64   `json:"volume"`
	Close  []float64 `json:"close"`
}

// YahooSearchResponse is the search API container, used for headlines.
type YahooSearchResponse struct {
	News []YahooNewsItem `json:"news"`
}

type YahooNewsItem struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Type                string `json:"type"`
}

// MarketInfo is the normalized quote + metadata for one instrument.
type MarketInfo struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Exchange         string  `json:"exchange"`
	Currency         string  `json:"currency"`
	CurrentPrice     float64 `json:"current_price"`
	PreviousClose    float64 `json:"previous_close"`
	DayChange        float64 `json:"day_change"`
	DayChangePct     float64 `json:"day_change_percentage"`
	FiftyTwoWeekHigh float64 `json:"52_week_high"`
	FiftyTwoWeekLow  float64 `json:"52_week_low"`
}

// NewsArticle is one headline attached to an instrument.
type NewsArticle struct {
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}
