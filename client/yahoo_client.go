package client

import (
	"backend/cache"
	"backend/database"
	"backend/middleware"
	"backend/model"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type YahooClient struct {
	chart  *resty.Client
	search *resty.Client
}

func NewYahooClient() *YahooClient {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}

	chart := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v8/finance/chart").
		SetTimeout(10 * time.Second).
		SetHeaders(headers).
		OnAfterResponse(middleware.DecompressMiddleware)

	search := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v1/finance").
		SetTimeout(10 * time.Second).
		SetHeaders(headers).
		OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		chart:  chart,
		search: search,
	}
}

// YahooSymbol maps an exchange hint onto Yahoo's ticker suffix scheme.
func YahooSymbol(symbol, exchange string) string {
	switch exchange {
	case "NSE":
		return symbol + ".NS"
	case "BSE":
		return symbol + ".BO"
	default:
		return symbol
	}
}

// GetHistoricalBars fetches daily OHLCV candles, oldest first. Bars with
// zero volume or a zero open are holiday padding and get dropped.
func (y *YahooClient) GetHistoricalBars(ctx context.Context, symbol, exchange string, timeRange model.YahooTimeRange) ([]model.PriceBar, error) {
	ticker := YahooSymbol(symbol, exchange)
	cacheKey := "yahoo_bars_" + ticker + "_" + string(timeRange)

	var bars []model.PriceBar
	if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &bars); ok {
		return bars, nil
	}

	result, err := y.fetchChart(ctx, ticker, timeRange)
	if err != nil {
		return nil, err
	}

	bars = make([]model.PriceBar, 0, len(result.Timestamp))
	if len(result.Indicators.Quote) == 0 {
		return bars, nil
	}

	quote := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Volume[i] == 0 || quote.Open[i] == 0 {
			continue
		}
		bars = append(bars, model.PriceBar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      quote.Open[i],
			High:      quote.High[i],
			Low:       quote.Low[i],
			Close:     quote.Close[i],
			Volume:    quote.Volume[i],
		})
	}

	if len(bars) > 0 {
		database.RedisHelper.Set(cacheKey, bars, 15*time.Minute)
	}

	return bars, nil
}

// GetMarketInfo builds the normalized quote from the one-day chart meta.
func (y *YahooClient) GetMarketInfo(ctx context.Context, symbol, exchange string) (model.MarketInfo, error) {
	ticker := YahooSymbol(symbol, exchange)

	if val, found := cache.QuoteCache.Get(ticker); found {
		return val.(model.MarketInfo), nil
	}

	result, err := y.fetchChart(ctx, ticker, model.Range1d)
	if err != nil {
		return model.MarketInfo{}, err
	}

	meta := result.Meta
	info := model.MarketInfo{
		Symbol:           symbol,
		Name:             meta.LongName,
		Exchange:         meta.ExchangeName,
		Currency:         meta.Currency,
		CurrentPrice:     meta.RegularMarketPrice,
		PreviousClose:    meta.PreviousClose,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
	}
	if meta.PreviousClose != 0 {
		info.DayChange = meta.RegularMarketPrice - meta.PreviousClose
		info.DayChangePct = info.DayChange / meta.PreviousClose * 100
	}

	cache.QuoteCache.Set(ticker, info, goCache.DefaultExpiration)
	return info, nil
}

// GetNews pulls recent headlines for a symbol from the search endpoint.
func (y *YahooClient) GetNews(ctx context.Context, symbol string, limit int) ([]model.NewsArticle, error) {
	if val, found := cache.NewsCache.Get(symbol); found {
		articles := val.([]model.NewsArticle)
		return capArticles(articles, limit), nil
	}

	var searchResponse model.YahooSearchResponse
	resp, err := y.search.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":         symbol,
			"newsCount": "20",
		}).
		SetResult(&searchResponse).
		Get("/search")

	if err != nil || !resp.IsSuccess() {
		log.Warn().Str("symbol", symbol).Err(err).Msg("News fetch failed")
		return nil, fmt.Errorf("yahoo news request failed: %v", err)
	}

	articles := make([]model.NewsArticle, 0, len(searchResponse.News))
	for _, item := range searchResponse.News {
		if item.Title == "" {
			continue
		}
		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			Publisher:   item.Publisher,
			Link:        item.Link,
			PublishedAt: time.Unix(item.ProviderPublishTime, 0).UTC(),
		})
	}

	cache.NewsCache.Set(symbol, articles, goCache.DefaultExpiration)
	return capArticles(articles, limit), nil
}

func (y *YahooClient) fetchChart(ctx context.Context, ticker string, timeRange model.YahooTimeRange) (model.ChartResult, error) {
	var chartResponse model.YahooChartResponse
	resp, err := y.chart.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(timeRange),
			"interval": string(model.Interval1d),
		}).
		SetResult(&chartResponse).
		Get("/" + ticker)

	if err != nil || !resp.IsSuccess() || chartResponse.Chart.Error != nil {
		log.Error().Str("ticker", ticker).Err(err).Msg("Error calling yahoo chart api")
		return model.ChartResult{}, fmt.Errorf("yahoo chart request failed for %s: %v", ticker, err)
	}

	if len(chartResponse.Chart.Result) == 0 {
		return model.ChartResult{}, fmt.Errorf("yahoo chart returned no result for %s", ticker)
	}

	return chartResponse.Chart.Result[0], nil
}

func capArticles(articles []model.NewsArticle, limit int) []model.NewsArticle {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
