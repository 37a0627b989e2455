package service

import (
	"backend/client"
	"backend/model"
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

const newsLimit = 10

// MarketBundle is everything the analysis pipeline needs for one symbol.
type MarketBundle struct {
	Info MarketInfoResult
	Bars []model.PriceBar
	News []model.NewsArticle
}

type MarketInfoResult struct {
	model.MarketInfo
	Available bool
}

type MarketDataService interface {
	FetchAll(ctx context.Context, symbol, exchange string, timeRange model.YahooTimeRange) MarketBundle
	GetMarketInfo(ctx context.Context, symbol, exchange string) (model.MarketInfo, error)
	GetHistoricalBars(ctx context.Context, symbol, exchange string, timeRange model.YahooTimeRange) ([]model.PriceBar, error)
	GetNews(ctx context.Context, symbol string) ([]model.NewsArticle, error)
}

type MarketDataServiceImpl struct {
	yahoo *client.YahooClient
}

func NewMarketDataService(yahoo *client.YahooClient) *MarketDataServiceImpl {
	return &MarketDataServiceImpl{yahoo: yahoo}
}

// FetchAll gathers quote, history and headlines concurrently. A failed
// upstream call degrades to its empty value so analysis can continue on
// whatever arrived.
func (m *MarketDataServiceImpl) FetchAll(ctx context.Context, symbol, exchange string, timeRange model.YahooTimeRange) MarketBundle {
	var bundle MarketBundle
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		info, err := m.yahoo.GetMarketInfo(ctx, symbol, exchange)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("Quote unavailable")
			return
		}
		bundle.Info = MarketInfoResult{MarketInfo: info, Available: true}
	}()

	go func() {
		defer wg.Done()
		bars, err := m.yahoo.GetHistoricalBars(ctx, symbol, exchange, timeRange)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("History unavailable")
			return
		}
		bundle.Bars = bars
	}()

	go func() {
		defer wg.Done()
		news, err := m.yahoo.GetNews(ctx, symbol, newsLimit)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("News unavailable")
			return
		}
		bundle.News = news
	}()

	wg.Wait()
	return bundle
}

func (m *MarketDataServiceImpl) GetMarketInfo(ctx context.Context, symbol, exchange string) (model.MarketInfo, error) {
	return m.yahoo.GetMarketInfo(ctx, symbol, exchange)
}

func (m *MarketDataServiceImpl) GetHistoricalBars(ctx context.Context, symbol, exchange string, timeRange model.YahooTimeRange) ([]model.PriceBar, error) {
	return m.yahoo.GetHistoricalBars(ctx, symbol, exchange, timeRange)
}

func (m *MarketDataServiceImpl) GetNews(ctx context.Context, symbol string) ([]model.NewsArticle, error) {
	return m.yahoo.GetNews(ctx, symbol, newsLimit)
}
