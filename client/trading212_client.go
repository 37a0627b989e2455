package client

import (
	"backend/model"
	"backend/util"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

type Trading212Client struct {
	client *resty.Client
}

func NewTrading212Client(apiKey string) *Trading212Client {
	client := resty.New().
		SetBaseURL("https://live.trading212.com/api/v0").
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"Authorization": apiKey,
		})

	return &Trading212Client{
		client: client,
	}
}

func (t *Trading212Client) IsConfigured() bool {
	return t.client.Header.Get("Authorization") != ""
}

type trading212Position struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Ppl          float64 `json:"ppl"`
	FxPpl        float64 `json:"fxPpl"`
}

// GetPortfolio fetches open positions and normalizes them into holdings.
func (t *Trading212Client) GetPortfolio(ctx context.Context) ([]model.Holding, error) {
	var positions []trading212Position
	resp, err := t.client.R().
		SetContext(ctx).
		SetResult(&positions).
		Get("/equity/portfolio")

	if err != nil || !resp.IsSuccess() {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg("Trading212 portfolio fetch failed")
		return nil, fmt.Errorf("trading212 request failed: %v", err)
	}

	holdings := make([]model.Holding, 0, len(positions))
	for _, p := range positions {
		invested := p.AveragePrice * p.Quantity
		current := p.CurrentPrice * p.Quantity
		pnl := current - invested

		holding := model.Holding{
			Symbol:        normalizeTicker(p.Ticker),
			Quantity:      p.Quantity,
			AveragePrice:  util.RoundTwo(p.AveragePrice),
			CurrentPrice:  util.RoundTwo(p.CurrentPrice),
			CurrentValue:  util.RoundTwo(current),
			InvestedValue: util.RoundTwo(invested),
			Pnl:           util.RoundTwo(pnl),
			AssetType:     "equity",
		}
		if invested != 0 {
			holding.PnlPercentage = util.RoundTwo(pnl / invested * 100)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}

// normalizeTicker strips Trading212's venue suffix, e.g. AAPL_US_EQ -> AAPL.
func normalizeTicker(ticker string) string {
	if idx := strings.Index(ticker, "_"); idx > 0 {
		return ticker[:idx]
	}
	return ticker
}
