package service

import (
	"context"
	"math"
	"testing"
	"time"

	"backend/customerrors"
	"backend/model"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoHoldings() []model.Holding {
	return []model.Holding{
		{Symbol: "AAPL", CurrentValue: 600, InvestedValue: 500, AssetType: "equity"},
		{Symbol: "GOLD", CurrentValue: 400, InvestedValue: 500, AssetType: "gold_etf"},
	}
}

func TestComputeMetrics_ConcentrationAndDiversification(t *testing.T) {
	metrics := ComputeMetrics(twoHoldings(), nil)

	assert.InDelta(t, 0.6, metrics.ConcentrationRisk, 1e-9)
	// 1 - (0.6^2 + 0.4^2)
	assert.InDelta(t, 0.48, metrics.DiversificationRatio, 1e-9)
	assert.InDelta(t, 1000.0, metrics.TotalValue, 1e-9)
	assert.InDelta(t, 0.0, metrics.TotalPnl, 1e-9)
	assert.InDelta(t, 0.0, metrics.TotalPnlPercentage, 1e-9)
}

func TestComputeMetrics_DefaultsWithoutHistory(t *testing.T) {
	metrics := ComputeMetrics(twoHoldings(), nil)

	assert.InDelta(t, 0.20, metrics.Volatility, 1e-9)
	assert.InDelta(t, 1.0, metrics.Beta, 1e-9)
	// volatility proxy: 0.20 * 1.5
	assert.InDelta(t, 0.30, metrics.MaxDrawdown, 1e-9)
	// (0.0 - 0.05) / 0.20
	assert.InDelta(t, -0.25, metrics.SharpeRatio, 1e-9)
	// 0.0 - (0.05 + 1.0*0.07)
	assert.InDelta(t, -0.12, metrics.Alpha, 1e-9)
	// vol band 2 + concentration band 4 + drawdown band 4 = 10
	assert.Equal(t, model.RiskVeryHigh, metrics.RiskLevel)
}

func TestComputeMetrics_SharpeAndAlphaUsePercentReturn(t *testing.T) {
	// The P&L percentage (20.0, not 0.20) goes into both ratios against
	// fractional rates.
	metrics := ComputeMetrics([]model.Holding{
		{Symbol: "AAPL", CurrentValue: 1200, InvestedValue: 1000, AssetType: "equity"},
	}, nil)

	assert.InDelta(t, 20.0, metrics.TotalPnlPercentage, 1e-9)
	// (20.0 - 0.05) / 0.20
	assert.InDelta(t, 99.75, metrics.SharpeRatio, 1e-9)
	// 20.0 - (0.05 + 1.0*0.07)
	assert.InDelta(t, 19.88, metrics.Alpha, 1e-9)
}

func TestComputeMetrics_HistoricalSeries(t *testing.T) {
	returns := &model.HistoricalReturns{
		Portfolio: []float64{0.01, -0.02, 0.015, 0.005},
		Market:    []float64{0.01, -0.02, 0.015, 0.005},
	}

	metrics := ComputeMetrics(twoHoldings(), returns)

	// Identical series: beta is exactly 1.
	assert.InDelta(t, 1.0, metrics.Beta, 1e-9)
	assert.Positive(t, metrics.Volatility)

	// Cumulative curve peaks after +1%, then drops 2%.
	assert.InDelta(t, 0.02, metrics.MaxDrawdown, 1e-4)
}

func TestComputeMetrics_SeriesLengthMismatchFallsBackToBeta1(t *testing.T) {
	returns := &model.HistoricalReturns{
		Portfolio: []float64{0.01, 0.02, 0.03},
		Market:    []float64{0.01, 0.02},
	}

	metrics := ComputeMetrics(twoHoldings(), returns)
	assert.InDelta(t, 1.0, metrics.Beta, 1e-9)
}

func TestComputeMetrics_FlatMarketFallsBackToBeta1(t *testing.T) {
	returns := &model.HistoricalReturns{
		Portfolio: []float64{0.01, 0.02, 0.03},
		Market:    []float64{0.01, 0.01, 0.01},
	}

	metrics := ComputeMetrics(twoHoldings(), returns)
	assert.InDelta(t, 1.0, metrics.Beta, 1e-9)
}

func TestComputeMetrics_EmptyHoldings(t *testing.T) {
	metrics := ComputeMetrics(nil, nil)

	assert.Zero(t, metrics.TotalValue)
	assert.Zero(t, metrics.ConcentrationRisk)
	assert.Zero(t, metrics.DiversificationRatio)
	assert.Zero(t, metrics.Volatility)
	assert.False(t, math.IsNaN(metrics.SharpeRatio))
	assert.False(t, math.IsNaN(metrics.Alpha))
}

func TestComputeMetrics_SingleHoldingHasZeroDiversification(t *testing.T) {
	metrics := ComputeMetrics([]model.Holding{
		{Symbol: "AAPL", CurrentValue: 1000, InvestedValue: 900, AssetType: "equity"},
	}, nil)

	assert.Zero(t, metrics.DiversificationRatio)
	assert.InDelta(t, 1.0, metrics.ConcentrationRisk, 1e-9)
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	holdings := twoHoldings()

	first := ComputeMetrics(holdings, nil)
	second := ComputeMetrics(holdings, nil)

	assert.Equal(t, first, second)
}

func TestComputeAssetAllocation(t *testing.T) {
	allocation := ComputeAssetAllocation([]model.Holding{
		{CurrentValue: 500, AssetType: "equity"},
		{CurrentValue: 250, AssetType: "gold_etf"},
		{CurrentValue: 150, AssetType: "government_bond"},
		{CurrentValue: 100, AssetType: "reit"},
	})

	assert.InDelta(t, 50.0, allocation.Equity, 1e-9)
	assert.InDelta(t, 25.0, allocation.Commodities, 1e-9)
	assert.InDelta(t, 15.0, allocation.Debt, 1e-9)
	assert.InDelta(t, 10.0, allocation.Others, 1e-9)
	assert.Zero(t, allocation.Crypto)
}

func TestComputeAssetAllocation_ZeroValue(t *testing.T) {
	allocation := ComputeAssetAllocation([]model.Holding{{CurrentValue: 0, AssetType: "equity"}})
	assert.Zero(t, allocation.Equity)
}

func TestGenerateAdvisories_FixedOrder(t *testing.T) {
	metrics := model.PortfolioMetrics{
		RiskLevel:            model.RiskVeryHigh,
		ConcentrationRisk:    0.6,
		DiversificationRatio: 0.2,
		SharpeRatio:          -0.3,
		Alpha:                -0.1,
		Volatility:           0.4,
	}

	advisories := GenerateAdvisories(metrics)
	require.Len(t, advisories, 6)

	assert.Contains(t, advisories[0], "very high")
	assert.Contains(t, advisories[1], "single holding")
	assert.Contains(t, advisories[2], "Diversification is low")
	assert.Contains(t, advisories[3], "Risk-adjusted returns")
	assert.Contains(t, advisories[4], "underperforming")
	assert.Contains(t, advisories[5], "defensive assets")
}

func TestGenerateAdvisories_HealthyPortfolioIsQuiet(t *testing.T) {
	metrics := model.PortfolioMetrics{
		RiskLevel:            model.RiskLow,
		ConcentrationRisk:    0.2,
		DiversificationRatio: 0.8,
		SharpeRatio:          1.2,
		Alpha:                0.03,
		Volatility:           0.12,
	}

	assert.Empty(t, GenerateAdvisories(metrics))
}

func TestAnalysisResponseFromDoc(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)
	doc := repository.PortfolioAnalysisDoc{
		Broker:          model.BrokerTrading212,
		Metrics:         model.PortfolioMetrics{TotalValue: 1000, RiskLevel: model.RiskMedium},
		AssetAllocation: model.AssetAllocation{Equity: 100},
		Recommendations: []string{"Diversification is low. Consider adding holdings across different sectors or asset classes."},
		CreatedAt:       created,
	}

	response := analysisResponseFromDoc(doc)

	assert.Equal(t, model.BrokerTrading212, response.Broker)
	assert.InDelta(t, 1000.0, response.Metrics.TotalValue, 1e-9)
	assert.Equal(t, model.RiskMedium, response.Metrics.RiskLevel)
	assert.InDelta(t, 100.0, response.AssetAllocation.Equity, 1e-9)
	assert.Len(t, response.Recommendations, 1)
	assert.Equal(t, "2026-08-30T10:15:00Z", response.AnalysisDate)
}

func TestGetLatestAnalysis_UnknownBroker(t *testing.T) {
	svc := NewPortfolioService(nil, nil)

	_, err := svc.GetLatestAnalysis(context.Background(), model.BrokerType("zerodha"))
	assert.ErrorIs(t, err, customerrors.ErrUnknownBroker)
}

func TestGetLatestAnalysis_NoRepositoryMeansNoSnapshot(t *testing.T) {
	svc := NewPortfolioService(nil, nil)

	response, err := svc.GetLatestAnalysis(context.Background(), model.BrokerTrading212)
	require.NoError(t, err)
	assert.Nil(t, response)
}
