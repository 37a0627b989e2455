package service

import (
	"math"
	"testing"
	"time"

	"backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barsFromCloses(closes []float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(closes))
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Timestamp: ts.AddDate(0, 0, i),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

func TestAnalyzeRSI_OversoldStrongBuy(t *testing.T) {
	result, ok := analyzeRSI([]float64{15})
	require.True(t, ok)

	assert.Equal(t, model.SignalStrongBuy, result.Signal)
	assert.InDelta(t, 45.0, result.Confidence, 1e-9)
	assert.Contains(t, result.Description, "Oversold")
}

func TestAnalyzeRSI_Tiers(t *testing.T) {
	result, _ := analyzeRSI([]float64{25})
	assert.Equal(t, model.SignalBuy, result.Signal)
	assert.InDelta(t, 15.0, result.Confidence, 1e-9)

	result, _ = analyzeRSI([]float64{75})
	assert.Equal(t, model.SignalSell, result.Signal)
	assert.InDelta(t, 15.0, result.Confidence, 1e-9)

	result, _ = analyzeRSI([]float64{85})
	assert.Equal(t, model.SignalStrongSell, result.Signal)

	result, _ = analyzeRSI([]float64{50})
	assert.Equal(t, model.SignalNeutral, result.Signal)
	assert.InDelta(t, 50.0, result.Confidence, 1e-9)
}

func TestAnalyzeRSI_ConfidenceClamped(t *testing.T) {
	result, ok := analyzeRSI([]float64{1})
	require.True(t, ok)
	assert.InDelta(t, 87.0, result.Confidence, 1e-9)

	result, ok = analyzeRSI([]float64{99.5})
	require.True(t, ok)
	assert.InDelta(t, 88.5, result.Confidence, 1e-9)
}

func TestAnalyzeRSI_UndefinedOmitted(t *testing.T) {
	_, ok := analyzeRSI([]float64{math.NaN()})
	assert.False(t, ok)

	_, ok = analyzeRSI(nil)
	assert.False(t, ok)
}

func TestAnalyzeMovingAverages_GoldenCross(t *testing.T) {
	result, ok := analyzeMovingAverages(105, []float64{9, 11}, []float64{10, 10})
	require.True(t, ok)

	assert.Equal(t, model.SignalStrongBuy, result.Signal)
	assert.InDelta(t, 85.0, result.Confidence, 1e-9)
	assert.Contains(t, result.Description, "Golden Cross")
}

func TestAnalyzeMovingAverages_DeathCross(t *testing.T) {
	result, ok := analyzeMovingAverages(95, []float64{11, 9}, []float64{10, 10})
	require.True(t, ok)

	assert.Equal(t, model.SignalStrongSell, result.Signal)
	assert.InDelta(t, 85.0, result.Confidence, 1e-9)
}

func TestAnalyzeMovingAverages_Trend(t *testing.T) {
	result, _ := analyzeMovingAverages(120, []float64{110, 110}, []float64{100, 100})
	assert.Equal(t, model.SignalBuy, result.Signal)
	assert.InDelta(t, 70.0, result.Confidence, 1e-9)

	result, _ = analyzeMovingAverages(80, []float64{90, 90}, []float64{100, 100})
	assert.Equal(t, model.SignalSell, result.Signal)
}

func TestAnalyzeBollingerBands_Position(t *testing.T) {
	result, ok := analyzeBollingerBands(101, []float64{110}, []float64{100})
	require.True(t, ok)
	assert.Equal(t, model.SignalBuy, result.Signal)
	assert.InDelta(t, 0.1, result.Value, 1e-9)

	result, _ = analyzeBollingerBands(109, []float64{110}, []float64{100})
	assert.Equal(t, model.SignalSell, result.Signal)

	result, _ = analyzeBollingerBands(105, []float64{110}, []float64{100})
	assert.Equal(t, model.SignalNeutral, result.Signal)
}

func TestAnalyzeBollingerBands_CollapsedBandsAreNeutral(t *testing.T) {
	result, ok := analyzeBollingerBands(100, []float64{100}, []float64{100})
	require.True(t, ok)

	assert.Equal(t, model.SignalNeutral, result.Signal)
	assert.InDelta(t, 0.5, result.Value, 1e-9)
}

func TestAnalyzeMACD_Crossovers(t *testing.T) {
	result, ok := analyzeMACD([]float64{1}, []float64{0.5}, []float64{-0.2, 0.3})
	require.True(t, ok)
	assert.Equal(t, model.SignalBuy, result.Signal)
	assert.InDelta(t, 75.0, result.Confidence, 1e-9)

	result, _ = analyzeMACD([]float64{-1}, []float64{-0.5}, []float64{0.2, -0.3})
	assert.Equal(t, model.SignalSell, result.Signal)
	assert.InDelta(t, 75.0, result.Confidence, 1e-9)

	result, _ = analyzeMACD([]float64{1}, []float64{0.5}, []float64{0.2, 0.3})
	assert.Equal(t, model.SignalBuy, result.Signal)
	assert.InDelta(t, 60.0, result.Confidence, 1e-9)
}

func TestAnalyze_FlatSeriesIsNeutral(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100
	}

	analysis := NewIndicatorService().Analyze(barsFromCloses(closes))

	// RSI is undefined on a flat series and must be absent, not neutral.
	_, hasRSI := analysis.Signals[model.FamilyRSI]
	assert.False(t, hasRSI)
	_, hasRSIValue := analysis.Indicators[model.IndicatorRSI]
	assert.False(t, hasRSIValue)

	macd := analysis.Signals[model.FamilyMACD]
	assert.Equal(t, model.SignalNeutral, macd.Signal)

	bb := analysis.Signals[model.FamilyBollingerBands]
	assert.Equal(t, model.SignalNeutral, bb.Signal)
	assert.InDelta(t, 0.5, bb.Value, 1e-9)

	ma := analysis.Signals[model.FamilyMovingAverages]
	assert.Equal(t, model.SignalNeutral, ma.Signal)
}

func TestAnalyze_ShortHistoryOmitsFamilies(t *testing.T) {
	analysis := NewIndicatorService().Analyze(barsFromCloses([]float64{100, 101, 102, 103, 104}))

	assert.Empty(t, analysis.Signals)
	_, hasSMA200 := analysis.Indicators[model.IndicatorSMA200]
	assert.False(t, hasSMA200)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	analysis := NewIndicatorService().Analyze(nil)

	assert.Empty(t, analysis.Indicators)
	assert.Empty(t, analysis.Signals)
}
