package calculator

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

func flatSeries(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	out := SMA(values, 3)
	require.Len(t, out, 3)
	assert.InDelta(t, 2.0, out[0], 1e-9)
	assert.InDelta(t, 3.0, out[1], 1e-9)
	assert.InDelta(t, 4.0, out[2], 1e-9)
}

func TestSMA_InsufficientData(t *testing.T) {
	assert.Nil(t, SMA([]float64{1, 2}, 3))
	assert.Nil(t, SMA(nil, 3))
	assert.Nil(t, SMA([]float64{1, 2, 3}, 0))
}

func TestSMA_NaNWindowIsolated(t *testing.T) {
	values := []float64{1, math.NaN(), 3, 4, 5, 6}

	out := SMA(values, 2)
	require.Len(t, out, 5)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 3.5, out[2], 1e-9)
	assert.InDelta(t, 5.5, out[4], 1e-9)
}

func TestEMA_SeededWithFirstValue(t *testing.T) {
	values := []float64{10, 20, 30}

	out := EMA(values, 3)
	require.Len(t, out, 3)
	assert.InDelta(t, 10.0, out[0], 1e-9)
	// alpha = 0.5: 0.5*20 + 0.5*10 = 15, then 0.5*30 + 0.5*15 = 22.5
	assert.InDelta(t, 15.0, out[1], 1e-9)
	assert.InDelta(t, 22.5, out[2], 1e-9)
}

func TestRollingStd_SampleDenominator(t *testing.T) {
	out := RollingStd([]float64{2, 4, 6}, 3)
	require.Len(t, out, 1)
	assert.InDelta(t, 2.0, out[0], 1e-9)
}

func TestRSI_Bounds(t *testing.T) {
	closes := []float64{44, 44.5, 43.8, 44.2, 44.9, 45.3, 45.0, 45.6, 46.1, 45.8,
		46.3, 46.8, 46.5, 47.0, 47.4, 47.1, 47.8, 48.2, 47.9, 48.5}

	out := RSI(closes, 14)
	require.Len(t, out, len(closes)-14)
	for _, v := range out {
		require.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestRSI_AllGainsPinsAt100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	out := RSI(closes, 14)
	require.NotEmpty(t, out)
	assert.InDelta(t, 100.0, out[len(out)-1], 1e-9)
}

func TestRSI_FlatSeriesUndefined(t *testing.T) {
	out := RSI(flatSeries(30, 50), 14)
	require.NotEmpty(t, out)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	assert.Nil(t, RSI(flatSeries(14, 50), 14))
}

func TestMACD_FlatSeriesZeroHistogram(t *testing.T) {
	macd, signal, hist := MACD(flatSeries(60, 250), 12, 26, 9)
	require.Len(t, macd, 60)
	require.Len(t, signal, 60)
	require.Len(t, hist, 60)
	assert.InDelta(t, 0.0, macd[59], 1e-9)
	assert.InDelta(t, 0.0, hist[59], 1e-9)
}

func TestMACD_EmptyInput(t *testing.T) {
	macd, signal, hist := MACD(nil, 12, 26, 9)
	assert.Nil(t, macd)
	assert.Nil(t, signal)
	assert.Nil(t, hist)
}

func TestBollingerBands(t *testing.T) {
	closes := []float64{20, 21, 22, 21, 20, 21, 22, 23, 22, 21,
		20, 21, 22, 23, 24, 23, 22, 21, 20, 21}

	upper, middle, lower := BollingerBands(closes, 20, 2)
	require.Len(t, upper, 1)
	require.Len(t, middle, 1)
	require.Len(t, lower, 1)
	assert.Greater(t, upper[0], middle[0])
	assert.Less(t, lower[0], middle[0])
}

func TestBollingerBands_FlatSeriesCollapses(t *testing.T) {
	upper, middle, lower := BollingerBands(flatSeries(25, 100), 20, 2)
	require.NotEmpty(t, middle)
	assert.InDelta(t, 100.0, upper[len(upper)-1], 1e-9)
	assert.InDelta(t, 100.0, middle[len(middle)-1], 1e-9)
	assert.InDelta(t, 100.0, lower[len(lower)-1], 1e-9)
}

func TestATR(t *testing.T) {
	bars := barsFromCloses([]float64{100, 101, 102, 101, 100, 99, 100, 101, 102, 103,
		104, 103, 102, 101, 100, 101})

	out := ATR(bars, 14)
	require.Len(t, out, len(bars)-14)
	for _, v := range out {
		assert.Greater(t, v, 0.0)
	}
}

func TestATR_InsufficientData(t *testing.T) {
	assert.Nil(t, ATR(barsFromCloses([]float64{100, 101}), 14))
}

func TestStochastic(t *testing.T) {
	bars := barsFromCloses([]float64{100, 102, 104, 103, 105, 107, 106, 108, 110, 109,
		111, 112, 110, 113, 114, 115})

	k, d := Stochastic(bars, 14, 3)
	require.Len(t, k, 3)
	require.Len(t, d, 1)
	for _, v := range k {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestStochastic_InsufficientData(t *testing.T) {
	k, d := Stochastic(barsFromCloses([]float64{100, 101}), 14, 3)
	assert.Nil(t, k)
	assert.Nil(t, d)
}

func TestLastHelpers(t *testing.T) {
	_, ok := Last(nil)
	assert.False(t, ok)

	v, ok := Last([]float64{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = Last([]float64{1, math.NaN()})
	assert.False(t, ok)

	prev, curr, ok := LastTwo([]float64{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 2.0, prev)
	assert.Equal(t, 3.0, curr)

	_, _, ok = LastTwo([]float64{1})
	assert.False(t, ok)
}
