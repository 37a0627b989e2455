package calculator

import (
	"math"

	"backend/model"
)

// TrueRange computes max(high-low, |high-prevClose|, |low-prevClose|) per bar.
// The first bar has no previous close, so len(out) == len(bars)-1.
func TrueRange(bars []model.PriceBar) []float64 {
	if len(bars) < 2 {
		return nil
	}

	out := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prevClose := bars[i-1].Close
		tr := bars[i].High - bars[i].Low
		tr = math.Max(tr, math.Abs(bars[i].High-prevClose))
		tr = math.Max(tr, math.Abs(bars[i].Low-prevClose))
		out[i-1] = tr
	}
	return out
}

// ATR is the rolling mean of the true range. Needs period+1 bars.
func ATR(bars []model.PriceBar, period int) []float64 {
	return SMA(TrueRange(bars), period)
}
