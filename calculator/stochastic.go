package calculator

import (
	"math"

	"backend/model"
)

// Stochastic computes the %K oscillator over kPeriod bars and its %D smoothing
// (SMA of %K over dPeriod). A window where the high equals the low has no
// defined %K and yields NaN.
func Stochastic(bars []model.PriceBar, kPeriod, dPeriod int) (k, d []float64) {
	if kPeriod <= 0 || len(bars) < kPeriod {
		return nil, nil
	}

	k = make([]float64, 0, len(bars)-kPeriod+1)
	for i := kPeriod - 1; i < len(bars); i++ {
		lowest := math.Inf(1)
		highest := math.Inf(-1)
		for j := i - kPeriod + 1; j <= i; j++ {
			lowest = math.Min(lowest, bars[j].Low)
			highest = math.Max(highest, bars[j].High)
		}

		span := highest - lowest
		if span == 0 {
			k = append(k, math.NaN())
			continue
		}
		k = append(k, 100*(bars[i].Close-lowest)/span)
	}

	return k, SMA(k, dPeriod)
}
