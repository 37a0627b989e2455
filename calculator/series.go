// Package calculator provides pure technical-indicator math over price-bar
// series. Every function degrades to an empty result when the input is
// shorter than its window; none of them ever return an error for degenerate
// numeric input. Undefined points inside an otherwise valid series are NaN.
package calculator

import "math"

// SMA computes the simple moving average over the given period.
// Returns one value per full window, so len(out) == len(values)-period+1,
// or nil when there is not enough data. A window containing an undefined
// (NaN) point averages to NaN without contaminating later windows.
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		sum, defined := 0.0, true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				defined = false
				break
			}
			sum += values[j]
		}
		if !defined {
			out = append(out, math.NaN())
			continue
		}
		out = append(out, sum/float64(period))
	}
	return out
}

// EMA computes the exponential moving average with smoothing 2/(span+1),
// seeded with the first value. The output has the same length as the input.
func EMA(values []float64, span int) []float64 {
	if span <= 0 || len(values) == 0 {
		return nil
	}

	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RollingStd computes the rolling sample standard deviation (n-1 denominator).
// len(out) == len(values)-period+1, or nil when there is not enough data.
func RollingStd(values []float64, period int) []float64 {
	if period < 2 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)

		sumSq := 0.0
		for _, v := range window {
			d := v - mean
			sumSq += d * d
		}
		out = append(out, math.Sqrt(sumSq/float64(period-1)))
	}
	return out
}

// Last returns the final value of a series and whether it is defined.
func Last(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	v := series[len(series)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// LastTwo returns the final two values of a series and whether both are defined.
func LastTwo(series []float64) (prev, curr float64, ok bool) {
	if len(series) < 2 {
		return 0, 0, false
	}
	prev = series[len(series)-2]
	curr = series[len(series)-1]
	if math.IsNaN(prev) || math.IsNaN(curr) || math.IsInf(prev, 0) || math.IsInf(curr, 0) {
		return 0, 0, false
	}
	return prev, curr, true
}
