package calculator

import "math"

// RSI computes the Relative Strength Index using simple rolling means of
// gains and losses: rsi = 100 - 100/(1+avg_gain/avg_loss).
// Needs period+1 values for the first point, so len(out) == len(values)-period,
// or nil when there is not enough data.
//
// A window with zero average loss but positive gains pins RSI at 100; a flat
// window (no gains, no losses) has no defined RSI and yields NaN, which the
// signal layer treats as absent.
func RSI(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period+1 {
		return nil
	}

	gains := make([]float64, len(values)-1)
	losses := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	avgGains := SMA(gains, period)
	avgLosses := SMA(losses, period)

	out := make([]float64, len(avgGains))
	for i := range avgGains {
		switch {
		case avgLosses[i] > 0:
			rs := avgGains[i] / avgLosses[i]
			out[i] = 100 - 100/(1+rs)
		case avgGains[i] > 0:
			out[i] = 100
		default:
			out[i] = math.NaN()
		}
	}
	return out
}
