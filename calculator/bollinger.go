package calculator

// BollingerBands computes the middle band (SMA) and the upper/lower bands at
// stdDev rolling standard deviations around it. All three series share the
// rolling-window length len(values)-period+1; nil when data is insufficient.
func BollingerBands(values []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	middle = SMA(values, period)
	std := RollingStd(values, period)
	if middle == nil || std == nil {
		return nil, nil, nil
	}

	upper = make([]float64, len(middle))
	lower = make([]float64, len(middle))
	for i := range middle {
		upper[i] = middle[i] + std[i]*stdDev
		lower[i] = middle[i] - std[i]*stdDev
	}
	return upper, middle, lower
}
