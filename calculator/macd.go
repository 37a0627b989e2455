package calculator

// MACD computes the MACD line (fast EMA minus slow EMA), its signal line
// (EMA of the MACD line), and the histogram (MACD minus signal).
// All three series have the same length as the input; nil for empty input.
func MACD(values []float64, fast, slow, signal int) (macd, signalLine, histogram []float64) {
	fastEMA := EMA(values, fast)
	slowEMA := EMA(values, slow)
	if fastEMA == nil || slowEMA == nil {
		return nil, nil, nil
	}

	macd = make([]float64, len(values))
	for i := range values {
		macd[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine = EMA(macd, signal)
	histogram = make([]float64, len(values))
	for i := range values {
		histogram[i] = macd[i] - signalLine[i]
	}
	return macd, signalLine, histogram
}
