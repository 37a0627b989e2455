package service

import (
	"fmt"

	"backend/calculator"
	"backend/model"
)

// Indicator windows. These mirror the common defaults used on every charting
// platform; the analysis thresholds below are tied to them.
const (
	rsiPeriod        = 14
	macdFast         = 12
	macdSlow         = 26
	macdSignalPeriod = 9
	bbPeriod         = 20
	bbStdDev         = 2.0
	smaShortPeriod   = 50
	smaLongPeriod    = 200
	emaPeriod        = 20
	atrPeriod        = 14
	stochasticK      = 14
	stochasticD      = 3
)

type IndicatorService interface {
	Analyze(bars []model.PriceBar) model.TechnicalAnalysis
}

type IndicatorServiceImpl struct{}

func NewIndicatorService() IndicatorService {
	return &IndicatorServiceImpl{}
}

// Analyze computes every indicator series for the bar history and reduces each
// family (RSI, MACD, Bollinger, moving averages) to one SignalResult. Families
// without enough history are left out of the signal map rather than defaulted
// to neutral, so a thin history never dilutes fused confidence.
func (s *IndicatorServiceImpl) Analyze(bars []model.PriceBar) model.TechnicalAnalysis {
	analysis := model.TechnicalAnalysis{
		Indicators: model.IndicatorSnapshot{},
		Signals:    map[string]model.SignalResult{},
	}
	if len(bars) == 0 {
		return analysis
	}

	closes := model.Closes(bars)

	rsi := calculator.RSI(closes, rsiPeriod)
	macd, macdSignal, histogram := calculator.MACD(closes, macdFast, macdSlow, macdSignalPeriod)
	bbUpper, bbMiddle, bbLower := calculator.BollingerBands(closes, bbPeriod, bbStdDev)
	sma50 := calculator.SMA(closes, smaShortPeriod)
	sma200 := calculator.SMA(closes, smaLongPeriod)
	ema20 := calculator.EMA(closes, emaPeriod)
	atr := calculator.ATR(bars, atrPeriod)
	stochK, stochD := calculator.Stochastic(bars, stochasticK, stochasticD)

	snapshot := analysis.Indicators
	putLast(snapshot, model.IndicatorRSI, rsi)
	putLast(snapshot, model.IndicatorMACD, macd)
	putLast(snapshot, model.IndicatorMACDSignal, macdSignal)
	putLast(snapshot, model.IndicatorMACDHistogram, histogram)
	putLast(snapshot, model.IndicatorBBUpper, bbUpper)
	putLast(snapshot, model.IndicatorBBMiddle, bbMiddle)
	putLast(snapshot, model.IndicatorBBLower, bbLower)
	putLast(snapshot, model.IndicatorSMA50, sma50)
	putLast(snapshot, model.IndicatorSMA200, sma200)
	putLast(snapshot, model.IndicatorEMA20, ema20)
	putLast(snapshot, model.IndicatorATR, atr)
	putLast(snapshot, model.IndicatorStochasticK, stochK)
	putLast(snapshot, model.IndicatorStochasticD, stochD)

	currentPrice := closes[len(closes)-1]

	if result, ok := analyzeRSI(rsi); ok {
		analysis.Signals[model.FamilyRSI] = result
	}
	// The MACD crossover needs the full slow+signal warmup before its
	// histogram flip carries meaning.
	if len(closes) >= macdSlow+macdSignalPeriod {
		if result, ok := analyzeMACD(macd, macdSignal, histogram); ok {
			analysis.Signals[model.FamilyMACD] = result
		}
	}
	if result, ok := analyzeBollingerBands(currentPrice, bbUpper, bbLower); ok {
		analysis.Signals[model.FamilyBollingerBands] = result
	}
	if result, ok := analyzeMovingAverages(currentPrice, sma50, sma200); ok {
		analysis.Signals[model.FamilyMovingAverages] = result
	}

	return analysis
}

func putLast(snapshot model.IndicatorSnapshot, name string, series []float64) {
	if v, ok := calculator.Last(series); ok {
		snapshot[name] = v
	}
}

func analyzeRSI(rsi []float64) (model.SignalResult, bool) {
	current, ok := calculator.Last(rsi)
	if !ok {
		return model.SignalResult{}, false
	}

	switch {
	case current < 30:
		signal := model.SignalBuy
		if current < 20 {
			signal = model.SignalStrongBuy
		}
		return model.SignalResult{
			Signal:      signal,
			Value:       current,
			Description: fmt.Sprintf("RSI at %.2f - Oversold territory", current),
			Confidence:  clampConfidence((30 - current) * 3),
		}, true
	case current > 70:
		signal := model.SignalSell
		if current > 80 {
			signal = model.SignalStrongSell
		}
		return model.SignalResult{
			Signal:      signal,
			Value:       current,
			Description: fmt.Sprintf("RSI at %.2f - Overbought territory", current),
			Confidence:  clampConfidence((current - 70) * 3),
		}, true
	default:
		return model.SignalResult{
			Signal:      model.SignalNeutral,
			Value:       current,
			Description: fmt.Sprintf("RSI at %.2f - Neutral range", current),
			Confidence:  50,
		}, true
	}
}

func analyzeMACD(macd, signalLine, histogram []float64) (model.SignalResult, bool) {
	currentMACD, ok := calculator.Last(macd)
	if !ok {
		return model.SignalResult{}, false
	}
	currentSignal, ok := calculator.Last(signalLine)
	if !ok {
		return model.SignalResult{}, false
	}
	prevHist, currentHist, ok := calculator.LastTwo(histogram)
	if !ok {
		return model.SignalResult{}, false
	}

	switch {
	case prevHist < 0 && currentHist > 0:
		return model.SignalResult{
			Signal:      model.SignalBuy,
			Value:       currentHist,
			Description: "MACD bullish crossover detected",
			Confidence:  75,
		}, true
	case prevHist > 0 && currentHist < 0:
		return model.SignalResult{
			Signal:      model.SignalSell,
			Value:       currentHist,
			Description: "MACD bearish crossover detected",
			Confidence:  75,
		}, true
	case currentHist > 0 && currentMACD > currentSignal:
		return model.SignalResult{
			Signal:      model.SignalBuy,
			Value:       currentHist,
			Description: "MACD shows bullish momentum",
			Confidence:  60,
		}, true
	case currentHist < 0 && currentMACD < currentSignal:
		return model.SignalResult{
			Signal:      model.SignalSell,
			Value:       currentHist,
			Description: "MACD shows bearish momentum",
			Confidence:  60,
		}, true
	default:
		return model.SignalResult{
			Signal:      model.SignalNeutral,
			Value:       currentHist,
			Description: "MACD neutral",
			Confidence:  50,
		}, true
	}
}

func analyzeBollingerBands(currentPrice float64, upper, lower []float64) (model.SignalResult, bool) {
	currentUpper, ok := calculator.Last(upper)
	if !ok {
		return model.SignalResult{}, false
	}
	currentLower, ok := calculator.Last(lower)
	if !ok {
		return model.SignalResult{}, false
	}

	// Collapsed bands (flat price window) put the price mid-band by definition.
	position := 0.5
	if width := currentUpper - currentLower; width > 0 {
		position = (currentPrice - currentLower) / width
	}

	switch {
	case position < 0.2:
		return model.SignalResult{
			Signal:      model.SignalBuy,
			Value:       position,
			Description: fmt.Sprintf("Price near lower Bollinger Band (%.1f%% position)", position*100),
			Confidence:  70,
		}, true
	case position > 0.8:
		return model.SignalResult{
			Signal:      model.SignalSell,
			Value:       position,
			Description: fmt.Sprintf("Price near upper Bollinger Band (%.1f%% position)", position*100),
			Confidence:  70,
		}, true
	default:
		return model.SignalResult{
			Signal:      model.SignalNeutral,
			Value:       position,
			Description: fmt.Sprintf("Price in middle range (%.1f%% position)", position*100),
			Confidence:  50,
		}, true
	}
}

func analyzeMovingAverages(currentPrice float64, sma50, sma200 []float64) (model.SignalResult, bool) {
	prevSMA50, currentSMA50, ok := calculator.LastTwo(sma50)
	if !ok {
		return model.SignalResult{}, false
	}
	prevSMA200, currentSMA200, ok := calculator.LastTwo(sma200)
	if !ok {
		return model.SignalResult{}, false
	}

	switch {
	case prevSMA50 < prevSMA200 && currentSMA50 > currentSMA200:
		return model.SignalResult{
			Signal:      model.SignalStrongBuy,
			Value:       currentSMA50 - currentSMA200,
			Description: "Golden Cross detected - Strong bullish signal",
			Confidence:  85,
		}, true
	case prevSMA50 > prevSMA200 && currentSMA50 < currentSMA200:
		return model.SignalResult{
			Signal:      model.SignalStrongSell,
			Value:       currentSMA50 - currentSMA200,
			Description: "Death Cross detected - Strong bearish signal",
			Confidence:  85,
		}, true
	case currentPrice > currentSMA50 && currentSMA50 > currentSMA200:
		return model.SignalResult{
			Signal:      model.SignalBuy,
			Value:       currentPrice - currentSMA50,
			Description: "Price above both moving averages - Bullish trend",
			Confidence:  70,
		}, true
	case currentPrice < currentSMA50 && currentSMA50 < currentSMA200:
		return model.SignalResult{
			Signal:      model.SignalSell,
			Value:       currentPrice - currentSMA50,
			Description: "Price below both moving averages - Bearish trend",
			Confidence:  70,
		}, true
	default:
		return model.SignalResult{
			Signal:      model.SignalNeutral,
			Value:       0,
			Description: "Mixed moving average signals",
			Confidence:  50,
		}, true
	}
}

func clampConfidence(confidence float64) float64 {
	if confidence > 100 {
		return 100
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}
