package service

import (
	"testing"

	"backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicalConsensus(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI:            {Signal: model.SignalStrongBuy, Confidence: 80},
			model.FamilyMovingAverages: {Signal: model.SignalSell, Confidence: 60},
		},
	}

	score, avgConfidence, ok := technicalConsensus(technical)
	require.True(t, ok)

	// (1.0*0.8 + (-0.5)*0.6) / 2
	assert.InDelta(t, 0.25, score, 1e-9)
	assert.InDelta(t, 70.0, avgConfidence, 1e-9)
}

func TestTechnicalConsensus_NoSignals(t *testing.T) {
	_, _, ok := technicalConsensus(model.TechnicalAnalysis{Signals: map[string]model.SignalResult{}})
	assert.False(t, ok)
}

func TestFuse_WeightedCombination(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI: {Signal: model.SignalStrongBuy, Confidence: 80, Description: "RSI oversold"},
		},
	}
	sentiment := model.SentimentResult{Score: 0.5, Confidence: 70, Summary: "Positive sentiment"}
	ai := model.AIAnalysis{
		Success:        true,
		Recommendation: "BUY",
		Confidence:     80,
		TimeHorizon:    model.HorizonShort,
		Analysis:       "Upside likely.",
	}

	rec := fuse("INFY", "NSE", 100, technical, sentiment, ai)

	// 0.4*0.8 + 0.2*0.5 + 0.4*0.5 = 0.62 -> strong buy tier. The advisor
	// score is the label weight alone, unscaled by its confidence.
	assert.Equal(t, model.ActionStrongBuy, rec.Action)
	assert.InDelta(t, 0.8, rec.TechnicalScore, 1e-9)
	assert.InDelta(t, 0.5, rec.SentimentScore, 1e-9)
	assert.InDelta(t, 0.5, rec.AIScore, 1e-9)
	// mean(80, 70, 80)
	assert.InDelta(t, 76.67, rec.Confidence, 0.01)
	assert.Equal(t, model.HorizonShort, rec.TimeHorizon)
	assert.InDelta(t, 115.0, rec.TargetPrice, 1e-9)
	assert.InDelta(t, 95.0, rec.StopLoss, 1e-9)
}

func TestFuse_AdvisorScoreIgnoresAdvisorConfidence(t *testing.T) {
	technical := model.TechnicalAnalysis{Signals: map[string]model.SignalResult{}}
	sentiment := model.SentimentResult{}
	ai := model.AIAnalysis{Success: true, Recommendation: "BUY", Confidence: 10}

	rec := fuse("INFY", "NSE", 100, technical, sentiment, ai)

	assert.InDelta(t, 0.5, rec.AIScore, 1e-9)
	// Low advisor confidence lowers fused confidence, not the vote itself.
	assert.InDelta(t, 10.0, rec.Confidence, 1e-9)
	assert.Equal(t, model.ActionBuy, rec.Action)
}

func TestFuse_StrongConsensusIsStrongBuy(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI:            {Signal: model.SignalStrongBuy, Confidence: 100},
			model.FamilyMovingAverages: {Signal: model.SignalStrongBuy, Confidence: 100},
		},
	}
	sentiment := model.SentimentResult{Score: 1, Confidence: 100}
	ai := model.AIAnalysis{Success: true, Recommendation: "STRONG_BUY", Confidence: 100}

	rec := fuse("TCS", "NSE", 100, technical, sentiment, ai)

	assert.Equal(t, model.ActionStrongBuy, rec.Action)
	assert.InDelta(t, 100.0, rec.Confidence, 1e-9)
}

func TestFuse_SellTierTargets(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI: {Signal: model.SignalStrongSell, Confidence: 100},
		},
	}
	sentiment := model.SentimentResult{Score: -1, Confidence: 100}
	ai := model.AIAnalysis{Success: true, Recommendation: "STRONG_SELL", Confidence: 100}

	rec := fuse("WIPRO", "NSE", 100, technical, sentiment, ai)

	assert.Equal(t, model.ActionStrongSell, rec.Action)
	assert.InDelta(t, 85.0, rec.TargetPrice, 1e-9)
	assert.InDelta(t, 105.0, rec.StopLoss, 1e-9)
}

func TestFuse_AdvisorFallbackStillYieldsRecommendation(t *testing.T) {
	// No market data at all, advisor timed out: the fallback opinion is the
	// only input and the result must still be well formed.
	technical := model.TechnicalAnalysis{Signals: map[string]model.SignalResult{}}
	sentiment := model.SentimentResult{Score: 0, Confidence: 0, Summary: "No news articles available"}
	ai := fallbackAnalysis("AI analysis unavailable")

	rec := fuse("INFY", "NSE", 0, technical, sentiment, ai)

	assert.Equal(t, model.ActionHold, rec.Action)
	assert.InDelta(t, 50.0, rec.Confidence, 1e-9)
	assert.Zero(t, rec.TechnicalScore)
	assert.Zero(t, rec.AIScore)
	assert.NotEmpty(t, rec.Reasoning)
	assert.Equal(t, []string{"Market volatility", "Sector-specific risks"}, rec.Risks)
}

func TestFuse_AdvisorSuppliedLevelsWin(t *testing.T) {
	ai := model.AIAnalysis{
		Success:        true,
		Recommendation: "BUY",
		Confidence:     80,
		TargetPrice:    140,
		StopLoss:       90,
	}

	rec := fuse("INFY", "NSE", 100, model.TechnicalAnalysis{}, model.SentimentResult{}, ai)

	assert.InDelta(t, 140.0, rec.TargetPrice, 1e-9)
	assert.InDelta(t, 90.0, rec.StopLoss, 1e-9)
}

func TestBuildReasoning_PipeJoined(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI:  {Description: "RSI oversold"},
			model.FamilyMACD: {Description: "MACD bullish crossover detected"},
		},
	}
	sentiment := model.SentimentResult{Summary: "Positive sentiment"}
	ai := model.AIAnalysis{Analysis: "Looks cheap."}

	reasoning := buildReasoning(technical, sentiment, ai)

	assert.Equal(t, "Looks cheap. | Technical analysis shows: RSI oversold; MACD bullish crossover detected | Market sentiment: Positive sentiment", reasoning)
}

func TestSynthesizeKeyPoints_SkipsNeutralAndCaps(t *testing.T) {
	technical := model.TechnicalAnalysis{
		Signals: map[string]model.SignalResult{
			model.FamilyRSI:            {Signal: model.SignalBuy, Description: "RSI oversold"},
			model.FamilyMACD:           {Signal: model.SignalNeutral, Description: "MACD neutral"},
			model.FamilyBollingerBands: {Signal: model.SignalSell, Description: "Near upper band"},
		},
	}

	points := synthesizeKeyPoints(technical)

	assert.Equal(t, []string{"RSI oversold", "Near upper band"}, points)
}
