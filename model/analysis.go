package model

import "time"

// Indicator snapshot keys. A key is absent when the series had insufficient data.
const (
	IndicatorRSI           = "rsi"
	IndicatorMACD          = "macd"
	IndicatorMACDSignal    = "macd_signal"
	IndicatorMACDHistogram = "macd_histogram"
	IndicatorBBUpper       = "bb_upper"
	IndicatorBBMiddle      = "bb_middle"
	IndicatorBBLower       = "bb_lower"
	IndicatorSMA50         = "sma_50"
	IndicatorSMA200        = "sma_200"
	IndicatorEMA20         = "ema_20"
	IndicatorATR           = "atr"
	IndicatorStochasticK   = "stochastic_k"
	IndicatorStochasticD   = "stochastic_d"
)

// Signal family names, in fixed evaluation order.
const (
	FamilyRSI            = "rsi"
	FamilyMACD           = "macd"
	FamilyBollingerBands = "bollinger_bands"
	FamilyMovingAverages = "moving_averages"
)

// SignalFamilies is the deterministic iteration order for fused signals.
var SignalFamilies = []string{FamilyRSI, FamilyMACD, FamilyBollingerBands, FamilyMovingAverages}

// IndicatorSnapshot maps indicator names to their most recent value.
type IndicatorSnapshot map[string]float64

// SignalResult is an indicator family reduced to one trading signal.
// Created fresh on every evaluation, never cached.
type SignalResult struct {
	Signal      Signal  `json:"signal"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// TechnicalAnalysis bundles the indicator snapshot with the per-family signals.
// Families with insufficient history are omitted from Signals entirely so they
// do not dilute fused confidence with phantom neutral votes.
type TechnicalAnalysis struct {
	Indicators IndicatorSnapshot       `json:"indicators"`
	Signals    map[string]SignalResult `json:"signals"`
}

// SentimentResult is the keyword-scored news sentiment for one instrument.
type SentimentResult struct {
	Score        float64           `json:"score"`
	Category     SentimentCategory `json:"category"`
	Confidence   float64           `json:"confidence"`
	Summary      string            `json:"summary"`
	ArticleCount int               `json:"article_count"`
}

// AIAnalysis is the advisory adapter output. It is always well formed:
// every failure mode resolves to the HOLD fallback with Success false.
type AIAnalysis struct {
	Success        bool        `json:"success" mapstructure:"-"`
	Recommendation string      `json:"recommendation" mapstructure:"recommendation"`
	Confidence     float64     `json:"confidence" mapstructure:"confidence"`
	TargetPrice    float64     `json:"target_price" mapstructure:"target_price"`
	StopLoss       float64     `json:"stop_loss" mapstructure:"stop_loss"`
	TimeHorizon    TimeHorizon `json:"time_horizon" mapstructure:"time_horizon"`
	KeyPoints      []string    `json:"key_points" mapstructure:"key_points"`
	Risks          []string    `json:"risks" mapstructure:"risks"`
	Opportunities  []string    `json:"opportunities" mapstructure:"opportunities"`
	Analysis       string      `json:"analysis" mapstructure:"analysis"`
}

// Recommendation is the fused per-instrument result. Immutable once built.
type Recommendation struct {
	Symbol         string               `json:"symbol" bson:"symbol"`
	Exchange       string               `json:"exchange" bson:"exchange"`
	Action         RecommendationAction `json:"action" bson:"action"`
	Confidence     float64              `json:"confidence" bson:"confidence"`
	CurrentPrice   float64              `json:"current_price" bson:"currentPrice"`
	TargetPrice    float64              `json:"target_price" bson:"targetPrice"`
	StopLoss       float64              `json:"stop_loss" bson:"stopLoss"`
	TimeHorizon    TimeHorizon          `json:"time_horizon" bson:"timeHorizon"`
	Reasoning      string               `json:"reasoning" bson:"reasoning"`
	TechnicalScore float64              `json:"technical_score" bson:"technicalScore"`
	SentimentScore float64              `json:"sentiment_score" bson:"sentimentScore"`
	AIScore        float64              `json:"ai_score" bson:"aiScore"`
	KeyPoints      []string             `json:"key_points" bson:"keyPoints"`
	Risks          []string             `json:"risks" bson:"risks"`
	Opportunities  []string             `json:"opportunities" bson:"opportunities"`
	CreatedAt      time.Time            `json:"created_at" bson:"createdAt"`
}
