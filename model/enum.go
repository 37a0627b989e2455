package model

import "strings"

// Signal is the per-indicator trading signal.
type Signal string

const (
	SignalStrongBuy  Signal = "strong_buy"
	SignalBuy        Signal = "buy"
	SignalNeutral    Signal = "neutral"
	SignalSell       Signal = "sell"
	SignalStrongSell Signal = "strong_sell"
)

// Weight maps a signal to its score contribution on the [-1, 1] scale.
// Unrecognized signals weigh nothing.
func (s Signal) Weight() float64 {
	switch s {
	case SignalStrongBuy:
		return 1.0
	case SignalBuy:
		return 0.5
	case SignalSell:
		return -0.5
	case SignalStrongSell:
		return -1.0
	default:
		return 0.0
	}
}

// RecommendationAction is the fused per-instrument recommendation.
type RecommendationAction string

const (
	ActionStrongBuy  RecommendationAction = "strong_buy"
	ActionBuy        RecommendationAction = "buy"
	ActionHold       RecommendationAction = "hold"
	ActionSell       RecommendationAction = "sell"
	ActionStrongSell RecommendationAction = "strong_sell"
)

// ActionFromScore converts a combined score to a recommendation action.
func ActionFromScore(score float64) RecommendationAction {
	switch {
	case score >= 0.6:
		return ActionStrongBuy
	case score >= 0.2:
		return ActionBuy
	case score <= -0.6:
		return ActionStrongSell
	case score <= -0.2:
		return ActionSell
	default:
		return ActionHold
	}
}

// IsBuy reports whether the action is in the buy tier.
func (a RecommendationAction) IsBuy() bool {
	return a == ActionStrongBuy || a == ActionBuy
}

// IsSell reports whether the action is in the sell tier.
func (a RecommendationAction) IsSell() bool {
	return a == ActionStrongSell || a == ActionSell
}

// AdvisorWeight maps a free-form advisor label (BUY, hold, Strong_Sell...) to a score.
func AdvisorWeight(recommendation string) float64 {
	switch strings.ToUpper(strings.TrimSpace(recommendation)) {
	case "STRONG_BUY":
		return 1.0
	case "BUY":
		return 0.5
	case "SELL":
		return -0.5
	case "STRONG_SELL":
		return -1.0
	default:
		return 0.0
	}
}

// SentimentCategory buckets a sentiment score.
type SentimentCategory string

const (
	SentimentVeryPositive SentimentCategory = "very_positive"
	SentimentPositive     SentimentCategory = "positive"
	SentimentNeutral      SentimentCategory = "neutral"
	SentimentNegative     SentimentCategory = "negative"
	SentimentVeryNegative SentimentCategory = "very_negative"
)

// CategorizeSentiment buckets a score in [-1, 1].
func CategorizeSentiment(score float64) SentimentCategory {
	switch {
	case score >= 0.5:
		return SentimentVeryPositive
	case score >= 0.15:
		return SentimentPositive
	case score <= -0.5:
		return SentimentVeryNegative
	case score <= -0.15:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// RiskLevel is the overall portfolio risk bucket.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// TimeHorizon is the suggested holding period for a recommendation.
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "short"
	HorizonMedium TimeHorizon = "medium"
	HorizonLong   TimeHorizon = "long"
)

// ParseTimeHorizon normalizes an advisor-supplied horizon, defaulting to medium.
func ParseTimeHorizon(raw string) TimeHorizon {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "short":
		return HorizonShort
	case "long":
		return HorizonLong
	default:
		return HorizonMedium
	}
}

// BrokerType identifies a holdings provider.
type BrokerType string

const (
	BrokerTrading212 BrokerType = "trading212"
	BrokerCombined   BrokerType = "combined"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)
