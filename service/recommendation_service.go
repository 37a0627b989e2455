package service

import (
	"backend/model"
	"backend/repository"
	"backend/util"
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	technicalWeight = 0.4
	sentimentWeight = 0.2
	advisorWeight   = 0.4

	buyTargetMultiplier  = 1.15
	buyStopMultiplier    = 0.95
	sellTargetMultiplier = 0.85
	sellStopMultiplier   = 1.05

	maxKeyPoints      = 5
	maxReasoningLines = 3
)

type RecommendationService interface {
	AnalyzeStock(ctx context.Context, request model.AnalyzeStockRequest) (model.Recommendation, error)
	GetHistory(ctx context.Context, symbol string, limit int64) ([]model.Recommendation, error)
}

type RecommendationServiceImpl struct {
	marketData MarketDataService
	indicators IndicatorService
	sentiment  SentimentService
	advisor    AdvisorService
	recRepo    *repository.RecommendationRepository
}

func NewRecommendationService(
	marketData MarketDataService,
	indicators IndicatorService,
	sentiment SentimentService,
	advisor AdvisorService,
	recRepo *repository.RecommendationRepository,
) RecommendationService {
	return &RecommendationServiceImpl{
		marketData: marketData,
		indicators: indicators,
		sentiment:  sentiment,
		advisor:    advisor,
		recRepo:    recRepo,
	}
}

// AnalyzeStock runs the full pipeline for one symbol: fetch market data,
// evaluate indicators and sentiment, consult the advisor, then fuse the
// three opinions into a single recommendation. Upstream outages degrade
// the inputs rather than failing the call, so the worst case is a HOLD
// with zero confidence.
func (s *RecommendationServiceImpl) AnalyzeStock(ctx context.Context, request model.AnalyzeStockRequest) (model.Recommendation, error) {
	symbol := strings.ToUpper(strings.TrimSpace(request.Symbol))
	timeRange := request.Range
	if timeRange == "" {
		timeRange = model.Range1y
	}

	bundle := s.marketData.FetchAll(ctx, symbol, request.Exchange, timeRange)
	if !bundle.Info.Available {
		log.Warn().Str("symbol", symbol).Msg("Analyzing without a live quote")
	}

	technical := s.indicators.Analyze(bundle.Bars)
	sentiment := s.sentiment.AnalyzeHeadlines(bundle.News)
	ai := s.advisor.AnalyzeStock(ctx, AdvisorInput{
		Symbol:           symbol,
		Exchange:         request.Exchange,
		MarketInfo:       bundle.Info.MarketInfo,
		Technical:        technical,
		Sentiment:        sentiment,
		PortfolioContext: request.PortfolioContext,
	})

	rec := fuse(symbol, request.Exchange, bundle.Info.MarketInfo.CurrentPrice, technical, sentiment, ai)

	if s.recRepo != nil {
		saved := rec
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.recRepo.Save(ctx, saved); err != nil {
				log.Error().Err(err).Str("symbol", saved.Symbol).Msg("Failed to persist recommendation")
			}
		}()
	}

	return rec, nil
}

func (s *RecommendationServiceImpl) GetHistory(ctx context.Context, symbol string, limit int64) ([]model.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.recRepo.FindRecentBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)), limit)
}

// fuse combines the technical, sentiment and advisor opinions on a fixed
// 0.4 / 0.2 / 0.4 weighting. Indicator families without enough history are
// simply absent and cast no vote.
func fuse(symbol, exchange string, currentPrice float64, technical model.TechnicalAnalysis, sentiment model.SentimentResult, ai model.AIAnalysis) model.Recommendation {
	technicalScore, avgTechConfidence, haveSignals := technicalConsensus(technical)
	// The advisor's vote is the bare label weight; its confidence enters the
	// fused confidence average only.
	aiScore := model.AdvisorWeight(ai.Recommendation)

	combined := technicalWeight*technicalScore + sentimentWeight*sentiment.Score + advisorWeight*aiScore
	action := model.ActionFromScore(combined)

	var confidences []float64
	if haveSignals {
		confidences = append(confidences, avgTechConfidence)
	}
	if sentiment.Confidence > 0 {
		confidences = append(confidences, sentiment.Confidence)
	}
	if ai.Confidence > 0 {
		confidences = append(confidences, ai.Confidence)
	}
	confidence := 50.0
	if len(confidences) > 0 {
		confidence = mean(confidences)
	}

	targetPrice, stopLoss := priceTargets(action, currentPrice, ai)

	timeHorizon := ai.TimeHorizon
	if timeHorizon == "" {
		timeHorizon = model.HorizonMedium
	}

	risks := ai.Risks
	if len(risks) == 0 {
		risks = []string{"Market volatility", "Sector-specific risks"}
	}
	opportunities := ai.Opportunities
	if len(opportunities) == 0 {
		opportunities = defaultOpportunities(action)
	}

	keyPoints := ai.KeyPoints
	if len(keyPoints) == 0 {
		keyPoints = synthesizeKeyPoints(technical)
	}

	return model.Recommendation{
		Symbol:         symbol,
		Exchange:       exchange,
		Action:         action,
		Confidence:     util.RoundTwo(confidence),
		CurrentPrice:   currentPrice,
		TargetPrice:    util.RoundTwo(targetPrice),
		StopLoss:       util.RoundTwo(stopLoss),
		TimeHorizon:    timeHorizon,
		Reasoning:      buildReasoning(technical, sentiment, ai),
		TechnicalScore: util.RoundTwo(technicalScore),
		SentimentScore: util.RoundTwo(sentiment.Score),
		AIScore:        util.RoundTwo(aiScore),
		KeyPoints:      keyPoints,
		Risks:          risks,
		Opportunities:  opportunities,
		CreatedAt:      time.Now().UTC(),
	}
}

// technicalConsensus averages weight*confidence/100 over the present
// signal families, walking them in the fixed evaluation order.
func technicalConsensus(technical model.TechnicalAnalysis) (score, avgConfidence float64, ok bool) {
	var scoreSum, confSum float64
	var count int

	for _, family := range model.SignalFamilies {
		signal, found := technical.Signals[family]
		if !found {
			continue
		}
		scoreSum += signal.Signal.Weight() * signal.Confidence / 100
		confSum += signal.Confidence
		count++
	}

	if count == 0 {
		return 0, 0, false
	}
	return scoreSum / float64(count), confSum / float64(count), true
}

func buildReasoning(technical model.TechnicalAnalysis, sentiment model.SentimentResult, ai model.AIAnalysis) string {
	var parts []string

	if ai.Analysis != "" {
		parts = append(parts, ai.Analysis)
	}

	var descriptions []string
	for _, family := range model.SignalFamilies {
		if signal, found := technical.Signals[family]; found {
			descriptions = append(descriptions, signal.Description)
		}
		if len(descriptions) == maxReasoningLines {
			break
		}
	}
	if len(descriptions) > 0 {
		parts = append(parts, "Technical analysis shows: "+strings.Join(descriptions, "; "))
	}

	if sentiment.Summary != "" {
		parts = append(parts, "Market sentiment: "+sentiment.Summary)
	}

	return strings.Join(parts, " | ")
}

// priceTargets prefers advisor-supplied levels, then derives from the
// fused action when a live price is known.
func priceTargets(action model.RecommendationAction, currentPrice float64, ai model.AIAnalysis) (target, stop float64) {
	target = ai.TargetPrice
	stop = ai.StopLoss
	if currentPrice <= 0 {
		return target, stop
	}

	if target == 0 {
		switch {
		case action.IsBuy():
			target = currentPrice * buyTargetMultiplier
		case action.IsSell():
			target = currentPrice * sellTargetMultiplier
		default:
			target = currentPrice
		}
	}
	if stop == 0 {
		if action.IsSell() {
			stop = currentPrice * sellStopMultiplier
		} else {
			stop = currentPrice * buyStopMultiplier
		}
	}
	return target, stop
}

// synthesizeKeyPoints falls back on the decisive technical signals when the
// advisor supplied none, capped at five in family order.
func synthesizeKeyPoints(technical model.TechnicalAnalysis) []string {
	points := make([]string, 0, maxKeyPoints)
	for _, family := range model.SignalFamilies {
		if len(points) == maxKeyPoints {
			break
		}
		signal, found := technical.Signals[family]
		if !found || signal.Signal == model.SignalNeutral {
			continue
		}
		points = append(points, signal.Description)
	}
	return points
}

func defaultOpportunities(action model.RecommendationAction) []string {
	switch {
	case action.IsBuy():
		return []string{"Favorable technical setup", "Potential upside from current levels"}
	case action.IsSell():
		return []string{"Opportunity to reduce exposure before further downside"}
	default:
		return []string{}
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
