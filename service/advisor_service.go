package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"backend/client"
	"backend/model"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

// AdvisorInput bundles everything the text-generation prompt embeds.
type AdvisorInput struct {
	Symbol           string
	Exchange         string
	MarketInfo       model.MarketInfo
	Technical        model.TechnicalAnalysis
	Sentiment        model.SentimentResult
	PortfolioContext *model.PortfolioContext
}

type AdvisorService interface {
	AnalyzeStock(ctx context.Context, input AdvisorInput) model.AIAnalysis
}

type AdvisorServiceImpl struct {
	gemini *client.GeminiClient
}

func NewAdvisorService(gemini *client.GeminiClient) AdvisorService {
	return &AdvisorServiceImpl{gemini: gemini}
}

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// AnalyzeStock asks the text-generation model for a structured opinion.
// It never returns an error: missing credentials, transport failures, non-2xx
// responses, and unparseable bodies all resolve to the deterministic HOLD
// fallback with Success false.
func (s *AdvisorServiceImpl) AnalyzeStock(ctx context.Context, input AdvisorInput) model.AIAnalysis {
	if !s.gemini.IsConfigured() {
		return fallbackAnalysis("LLM advisor not configured")
	}

	raw, err := s.gemini.GenerateContent(ctx, buildPrompt(input))
	if err != nil {
		log.Error().Err(err).Str("symbol", input.Symbol).Msg("advisor call failed")
		return fallbackAnalysis("AI analysis unavailable")
	}

	return parseAdvisorResponse(raw)
}

func buildPrompt(input AdvisorInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an equity research assistant. Analyze %s (%s) and respond with a single JSON object ", input.Symbol, input.Exchange)
	b.WriteString(`containing: recommendation (STRONG_BUY/BUY/HOLD/SELL/STRONG_SELL), confidence (0-100), target_price, stop_loss, time_horizon (short/medium/long), key_points (list), risks (list), opportunities (list), analysis (text).`)
	b.WriteString("\n\nMarket data:\n")
	fmt.Fprintf(&b, "- Name: %s\n- Current price: %.2f\n- Previous close: %.2f\n- Day change: %.2f%%\n- 52w high/low: %.2f / %.2f\n",
		input.MarketInfo.Name, input.MarketInfo.CurrentPrice, input.MarketInfo.PreviousClose,
		input.MarketInfo.DayChangePct, input.MarketInfo.FiftyTwoWeekHigh, input.MarketInfo.FiftyTwoWeekLow)

	if len(input.Technical.Indicators) > 0 {
		b.WriteString("\nTechnical indicators:\n")
		for _, name := range []string{
			model.IndicatorRSI, model.IndicatorMACD, model.IndicatorMACDHistogram,
			model.IndicatorSMA50, model.IndicatorSMA200, model.IndicatorATR,
		} {
			if v, ok := input.Technical.Indicators[name]; ok {
				fmt.Fprintf(&b, "- %s: %.4f\n", name, v)
			}
		}
	}
	if len(input.Technical.Signals) > 0 {
		b.WriteString("\nSignals:\n")
		for _, family := range model.SignalFamilies {
			if sig, ok := input.Technical.Signals[family]; ok {
				fmt.Fprintf(&b, "- %s: %s (%s, confidence %.0f)\n", family, sig.Signal, sig.Description, sig.Confidence)
			}
		}
	}

	fmt.Fprintf(&b, "\nNews sentiment: %s (score %.2f, %d articles)\n",
		input.Sentiment.Summary, input.Sentiment.Score, input.Sentiment.ArticleCount)

	if pc := input.PortfolioContext; pc != nil {
		fmt.Fprintf(&b, "\nPortfolio context: holding %.2f units at average price %.2f (P&L %.2f%%)\n",
			pc.Quantity, pc.AveragePrice, pc.PnlPercentage)
	}

	return b.String()
}

// parseAdvisorResponse decodes the model output. It first looks for a fenced
// code block, then tries the whole body as JSON; anything else becomes a
// raw-text fallback carrying the original response.
func parseAdvisorResponse(raw string) model.AIAnalysis {
	text := strings.TrimSpace(raw)

	jsonText := text
	if match := fencedBlockPattern.FindStringSubmatch(text); match != nil {
		jsonText = strings.TrimSpace(match[1])
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(jsonText), &fields); err != nil {
		return fallbackAnalysis(text)
	}

	analysis := model.AIAnalysis{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &analysis,
		WeaklyTypedInput: true,
	})
	if err == nil {
		err = decoder.Decode(fields)
	}
	if err != nil {
		log.Error().Err(err).Msg("advisor response did not match expected shape")
		return fallbackAnalysis(text)
	}

	// Fill structured-field defaults for anything the provider omitted.
	if strings.TrimSpace(analysis.Recommendation) == "" {
		analysis.Recommendation = "HOLD"
	}
	if _, present := fields["confidence"]; !present {
		analysis.Confidence = 50
	}
	analysis.TimeHorizon = model.ParseTimeHorizon(string(analysis.TimeHorizon))
	if analysis.KeyPoints == nil {
		analysis.KeyPoints = []string{}
	}
	if analysis.Risks == nil {
		analysis.Risks = []string{}
	}
	if analysis.Opportunities == nil {
		analysis.Opportunities = []string{}
	}
	analysis.Success = true
	return analysis
}

func fallbackAnalysis(explanation string) model.AIAnalysis {
	return model.AIAnalysis{
		Success:        false,
		Recommendation: "HOLD",
		Confidence:     50,
		TimeHorizon:    model.HorizonMedium,
		KeyPoints:      []string{},
		Risks:          []string{},
		Opportunities:  []string{},
		Analysis:       explanation,
	}
}
