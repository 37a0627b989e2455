package service

import (
	"fmt"
	"strings"

	"backend/model"
)

var positiveKeywords = []string{
	"growth", "profit", "surge", "gain", "rally", "bullish", "upgrade",
	"beat", "exceed", "strong", "robust", "positive", "momentum", "breakthrough",
	"innovation", "expansion", "record", "high", "success", "optimistic",
}

var negativeKeywords = []string{
	"loss", "decline", "fall", "drop", "crash", "bearish", "downgrade",
	"miss", "weak", "poor", "negative", "concern", "risk", "warning",
	"lawsuit", "scandal", "bankruptcy", "cut", "layoff", "pessimistic",
}

type SentimentService interface {
	AnalyzeHeadlines(articles []model.NewsArticle) model.SentimentResult
}

type SentimentServiceImpl struct{}

func NewSentimentService() SentimentService {
	return &SentimentServiceImpl{}
}

// AnalyzeHeadlines scores each headline by keyword hits: (pos-neg)/(pos+neg).
// Headlines with no keyword hits are excluded from the average rather than
// counted as neutral votes. Deliberately simplistic; the thresholds are the
// documented contract.
func (s *SentimentServiceImpl) AnalyzeHeadlines(articles []model.NewsArticle) model.SentimentResult {
	if len(articles) == 0 {
		return model.SentimentResult{
			Score:        0,
			Category:     model.SentimentNeutral,
			Confidence:   0,
			Summary:      "No news articles available",
			ArticleCount: 0,
		}
	}

	totalScore := 0.0
	scored := 0
	for _, article := range articles {
		title := strings.ToLower(article.Title)

		positives := countKeywordHits(title, positiveKeywords)
		negatives := countKeywordHits(title, negativeKeywords)
		if positives == 0 && negatives == 0 {
			continue
		}

		totalScore += float64(positives-negatives) / float64(positives+negatives)
		scored++
	}

	if scored == 0 {
		return model.SentimentResult{
			Score:        0,
			Category:     model.SentimentNeutral,
			Confidence:   50,
			Summary:      "Neutral sentiment - no clear signals",
			ArticleCount: len(articles),
		}
	}

	avgScore := totalScore / float64(scored)
	category := model.CategorizeSentiment(avgScore)

	confidence := 50 + float64(scored)*10
	if confidence > 100 {
		confidence = 100
	}

	return model.SentimentResult{
		Score:        avgScore,
		Category:     category,
		Confidence:   confidence,
		Summary:      sentimentSummary(category, scored, len(articles)),
		ArticleCount: len(articles),
	}
}

func countKeywordHits(title string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(title, keyword) {
			hits++
		}
	}
	return hits
}

func sentimentSummary(category model.SentimentCategory, scored, total int) string {
	switch category {
	case model.SentimentVeryPositive:
		return fmt.Sprintf("Very positive sentiment across %d/%d news articles", scored, total)
	case model.SentimentPositive:
		return fmt.Sprintf("Positive sentiment in recent news (%d/%d articles)", scored, total)
	case model.SentimentNegative:
		return fmt.Sprintf("Negative sentiment detected in %d/%d articles", scored, total)
	case model.SentimentVeryNegative:
		return fmt.Sprintf("Very negative sentiment across %d/%d news articles", scored, total)
	default:
		return fmt.Sprintf("Neutral sentiment - mixed signals from %d/%d articles", scored, total)
	}
}
