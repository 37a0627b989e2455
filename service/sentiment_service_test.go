package service

import (
	"testing"

	"backend/model"

	"github.com/stretchr/testify/assert"
)

func articles(titles ...string) []model.NewsArticle {
	out := make([]model.NewsArticle, len(titles))
	for i, title := range titles {
		out[i] = model.NewsArticle{Title: title}
	}
	return out
}

func TestAnalyzeHeadlines_Empty(t *testing.T) {
	result := NewSentimentService().AnalyzeHeadlines(nil)

	assert.Zero(t, result.Score)
	assert.Equal(t, model.SentimentNeutral, result.Category)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, "No news articles available", result.Summary)
	assert.Zero(t, result.ArticleCount)
}

func TestAnalyzeHeadlines_NoKeywordHits(t *testing.T) {
	result := NewSentimentService().AnalyzeHeadlines(articles(
		"Company schedules annual general meeting",
		"Board appoints new independent director",
	))

	assert.Zero(t, result.Score)
	assert.Equal(t, model.SentimentNeutral, result.Category)
	assert.InDelta(t, 50.0, result.Confidence, 1e-9)
	assert.Equal(t, 2, result.ArticleCount)
}

func TestAnalyzeHeadlines_Positive(t *testing.T) {
	result := NewSentimentService().AnalyzeHeadlines(articles(
		"Quarterly profit surges on strong growth",
		"Analysts upgrade stock after record results",
	))

	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, model.SentimentVeryPositive, result.Category)
	assert.InDelta(t, 70.0, result.Confidence, 1e-9)
	assert.Contains(t, result.Summary, "Very positive")
}

func TestAnalyzeHeadlines_MixedHeadline(t *testing.T) {
	// One positive and one negative keyword in the same headline cancel out.
	result := NewSentimentService().AnalyzeHeadlines(articles(
		"Strong quarter despite lawsuit overhang",
	))

	assert.Zero(t, result.Score)
	assert.Equal(t, model.SentimentNeutral, result.Category)
	assert.InDelta(t, 60.0, result.Confidence, 1e-9)
}

func TestAnalyzeHeadlines_Negative(t *testing.T) {
	result := NewSentimentService().AnalyzeHeadlines(articles(
		"Shares crash after earnings miss",
		"Regulator issues warning over accounting concern",
		"Company schedules investor day",
	))

	assert.Negative(t, result.Score)
	assert.Equal(t, model.SentimentVeryNegative, result.Category)
	assert.Equal(t, 3, result.ArticleCount)
	assert.InDelta(t, 70.0, result.Confidence, 1e-9)
}

func TestAnalyzeHeadlines_ConfidenceCapped(t *testing.T) {
	titles := make([]string, 8)
	for i := range titles {
		titles[i] = "Record profit growth continues"
	}

	result := NewSentimentService().AnalyzeHeadlines(articles(titles...))
	assert.InDelta(t, 100.0, result.Confidence, 1e-9)
}
