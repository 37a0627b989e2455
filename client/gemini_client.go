package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client := resty.New().
		SetBaseURL("https://generativelanguage.googleapis.com/v1beta").
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

// IsConfigured reports whether an API key is present. Callers must check this
// before GenerateContent to avoid a pointless network round trip.
func (g *GeminiClient) IsConfigured() bool {
	return g.apiKey != ""
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateContent submits a prompt and returns the raw model text.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !g.IsConfigured() {
		return "", fmt.Errorf("gemini api key not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(payload).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))

	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("gemini api error: %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
