package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini generates text with the Google Gemini API.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini client. An empty model selects the default.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = defaultGeminiModel
	}

	return &Gemini{
		apiKey: apiKey,
		model:  model,
	}
}

// Generate sends req.Prompt as a single text part.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", missingKey("GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens), //nolint:gosec // Bounded by configuration
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate message via Gemini API: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w from Gemini API", ErrEmptyResponse)
	}

	return text, nil
}
