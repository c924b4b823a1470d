package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic generates text with the Anthropic Messages API.
type Anthropic struct {
	apiKey string
	model  anthropic.Model
}

// NewAnthropic creates an Anthropic client. An empty model selects the
// default.
func NewAnthropic(apiKey, model string) *Anthropic {
	m := anthropic.ModelClaudeSonnet4_5_20250929
	if model != "" {
		m = anthropic.Model(model)
	}

	return &Anthropic{
		apiKey: apiKey,
		model:  m,
	}
}

// Generate sends req.Prompt as a single user message.
func (a *Anthropic) Generate(ctx context.Context, req Request) (string, error) {
	if a.apiKey == "" {
		return "", missingKey("ANTHROPIC_API_KEY")
	}

	client := anthropic.NewClient(option.WithAPIKey(a.apiKey))

	params := anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate message via Anthropic API: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w from Anthropic API", ErrEmptyResponse)
	}

	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", errors.New("unexpected response type from Anthropic API")
	}

	return textBlock.Text, nil
}
