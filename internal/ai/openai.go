package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI generates text with the OpenAI Chat Completions API.
type OpenAI struct {
	apiKey string
	model  openai.ChatModel
}

// NewOpenAI creates an OpenAI client. An empty model selects the default.
func NewOpenAI(apiKey, model string) *OpenAI {
	m := openai.ChatModelGPT4oMini
	if model != "" {
		m = openai.ChatModel(model)
	}

	return &OpenAI{
		apiKey: apiKey,
		model:  m,
	}
}

// Generate sends req.Prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	if o.apiKey == "" {
		return "", missingKey("OPENAI_API_KEY")
	}

	client := openai.NewClient(option.WithAPIKey(o.apiKey))

	params := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate message via OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w from OpenAI API", ErrEmptyResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
