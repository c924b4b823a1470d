package composer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alkime/notices/internal/ai"
	"github.com/alkime/notices/internal/notice"
)

// Default sampling settings for the rewrite call.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
)

// FailurePrefix starts every diagnostic returned in place of a rewritten
// message.
const FailurePrefix = "⚠️ 메시지 생성에 실패했습니다"

// Generative rewrites the base message through a language model.
type Generative struct {
	gen         Generator
	temperature float64
	maxTokens   int
}

// NewGenerative creates a generative composer. A negative temperature or a
// non-positive maxTokens falls back to the default.
func NewGenerative(gen Generator, temperature float64, maxTokens int) *Generative {
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Generative{
		gen:         gen,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Compose implements Composer. A failed generation yields a diagnostic
// string starting with FailurePrefix.
func (g *Generative) Compose(ctx context.Context, baseText string, c notice.Criteria) string {
	text, err := g.gen.Generate(ctx, ai.Request{
		Prompt:      RewritePrompt(baseText, c),
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		slog.Error("Message generation failed", "error", err)
		return FailurePrefix + ": " + err.Error()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		slog.Error("Message generation returned no text")
		return FailurePrefix + ": " + ai.ErrEmptyResponse.Error()
	}

	return text
}
