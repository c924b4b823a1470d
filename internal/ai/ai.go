// Package ai wraps the hosted language models used to rephrase notices.
package ai

import (
	"errors"
	"fmt"
)

// Provider names accepted in configuration.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// Request is a single text-generation call.
type Request struct {
	Prompt string
	// Temperature controls randomness; 0 is deterministic.
	Temperature float64
	// MaxTokens limits the length of the generated text.
	MaxTokens int
}

var (
	// ErrMissingAPIKey is returned when a provider is used without credentials.
	ErrMissingAPIKey = errors.New("API key required")
	// ErrEmptyResponse is returned when a provider answers with no text.
	ErrEmptyResponse = errors.New("empty response")
)

func missingKey(envVar string) error {
	return fmt.Errorf("%w: set %s or run 'notice config set-key'", ErrMissingAPIKey, envVar)
}
