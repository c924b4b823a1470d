package config

import (
	"fmt"
	"log"
	"os"

	"github.com/alkime/notices/internal/ai"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"

	// ComposerTemplate selects the deterministic composer.
	ComposerTemplate = "template"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Catalog settings
	CatalogPath  string `envconfig:"NOTICE_CATALOG_PATH"`
	CatalogSheet string `envconfig:"NOTICE_CATALOG_SHEET" default:"전체"`

	// Composer settings
	Composer    string  `envconfig:"NOTICE_COMPOSER" default:"template"`
	Model       string  `envconfig:"NOTICE_MODEL"`
	Temperature float64 `envconfig:"NOTICE_TEMPERATURE" default:"0.7"`
	MaxTokens   int     `envconfig:"NOTICE_MAX_TOKENS" default:"500"`

	// Provider credentials
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	switch c.Composer {
	case ComposerTemplate, ai.ProviderAnthropic, ai.ProviderOpenAI, ai.ProviderGemini:
	default:
		return fmt.Errorf("invalid composer %q: must be template, anthropic, openai or gemini", c.Composer)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("invalid temperature %v: must be between 0 and 2", c.Temperature)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("invalid max tokens %d: must be positive", c.MaxTokens)
	}

	return nil
}

// APIKey returns the credential for the configured composer, or "" for the
// template composer.
func (c *Config) APIKey() string {
	switch c.Composer {
	case ai.ProviderAnthropic:
		return c.AnthropicAPIKey
	case ai.ProviderOpenAI:
		return c.OpenAIAPIKey
	case ai.ProviderGemini:
		return c.GeminiAPIKey
	default:
		return ""
	}
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'none'; " +
			"frame-ancestors 'none'; " +
			"base-uri 'none'; " +
			"form-action 'none'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
