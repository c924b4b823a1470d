// Package app wires configuration into a ready-to-use recommender.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alkime/notices/internal/ai"
	"github.com/alkime/notices/internal/catalog"
	"github.com/alkime/notices/internal/composer"
	"github.com/alkime/notices/internal/config"
	"github.com/alkime/notices/internal/keyring"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/workdir"
)

// App holds the loaded catalog and everything derived from it.
type App struct {
	catalog     *catalog.Catalog
	options     options.Options
	recommender *recommend.Recommender
}

// New loads the catalog named by cfg and builds the configured composer.
func New(cfg *config.Config) (*App, error) {
	path, err := workdir.CatalogPath(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to locate catalog: %w", err)
	}

	cat, err := catalog.Load(path, catalog.LoadOptions{Sheet: cfg.CatalogSheet})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Info("Catalog loaded", "path", path, "records", cat.Len())

	comp, err := NewComposer(cfg)
	if err != nil {
		return nil, err
	}

	return FromCatalog(cat, selector.New(nil), comp), nil
}

// FromCatalog builds an App around an already loaded catalog.
func FromCatalog(cat *catalog.Catalog, sel *selector.Selector, comp composer.Composer) *App {
	return &App{
		catalog:     cat,
		options:     options.Extract(cat),
		recommender: recommend.New(cat, sel, comp),
	}
}

// NewComposer returns the composer selected by cfg.Composer. Provider keys
// come from the environment first and the system keychain second.
func NewComposer(cfg *config.Config) (composer.Composer, error) {
	if cfg.Composer == config.ComposerTemplate {
		return composer.NewTemplate(), nil
	}

	apiKey := keyring.Resolve(cfg.Composer, cfg.APIKey())
	if apiKey == "" {
		return nil, fmt.Errorf("%w for %s: set the environment variable or run 'notice config set-key %s'",
			ai.ErrMissingAPIKey, cfg.Composer, cfg.Composer)
	}

	var gen composer.Generator
	switch cfg.Composer {
	case ai.ProviderAnthropic:
		gen = ai.NewAnthropic(apiKey, cfg.Model)
	case ai.ProviderOpenAI:
		gen = ai.NewOpenAI(apiKey, cfg.Model)
	case ai.ProviderGemini:
		gen = ai.NewGemini(apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown composer: %s", cfg.Composer)
	}

	slog.Debug("Using generative composer", "provider", cfg.Composer, "model", cfg.Model)

	return composer.NewGenerative(gen, cfg.Temperature, cfg.MaxTokens), nil
}

// Options returns the selectable filter values.
func (a *App) Options() options.Options {
	return a.options
}

// Catalog returns the loaded catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Recommend validates c against the catalog's options and answers it.
func (a *App) Recommend(ctx context.Context, c notice.Criteria) (recommend.Result, error) {
	c = c.Normalize()
	if err := a.options.Validate(c); err != nil {
		return recommend.Result{}, err
	}

	return a.recommender.Recommend(ctx, c), nil
}
