package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/notices/internal/app"
	"github.com/alkime/notices/internal/config"
	"github.com/alkime/notices/internal/keyring"
	"github.com/alkime/notices/internal/logger"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/tui"
	"github.com/alkime/notices/internal/tui/style"
	"github.com/alkime/notices/internal/workdir"
	"github.com/alkime/notices/pkg/collections"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the notice command structure.
type CLI struct {
	Globals

	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"1" help:"Launch terminal UI for picking notices"`

	// Subcommands
	Recommend RecommendCmd `cmd:"" help:"Print recommended messages for the given filters"`
	Options   OptionsCmd   `cmd:"" help:"List the selectable filter values"`
	Config    ConfigCmd    `cmd:"" help:"Manage configuration"`
}

// Globals are flags shared by every command. Empty values fall back to the
// environment and .env via config.LoadConfig.
type Globals struct {
	Catalog  string `flag:"" short:"c" env:"NOTICE_CATALOG_PATH" help:"Catalog file (.xlsx, .csv, .yaml)"`
	Sheet    string `flag:"" env:"NOTICE_CATALOG_SHEET" help:"Worksheet to read from .xlsx catalogs"`
	Composer string `flag:"" env:"NOTICE_COMPOSER" help:"Message composer: template, anthropic, openai or gemini"`
	Model    string `flag:"" env:"NOTICE_MODEL" help:"Model name for the generative composer"`
	Debug    bool   `flag:"" help:"Enable debug logging"`
}

// config loads the environment configuration and applies flag overrides.
func (g *Globals) config() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if g.Catalog != "" {
		cfg.CatalogPath = g.Catalog
	}
	if g.Sheet != "" {
		cfg.CatalogSheet = g.Sheet
	}
	if g.Composer != "" {
		cfg.Composer = g.Composer
	}
	if g.Model != "" {
		cfg.Model = g.Model
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (g *Globals) app() (*app.App, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}

	return app.New(cfg)
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	LogFile string `flag:"" default:"notice-debug.log" help:"Log file used with --debug while the TUI is running"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(g *Globals) error {
	// The TUI owns the terminal; logs go to a file or nowhere.
	if g.Debug {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger.SetupCLILogger(f, slog.LevelDebug)
	} else {
		logger.SetupCLILogger(io.Discard, slog.LevelError)
	}

	a, err := g.app()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.New(ctx, tui.Config{
		Cancel:      cancel,
		Options:     a.Options(),
		Recommender: a,
	}), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	return nil
}

// RecommendCmd prints recommendations without the TUI.
type RecommendCmd struct {
	Tags     []string `flag:"" name:"tag" short:"t" required:"" help:"Tag to emphasize (repeatable)"`
	Tone     string   `flag:"" default:"응원" help:"Message tone: 응원, 공지 or 피드백"`
	Category string   `flag:"" help:"Message category (유형)"`
	Weather  string   `flag:"" default:"맑음" help:"Weather: 맑음, 비, 눈, 폭우, 폭설 or 폭염"`
	Calendar string   `flag:"" default:"평일" help:"Day type: 평일, 주말, 공휴일, 설날 or 추석"`
	JSON     bool     `flag:"" help:"Print JSON instead of text"`
}

// Run executes the recommend command.
func (c *RecommendCmd) Run(g *Globals) error {
	a, err := g.app()
	if err != nil {
		return err
	}

	res, err := a.Recommend(context.Background(), c.criteria())
	if err != nil {
		return err
	}

	if c.JSON {
		return writeJSON(os.Stdout, recommendation{
			Outcome:  res.Outcome.String(),
			Notice:   res.Banner(),
			Messages: res.Messages,
		})
	}

	printResult(os.Stdout, res)

	return nil
}

func (c *RecommendCmd) criteria() notice.Criteria {
	return notice.Criteria{
		Tags:     c.Tags,
		Tone:     notice.Tone(c.Tone),
		Category: c.Category,
		Weather:  notice.Weather(c.Weather),
		Calendar: notice.Calendar(c.Calendar),
	}
}

type recommendation struct {
	Outcome  string              `json:"outcome"`
	Notice   string              `json:"notice"`
	Messages []recommend.Message `json:"messages"`
}

// OptionsCmd lists the values the catalog offers.
type OptionsCmd struct {
	JSON bool `flag:"" help:"Print JSON instead of text"`
}

// Run executes the options command.
func (c *OptionsCmd) Run(g *Globals) error {
	a, err := g.app()
	if err != nil {
		return err
	}

	if c.JSON {
		return writeJSON(os.Stdout, a.Options())
	}

	printOptions(os.Stdout, a.Options())

	return nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	Init     InitCmd     `cmd:"" help:"Create the working directory searched for the catalog"`
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// InitCmd creates the notices working directory.
type InitCmd struct{}

// Run executes the init command.
func (c *InitCmd) Run() error {
	return initWorkdir(os.Stdout)
}

func initWorkdir(w io.Writer) error {
	if err := workdir.Prep(); err != nil {
		return err
	}

	catalog, err := workdir.FilePath(workdir.CatalogFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Working directory ready. Place the catalog at:\n  %s\n", catalog)

	return nil
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"openai,anthropic,gemini" help:"Service name (openai, anthropic or gemini)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Printf("%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'notice config set-key <service> <key>' to configure.")
	}

	return nil
}

func printResult(w io.Writer, res recommend.Result) {
	switch res.Outcome {
	case selector.ExactMatch:
		fmt.Fprintln(w, style.Success.Render(res.Banner()))
	case selector.FallbackMatch:
		fmt.Fprintln(w, style.Info.Render(res.Banner()))
	default:
		fmt.Fprintln(w, style.Warning.Render(res.Banner()))
	}

	for i, msg := range res.Messages {
		fmt.Fprintln(w)
		fmt.Fprintln(w, style.Bullet.Render(fmt.Sprintf("추천 메시지 %d", i+1)))
		fmt.Fprintln(w, msg.Text)
	}
}

func printOptions(w io.Writer, opts options.Options) {
	line := func(label string, values []string) {
		fmt.Fprintf(w, "%s %s\n", style.Label.Render(label+":"), strings.Join(values, ", "))
	}

	line("태그", opts.Tags)
	line("유형", opts.Categories)
	line("톤", collections.Apply(opts.Tones, func(t notice.Tone) string { return string(t) }))
	line("날씨", collections.Apply(opts.Weathers, func(w notice.Weather) string { return string(w) }))
	line("날짜", collections.Apply(opts.Calendars, func(c notice.Calendar) string { return string(c) }))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("notice"),
		kong.Description("Recommend driver notice messages from a tagged catalog."),
		kong.Bind(&cli.Globals),
	)

	// Text logs on stderr keep stdout for results.
	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger.SetupCLILogger(os.Stderr, level)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
