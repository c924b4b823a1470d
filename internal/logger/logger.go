package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/alkime/notices/internal/config"
)

// SetupLogger configures structured JSON logging for the server based on
// environment.
func SetupLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// SetupCLILogger configures text logging for the terminal tool. Output goes
// to w (stderr in practice) so stdout stays free for results and the TUI.
func SetupCLILogger(w io.Writer, level slog.Level) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Level determines the log level from configuration.
func Level(cfg *config.Config) slog.Level {
	switch {
	case cfg.LogLevel == "debug", cfg.Env == "development":
		return slog.LevelDebug
	case cfg.LogLevel == "warn":
		return slog.LevelWarn
	case cfg.LogLevel == "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
