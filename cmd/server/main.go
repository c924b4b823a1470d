package main

import (
	"log"

	"github.com/alkime/notices/internal/app"
	"github.com/alkime/notices/internal/config"
	"github.com/alkime/notices/internal/logger"
	"github.com/alkime/notices/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	lg := logger.SetupLogger(cfg)

	lg.Info("Starting notices server",
		"env", cfg.Env,
		"port", cfg.Port,
		"composer", cfg.Composer,
	)

	a, err := app.New(cfg)
	if err != nil {
		lg.Error("Failed to initialize", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	srv := server.New(cfg, lg, a)
	if err := server.Run(srv); err != nil {
		lg.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
