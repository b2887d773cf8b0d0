package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jmvcosta/vcfkit/internal/config"
	"github.com/jmvcosta/vcfkit/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so processed output on stdout stays clean.
	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
