// Package cli provides common CLI initialization utilities shared by the
// datareports subcommands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"datareports/internal/config"
	applog "datareports/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration from the environment, overlays the YAML
// file at path when one is given, applies overrides such as command-line
// flags, and validates the result.
func LoadConfig(path string, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger from the log configuration and
// sets it as the slog default.
func SetupLogger(cfg config.LogConfig) (*applog.Logger, error) {
	level, err := applog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	logger := applog.New(applog.Config{
		Level:     level,
		Format:    cfg.Format,
		Component: applog.ComponentCLI,
		Output:    os.Stderr,
	})
	applog.SetDefault(logger)
	return logger, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM. The
// returned stop function releases the signal handler.
func SignalContext(parent context.Context, logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
