package main

import (
	"context"
	"os"

	"github.com/CPADelaney/project-nyx/internal/config"
	"github.com/CPADelaney/project-nyx/internal/logging"
)

// newLogger creates a logger with the specified format and level.
func newLogger(cfg config.LoggingConfig) *logging.Logger {
	logFormat := logging.HumanFormat
	if cfg.Format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.LogLevel(cfg.Level),
	})
}

// loadConfig loads the repository configuration from the working directory,
// falling back to defaults when the file is missing or broken.
func loadConfig(logger *logging.Logger) *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("Invalid config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.DefaultConfig()
	}
	return cfg
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}
