package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envLocal = "LOCAL"

	modeDirect = "direct"
	modeHTTP   = "http"
)

// Config is read from environment variables at startup.
type Config struct {
	// ENV=LOCAL serves the handler over plain HTTP instead of the Lambda runtime
	Env         string `env:"ENV"`
	Port        string `env:"PORT" envDefault:"8080"`
	HandlerMode string `env:"HANDLER_MODE" envDefault:"direct"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// loadConfig reads the environment. In local mode a .env file in the working
// directory is loaded first; it never overrides variables already set.
func loadConfig() (Config, error) {
	if os.Getenv("ENV") == envLocal {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.HandlerMode {
	case modeDirect, modeHTTP:
	default:
		return Config{}, fmt.Errorf("unsupported HANDLER_MODE %q (want %q or %q)", cfg.HandlerMode, modeDirect, modeHTTP)
	}

	return cfg, nil
}
