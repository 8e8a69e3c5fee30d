// Package config loads the game's startup configuration from the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config controls how the terminal game starts up. Everything here is
// consumed once at boot; the engine itself never reads the environment.
type Config struct {
	// Players preselects the number of players and skips the menu.
	// Zero keeps the player-count screen.
	Players int `env:"YAHTZEE_PLAYERS"`
	// Seed fixes the dice seed for reproducible games. Zero draws a
	// crypto-random seed at startup.
	Seed int64 `env:"YAHTZEE_SEED"`
	// LogFile enables debug logging to the named file. The terminal
	// itself belongs to the renderer, so logs never go to stderr.
	LogFile string `env:"YAHTZEE_LOG"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for the CLI entry point.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
