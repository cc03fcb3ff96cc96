package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-meteors/internal/config"
)

// loadConfig resolves the game config from the global flags.
func loadConfig() (config.MeteorsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MeteorsConfig{}, err
	}
	return config.LoadWithPreset(flagConfig, preset)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
