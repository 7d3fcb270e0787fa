package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/wargame/internal/config"
	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
)

// loadConfig reads the config file and applies the global overrides.
func loadConfig(flags *GlobalFlags) (*config.Config, game.Rules, error) {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return nil, game.Rules{}, fmt.Errorf("loading %s: %w", flags.Config, err)
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, game.Rules{}, err
		}
	}
	rules, err := cfg.GameRules()
	if err != nil {
		return nil, game.Rules{}, err
	}
	return cfg, rules, nil
}

func newLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
}

// openLogFile creates a logger writing to path. The returned cleanup closes
// the file.
func openLogFile(path string, level log.Level) (*log.Logger, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	cleanup := func() {
		if err := f.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}
	return newLogger(f, level, "wargame"), cleanup, nil
}

// parseDeal parses "player cards|computer cards", e.g. "Ah 2c|Kd 3c".
func parseDeal(s string) (player, computer []deck.Card, err error) {
	sides := strings.Split(s, "|")
	if len(sides) != 2 {
		return nil, nil, fmt.Errorf("deal %q: want player and computer cards separated by '|'", s)
	}
	if player, err = deck.ParseCards(sides[0]); err != nil {
		return nil, nil, fmt.Errorf("player cards: %w", err)
	}
	if computer, err = deck.ParseCards(sides[1]); err != nil {
		return nil, nil, fmt.Errorf("computer cards: %w", err)
	}
	if len(player) == 0 || len(computer) == 0 {
		return nil, nil, fmt.Errorf("deal %q: both sides need at least one card", s)
	}
	return player, computer, nil
}
