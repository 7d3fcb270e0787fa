// Package config loads the wargame HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the complete wargame configuration
type Config struct {
	Log        *LogSettings        `hcl:"log,block"`
	Rules      *RulesSettings      `hcl:"rules,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Display    *DisplaySettings    `hcl:"display,block"`
}

// LogSettings controls the application logger
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// RulesSettings selects the ruleset. Unset values keep the standard rules.
type RulesSettings struct {
	IncludeJokers *bool  `hcl:"include_jokers,optional"`
	BurnCount     *int   `hcl:"burn_count,optional"`
	Deal          string `hcl:"deal,optional"`
}

// SimulationSettings configures batch runs
type SimulationSettings struct {
	Games    int    `hcl:"games,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	MaxTurns int    `hcl:"max_turns,optional"`
	Timeout  string `hcl:"timeout,optional"`
	Output   string `hcl:"output,optional"`
}

// DisplaySettings controls terminal UI pacing and labels
type DisplaySettings struct {
	PlayerName  string `hcl:"player_name,optional"`
	WarDelay    string `hcl:"war_delay,optional"`
	StakeDelay  string `hcl:"stake_delay,optional"`
	SettleDelay string `hcl:"settle_delay,optional"`
	NoColor     bool   `hcl:"no_color,optional"`
}

const (
	defaultLogLevel    = "info"
	defaultLogFile     = "wargame.log"
	defaultDeal        = "alternate"
	defaultGames       = 1000
	defaultMaxTurns    = 100_000
	defaultTimeout     = "5m"
	defaultPlayerName  = "You"
	defaultWarDelay    = "1500ms"
	defaultStakeDelay  = "1500ms"
	defaultSettleDelay = "2s"
)

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults. The result is validated.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults for missing values and validates
// the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = defaultLogFile
	}

	std := game.StandardRules()
	if c.Rules == nil {
		c.Rules = &RulesSettings{}
	}
	if c.Rules.IncludeJokers == nil {
		c.Rules.IncludeJokers = &std.IncludeJokers
	}
	if c.Rules.BurnCount == nil {
		c.Rules.BurnCount = &std.BurnCount
	}
	if c.Rules.Deal == "" {
		c.Rules.Deal = defaultDeal
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaultGames
	}
	if c.Simulation.MaxTurns == 0 {
		c.Simulation.MaxTurns = defaultMaxTurns
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = defaultTimeout
	}

	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.PlayerName == "" {
		c.Display.PlayerName = defaultPlayerName
	}
	if c.Display.WarDelay == "" {
		c.Display.WarDelay = defaultWarDelay
	}
	if c.Display.StakeDelay == "" {
		c.Display.StakeDelay = defaultStakeDelay
	}
	if c.Display.SettleDelay == "" {
		c.Display.SettleDelay = defaultSettleDelay
	}
}

// Validate validates the configuration. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	if _, err := c.GameRules(); err != nil {
		return err
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("%w: simulation games must be positive, got %d", ErrInvalid, c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("%w: simulation workers must not be negative, got %d", ErrInvalid, c.Simulation.Workers)
	}
	if c.Simulation.MaxTurns < 1 {
		return fmt.Errorf("%w: simulation max_turns must be positive, got %d", ErrInvalid, c.Simulation.MaxTurns)
	}

	durations := []struct {
		name  string
		value string
	}{
		{"simulation timeout", c.Simulation.Timeout},
		{"display war_delay", c.Display.WarDelay},
		{"display stake_delay", c.Display.StakeDelay},
		{"display settle_delay", c.Display.SettleDelay},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("%w: %s %q: %v", ErrInvalid, d.name, d.value, err)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalid, d.name)
		}
	}

	return nil
}

// GameRules converts the rules block into a validated game.Rules.
func (c *Config) GameRules() (game.Rules, error) {
	deal, err := deck.ParseDealPolicy(c.Rules.Deal)
	if err != nil {
		return game.Rules{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	rules := game.Rules{
		IncludeJokers: *c.Rules.IncludeJokers,
		BurnCount:     *c.Rules.BurnCount,
		Deal:          deal,
	}
	if err := rules.Validate(); err != nil {
		return game.Rules{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return rules, nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Timeout returns the simulation timeout; zero means no limit.
func (c *Config) Timeout() time.Duration {
	return mustDuration(c.Simulation.Timeout)
}

// WarDelay is the pause before a war is announced.
func (c *Config) WarDelay() time.Duration {
	return mustDuration(c.Display.WarDelay)
}

// StakeDelay is the pause while face-down cards are staked.
func (c *Config) StakeDelay() time.Duration {
	return mustDuration(c.Display.StakeDelay)
}

// SettleDelay is the pause after a war resolves.
func (c *Config) SettleDelay() time.Duration {
	return mustDuration(c.Display.SettleDelay)
}

// mustDuration parses a duration already checked by Validate.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
