package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/wargame/internal/randutil"
	"github.com/lox/wargame/internal/report"
	"github.com/lox/wargame/internal/simulator"
)

type SimulateCmd struct {
	Games    int           `short:"n" help:"Number of games to play (overrides config)"`
	Seed     int64         `help:"Base seed; game i uses a seed derived from it (0 for random)"`
	Workers  int           `help:"Concurrent games (0 = config, then CPU count)"`
	MaxTurns int           `help:"Turn limit after which a game counts as unfinished"`
	Timeout  time.Duration `help:"Abort the batch after this long (overrides config)"`
	CSV      string        `name:"csv" help:"Write per-game results to this CSV file"`
	Verbose  bool          `help:"Log at debug level"`
	Quiet    bool          `short:"q" help:"Hide the progress bar"`
}

func (c *SimulateCmd) Run(flags *GlobalFlags) error {
	cfg, rules, err := loadConfig(flags)
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level, "simulate")

	sim := cfg.Simulation
	games := firstNonZero(c.Games, sim.Games)
	workers := firstNonZero(c.Workers, sim.Workers)
	maxTurns := firstNonZero(c.MaxTurns, sim.MaxTurns)
	timeout := c.Timeout
	if timeout == 0 {
		timeout = cfg.Timeout()
	}
	seed := c.Seed
	if seed == 0 {
		seed = sim.Seed
	}
	if seed == 0 {
		seed = randutil.Seed()
	}
	output := c.CSV
	if output == "" {
		output = sim.Output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress *progressBar
	if !c.Quiet {
		progress = newProgressBar(os.Stdout, games)
		fmt.Fprintf(os.Stdout, "Simulating %d games (seed %d): ", games, seed)
	}

	logger.Info("Starting simulation", "games", games, "seed", seed, "workers", workers, "max_turns", maxTurns)
	s := simulator.New(simulator.Config{
		Games:    games,
		Seed:     seed,
		Workers:  workers,
		MaxTurns: maxTurns,
		Timeout:  timeout,
		Rules:    rules,
		Logger:   logger,
		OnResult: progress.Observe,
	})

	res, err := s.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	progress.Done()

	report.WriteSummary(os.Stdout, res.Stats, rules)

	if output != "" {
		if err := report.SaveCSV(output, res.Games); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stdout, "\nWrote %d games to %s\n", len(res.Games), output)
	}
	return nil
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
