package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/gameid"
	"github.com/lox/wargame/internal/randutil"
	"github.com/lox/wargame/internal/statistics"
)

// DefaultMaxTurns stops games that have not finished after this many turns.
const DefaultMaxTurns = 100_000

// ctxCheckInterval is how many turns run between context checks.
const ctxCheckInterval = 1024

// ErrConservation is returned when a game creates or loses cards.
var ErrConservation = errors.New("card conservation violated")

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Seed     int64
	Workers  int
	MaxTurns int
	Timeout  time.Duration
	Rules    game.Rules
	Logger   *log.Logger

	// OnResult is called from worker goroutines as each game finishes.
	OnResult func(statistics.GameResult)
}

// Result holds every game played and their aggregate statistics
type Result struct {
	Games []statistics.GameResult
	Stats *statistics.Statistics
}

// Simulator runs batches of independent War games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	return &Simulator{config: config}
}

// Run plays the configured number of games. Game i always uses seed
// randutil.Child(Seed, i), so results do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cfg.Logger.Info("Starting simulation",
		"games", cfg.Games,
		"seed", cfg.Seed,
		"workers", cfg.Workers,
		"max_turns", cfg.MaxTurns)
	start := time.Now()

	results := make([]statistics.GameResult, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			seed := randutil.Child(cfg.Seed, i)
			res, err := PlayGame(gctx, cfg.Rules, seed, cfg.MaxTurns, cfg.Logger)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = res
			if cfg.OnResult != nil {
				cfg.OnResult(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simulation stopped: %w", err)
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Info("Simulation complete",
		"games", stats.Games,
		"unfinished", stats.Unfinished,
		"player_wins", stats.PlayerWins,
		"computer_wins", stats.ComputerWins,
		"elapsed", time.Since(start))

	return &Result{Games: results, Stats: stats}, nil
}

// PlayGame plays one game from seed until it ends or reaches maxTurns,
// checking card conservation after every turn.
func PlayGame(ctx context.Context, rules game.Rules, seed int64, maxTurns int, logger *log.Logger) (statistics.GameResult, error) {
	id, err := gameid.NewGenerator(nil).New()
	if err != nil {
		return statistics.GameResult{}, err
	}

	g := game.NewGame(randutil.New(seed), game.WithRules(rules), game.WithLogger(logger))
	for turn := 1; turn <= maxTurns && !g.IsGameOver(); turn++ {
		if turn%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return statistics.GameResult{}, err
			}
		}
		g.PlayTurn()
		if err := g.ValidateConservation(); err != nil {
			return statistics.GameResult{}, fmt.Errorf("%w at turn %d: %v", ErrConservation, turn, err)
		}
	}

	res := statistics.ResultFromStats(id, seed, g)
	if !res.Finished {
		logger.Warn("Game hit turn limit", "id", id, "seed", seed, "turns", res.Turns)
	} else {
		logger.Debug("Game finished", "id", id, "seed", seed, "winner", res.Winner, "turns", res.Turns)
	}
	return res, nil
}
