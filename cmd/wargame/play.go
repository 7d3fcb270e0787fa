package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wargame/internal/config"
	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/gameid"
	"github.com/lox/wargame/internal/history"
	"github.com/lox/wargame/internal/randutil"
	"github.com/lox/wargame/internal/tui"
)

type PlayCmd struct {
	Seed    int64  `help:"Shuffle seed (0 for random)"`
	Deal    string `help:"Start from explicit hands instead of a shuffle, e.g. 'Ah 2c|Kd 3c'"`
	History string `help:"Directory to save a TOML transcript of every finished game"`
	Name    string `help:"Player display name (overrides config)"`
	NoColor bool   `help:"Render without colors"`
	Fast    bool   `help:"Skip the pauses between war stages"`
}

func (c *PlayCmd) Run(flags *GlobalFlags) error {
	cfg, rules, err := loadConfig(flags)
	if err != nil {
		return err
	}

	var newGame func(g *game.Game)
	if c.Deal != "" {
		player, computer, err := parseDeal(c.Deal)
		if err != nil {
			return err
		}
		newGame = func(g *game.Game) { g.Deal(player, computer) }
	}

	logger, cleanup, err := openLogFile(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer cleanup()

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	logger.Info("Starting game session", "seed", seed, "jokers", rules.IncludeJokers, "burn", rules.BurnCount)

	rec := history.NewRecorder(gameid.Generate(), seed)
	g := game.NewGame(randutil.New(seed),
		game.WithRules(rules),
		game.WithLogger(logger),
		game.WithSubscriber(rec),
	)
	if c.History != "" {
		g.Subscribe(transcriptSaver(c.History, rec, logger))
	}

	// Every game after the first gets a fresh id. The session seed replays
	// the whole sequence, so only the first transcript carries it.
	started := false
	start := func(g *game.Game) {
		if started {
			rec.SetGame(gameid.Generate(), 0)
		}
		started = true
		if newGame != nil {
			newGame(g)
			return
		}
		g.Initialize()
	}

	if c.NoColor || cfg.Display.NoColor {
		tui.DisableColor()
	}

	model := tui.NewTUIModel(g, logger, tui.Options{
		Clock:      quartz.NewReal(),
		Pacing:     pacing(cfg, c.Fast),
		NewGame:    start,
		PlayerName: c.playerName(cfg),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	logger.Info("Session ended", "turns", g.Turns())
	return nil
}

func (c *PlayCmd) playerName(cfg *config.Config) string {
	if c.Name != "" {
		return c.Name
	}
	return cfg.Display.PlayerName
}

func pacing(cfg *config.Config, fast bool) tui.Pacing {
	if fast {
		return tui.Pacing{}
	}
	return tui.Pacing{
		War:    cfg.WarDelay(),
		Stake:  cfg.StakeDelay(),
		Settle: cfg.SettleDelay(),
	}
}

// transcriptSaver writes the recorder's transcript to dir when a game ends.
// It must be subscribed after rec.
func transcriptSaver(dir string, rec *history.Recorder, logger *log.Logger) game.EventSubscriber {
	return game.EventSubscriberFunc(func(e game.GameEvent) {
		if _, ok := e.(game.GameOverEvent); !ok {
			return
		}
		t := rec.Transcript()
		path := filepath.Join(dir, t.GameID+".toml")
		if err := history.Save(path, t); err != nil {
			logger.Error("Failed to save transcript", "path", path, "error", err)
			return
		}
		logger.Info("Saved transcript", "path", path, "turns", len(t.Turns))
	})
}
