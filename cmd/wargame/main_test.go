package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wargame/internal/config"
	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/history"
	"github.com/lox/wargame/internal/randutil"
	"github.com/lox/wargame/internal/statistics"
	"github.com/lox/wargame/internal/tui"
)

func TestParseDeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		player   []deck.Card
		computer []deck.Card
		wantErr  bool
	}{
		{"two sides", "Ah 2c|Kd 3c", deck.MustParseCards("Ah 2c"), deck.MustParseCards("Kd 3c"), false},
		{"commas and jokers", "Xr,Ts | 9h", deck.MustParseCards("Xr Ts"), deck.MustParseCards("9h"), false},
		{"missing separator", "Ah Kd", nil, nil, true},
		{"three sides", "Ah|Kd|Qs", nil, nil, true},
		{"empty side", "Ah|", nil, nil, true},
		{"bad card", "Ah|Zz", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			player, computer, err := parseDeal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.player, player)
			assert.Equal(t, tt.computer, computer)
		})
	}
}

func TestFirstNonZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, firstNonZero(0, 5, 7))
	assert.Equal(t, 3, firstNonZero(3, 5))
	assert.Equal(t, 0, firstNonZero(0, 0))
}

func TestPacing(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, tui.Pacing{}, pacing(cfg, true))

	p := pacing(cfg, false)
	assert.Equal(t, cfg.WarDelay(), p.War)
	assert.Equal(t, cfg.StakeDelay(), p.Stake)
	assert.Equal(t, cfg.SettleDelay(), p.Settle)
}

func TestPlayerName(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "You", (&PlayCmd{}).playerName(cfg))
	assert.Equal(t, "Ada", (&PlayCmd{Name: "Ada"}).playerName(cfg))
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "wargame.hcl")
	require.NoError(t, os.WriteFile(path, []byte("rules {\n  burn_count = 1\n}\n"), 0o644))

	cfg, rules, err := loadConfig(&GlobalFlags{Config: path, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, 1, rules.BurnCount)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	_, _, err = loadConfig(&GlobalFlags{Config: path, LogLevel: "loud"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newProgressBar(&buf, 80)
	for range 40 {
		p.Observe(statistics.GameResult{})
	}
	assert.Equal(t, strings.Repeat(".", 20), buf.String())

	p.Done()
	assert.True(t, strings.HasPrefix(buf.String(), strings.Repeat(".", progressDots)+" ✓ 40 games"))

	var nilBar *progressBar
	assert.NotPanics(t, func() {
		nilBar.Observe(statistics.GameResult{})
		nilBar.Done()
	})
}

func TestTranscriptSaver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	rec := history.NewRecorder("01jsaver", 9)
	g := game.NewGame(randutil.New(9), game.WithLogger(logger), game.WithSubscriber(rec))
	g.Subscribe(transcriptSaver(dir, rec, logger))

	g.Deal(deck.MustParseCards("Ah"), deck.MustParseCards("Kd"))
	g.PlayTurn()

	f, err := os.Open(filepath.Join(dir, "01jsaver.toml"))
	require.NoError(t, err)
	defer f.Close()

	tr, err := history.Decode(f)
	require.NoError(t, err)
	require.NotNil(t, tr.Result)
	assert.Equal(t, "player", tr.Result.Winner)
	assert.Equal(t, int64(9), tr.Seed)
}
