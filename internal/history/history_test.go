package history_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/history"
	"github.com/lox/wargame/internal/randutil"
)

func TestFormatBattle(t *testing.T) {
	t.Parallel()

	c := deck.MustParseCards("Kc Qc Xr")
	tests := []struct {
		name   string
		battle game.Battle
		want   string
	}{
		{"round", game.Battle{Player: c[0], Computer: c[1], Status: game.StatusPlayerWins}, "Kc Qc player_wins"},
		{"war stage", game.Battle{Player: c[1], Computer: c[2], Hidden: [2]int{3, 3}, Status: game.StatusComputerWins}, "[3/3] Qc Xr computer_wins"},
		{"shortfall", game.Battle{Status: game.StatusGameOverComputerWins}, "-- -- game_over_computer_wins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, history.FormatBattle(tt.battle))
		})
	}
}

func TestRecorderCapturesGame(t *testing.T) {
	t.Parallel()

	rec := history.NewRecorder("01jabc", 42)
	g := game.NewGame(randutil.New(1), game.WithSubscriber(rec))
	g.Deal(deck.MustParseCards("5h 2c 3c 4c Kc"), deck.MustParseCards("5d 2d 3d 4d Qc"))
	g.PlayTurn()

	tr := rec.Transcript()
	assert.Equal(t, "war", tr.Variant)
	assert.Equal(t, "01jabc", tr.GameID)
	assert.Equal(t, int64(42), tr.Seed)
	assert.Equal(t, history.Rules{IncludeJokers: true, BurnCount: 3, Deal: "alternate"}, tr.Rules)
	assert.Equal(t, []string{"5h", "2c", "3c", "4c", "Kc"}, tr.Player)

	require.Len(t, tr.Turns, 1)
	turn := tr.Turns[0]
	assert.Equal(t, 1, turn.Number)
	assert.Equal(t, "player_wins", turn.Status)
	assert.Equal(t, []string{"5h 5d war", "[3/3] Kc Qc player_wins"}, turn.Battles)
	assert.Equal(t, 10, turn.PlayerCards)

	require.NotNil(t, tr.Result)
	assert.Equal(t, "player", tr.Result.Winner)
	assert.Equal(t, 1, tr.Result.Wars)
}

func TestRecorderResetsOnDeal(t *testing.T) {
	t.Parallel()

	rec := history.NewRecorder("a", 0)
	g := game.NewGame(randutil.New(1), game.WithSubscriber(rec))
	g.PlayTurn()
	g.PlayTurn()
	require.Len(t, rec.Transcript().Turns, 2)

	rec.SetGame("b", 5)
	g.Initialize()
	tr := rec.Transcript()
	assert.Empty(t, tr.Turns)
	assert.Equal(t, "b", tr.GameID)
	assert.Len(t, tr.Player, 27)
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	rec := history.NewRecorder("01jxyz", 7)
	g := game.NewGame(randutil.New(7), game.WithSubscriber(rec))
	for i := 0; i < 25 && !g.IsGameOver(); i++ {
		g.PlayTurn()
	}

	var buf bytes.Buffer
	require.NoError(t, history.Encode(&buf, rec.Transcript()))
	assert.True(t, strings.Contains(buf.String(), "[[turn]]"))
	assert.True(t, strings.HasPrefix(buf.String(), `variant = "war"`))

	got, err := history.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Transcript().Turns, got.Turns)
	assert.Equal(t, rec.Transcript().Player, got.Player)
	assert.Equal(t, "01jxyz", got.GameID)
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()

	assert.Error(t, history.Encode(&bytes.Buffer{}, nil))
}

func TestSave(t *testing.T) {
	t.Parallel()

	rec := history.NewRecorder("01jsave", 1)
	g := game.NewGame(randutil.New(3), game.WithSubscriber(rec))
	g.Deal(deck.MustParseCards("Ah"), deck.MustParseCards("Kd"))
	g.PlayTurn()

	path := filepath.Join(t.TempDir(), "games", "01jsave.toml")
	require.NoError(t, history.Save(path, rec.Transcript()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := history.Decode(f)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Equal(t, "player", got.Result.Winner)
	assert.Equal(t, []string{"Ah Kd player_wins"}, got.Turns[0].Battles)
}
