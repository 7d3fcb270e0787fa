package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/randutil"
)

func TestStatistics_Empty(t *testing.T) {
	t.Parallel()

	s := &Statistics{}
	assert.Zero(t, s.MeanTurns())
	assert.Zero(t, s.StdDevTurns())
	assert.Zero(t, s.StdErrorTurns())
	assert.Zero(t, s.MedianTurns())
	assert.Zero(t, s.PlayerWinRate())
	assert.Zero(t, s.WarsPerGame())
	assert.Equal(t, 1.0, s.FairnessPValue())
	assert.Error(t, s.Validate())
}

func TestStatistics_MultipleGames(t *testing.T) {
	t.Parallel()

	s := &Statistics{}
	results := []GameResult{
		{Finished: true, Winner: game.Player, Turns: 100, Wars: 6, WarTurns: 5, DoubleWars: 1, MaxWarDepth: 2},
		{Finished: true, Winner: game.Computer, Turns: 300, Wars: 20, WarTurns: 18, DoubleWars: 2, MaxWarDepth: 3},
		{Finished: true, Winner: game.Player, Turns: 200, Wars: 12, WarTurns: 12, Recycles: [2]int{4, 5}},
		{Finished: false, Turns: 1000, Wars: 60, WarTurns: 55, DoubleWars: 5, MaxWarDepth: 2},
		{Finished: true, Winner: game.Computer, Turns: 400, Wars: 25, WarTurns: 24, DoubleWars: 1, MaxWarDepth: 2},
		{Finished: true, Winner: game.Player, Turns: 500, Wars: 30, WarTurns: 28, DoubleWars: 2, MaxWarDepth: 2},
	}
	for _, r := range results {
		s.Add(r)
	}

	require.NoError(t, s.Validate())
	assert.Equal(t, 6, s.Games)
	assert.Equal(t, 1, s.Unfinished)
	assert.Equal(t, 5, s.Finished())
	assert.Equal(t, 3, s.PlayerWins)
	assert.Equal(t, 2, s.ComputerWins)
	assert.Equal(t, 3, s.MaxWarDepth)
	assert.Equal(t, [2]int{4, 5}, s.Recycles)
	assert.Equal(t, 500, s.LongestGame.Turns)

	assert.InDelta(t, 300.0, s.MeanTurns(), 1e-9, "unfinished games are excluded from lengths")
	assert.InDelta(t, 158.113883, s.StdDevTurns(), 1e-5)
	assert.InDelta(t, 300.0, s.MedianTurns(), 1e-9)
	assert.InDelta(t, 100.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 500.0, s.Percentile(1), 1e-9)
	assert.InDelta(t, 0.6, s.PlayerWinRate(), 1e-9)
	assert.InDelta(t, 153.0/6.0, s.WarsPerGame(), 1e-9)
	assert.InDelta(t, 142.0/2500.0, s.WarTurnRate(), 1e-9)

	low, high := s.WinRateInterval95()
	assert.Less(t, low, 0.6)
	assert.Greater(t, high, 0.6)
}

func TestFairnessPValue(t *testing.T) {
	t.Parallel()

	balanced := &Statistics{Games: 1000, PlayerWins: 500, ComputerWins: 500}
	assert.InDelta(t, 1.0, balanced.FairnessPValue(), 1e-9)

	skewed := &Statistics{Games: 1000, PlayerWins: 600, ComputerWins: 400}
	assert.Less(t, skewed.FairnessPValue(), 1e-6)
}

func TestValidateCatchesInconsistency(t *testing.T) {
	t.Parallel()

	s := &Statistics{}
	s.Add(GameResult{Finished: true, Winner: game.Player, Turns: 10, Wars: 1, WarTurns: 1})
	require.NoError(t, s.Validate())

	s.PlayerWins++
	assert.Error(t, s.Validate())

	s.PlayerWins--
	s.DoubleWars = 5
	assert.Error(t, s.Validate())
}

func TestResultFromStats(t *testing.T) {
	t.Parallel()

	g := game.NewGame(randutil.New(1))
	g.Deal(deck.MustParseCards("Ah"), deck.MustParseCards("Kd"))
	g.PlayTurn()

	r := ResultFromStats("abc", 99, g)
	assert.True(t, r.Finished)
	assert.Equal(t, game.Player, r.Winner)
	assert.Equal(t, 1, r.Turns)
	assert.Equal(t, int64(99), r.Seed)
	assert.Equal(t, "abc", r.ID)

	unfinished := game.NewGame(randutil.New(1))
	assert.False(t, ResultFromStats("x", 1, unfinished).Finished)
}
