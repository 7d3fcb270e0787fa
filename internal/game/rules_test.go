package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wargame/internal/deck"
)

func TestRoundResolution(t *testing.T) {
	t.Parallel()

	t.Run("higher card takes both", func(t *testing.T) {
		tr := newTestTurn("Th", "7c")
		st := tr.round()

		assert.Equal(t, StatusPlayerWins, st)
		assert.ElementsMatch(t, deck.MustParseCards("Th 7c"), tr.hands[Player].WinPile())
		assert.Equal(t, 0, tr.hands[Computer].Size())
		assert.Equal(t, 0, tr.pool.Len())
		assert.Equal(t, 2, tr.staked)
	})

	t.Run("computer wins symmetric", func(t *testing.T) {
		tr := newTestTurn("7c", "Th")
		assert.Equal(t, StatusComputerWins, tr.round())
		assert.Len(t, tr.hands[Computer].WinPile(), 2)
	})

	t.Run("equal values tie and stay in the pool", func(t *testing.T) {
		tr := newTestTurn("Th 2c", "Td 3c")
		st := tr.round()

		assert.Equal(t, StatusWar, st)
		assert.Equal(t, deck.MustParseCards("Th Td"), tr.pool.Cards())
		assert.Empty(t, tr.hands[Player].WinPile())
		assert.Empty(t, tr.hands[Computer].WinPile())
	})

	t.Run("joker beats ace", func(t *testing.T) {
		tr := newTestTurn("As", "Xr")
		assert.Equal(t, StatusComputerWins, tr.round())
	})

	t.Run("empty hand ends the game", func(t *testing.T) {
		tr := newTestTurn("", "As")
		assert.Equal(t, StatusGameOverComputerWins, tr.round())
		assert.Equal(t, 0, tr.pool.Len())
	})

	t.Run("round recycles an empty queue first", func(t *testing.T) {
		tr := newTestTurn("", "5c")
		tr.hands[Player].Receive(deck.MustParseCards("Kh")...)

		assert.Equal(t, StatusPlayerWins, tr.round())
		assert.Equal(t, 1, tr.hands[Player].Recycles())
	})
}

func TestWarResolution(t *testing.T) {
	t.Parallel()

	t.Run("single war", func(t *testing.T) {
		tr := newTestTurn("5h 2c 3c 4c Kc", "5d 2d 3d 4d Qc")
		require.Equal(t, StatusWar, tr.round())

		st := tr.war(3)
		assert.Equal(t, StatusPlayerWins, st)
		assert.Equal(t, 1, tr.depth)
		assert.Len(t, tr.hands[Player].WinPile(), 10)
		assert.Equal(t, 0, tr.hands[Computer].Size())
		assert.Equal(t, 0, tr.pool.Len())

		last := tr.battles[len(tr.battles)-1]
		assert.Equal(t, [2]int{3, 3}, last.Hidden)
		assert.Equal(t, deck.MustParseCards("Kc")[0], last.Player)
		assert.Equal(t, deck.MustParseCards("Qc")[0], last.Computer)
	})

	t.Run("double war loops with the enlarged pool", func(t *testing.T) {
		tr := newTestTurn("5h 2c 3c 4c 9c 6c 7c 8c 2h", "5d 2d 3d 4d 9d 6d 7d 8d Ad")
		require.Equal(t, StatusWar, tr.round())

		st := tr.war(3)
		assert.Equal(t, StatusComputerWins, st)
		assert.Equal(t, 2, tr.depth)
		assert.Len(t, tr.hands[Computer].WinPile(), 18)
		assert.Equal(t, 0, tr.hands[Player].Size())

		require.Len(t, tr.battles, 3)
		assert.Equal(t, StatusWar, tr.battles[0].Status)
		assert.Equal(t, StatusWar, tr.battles[1].Status)
		assert.Equal(t, StatusComputerWins, tr.battles[2].Status)
	})

	t.Run("short hand loses the game", func(t *testing.T) {
		tr := newTestTurn("5h 2c 3c", "5d 7c 8c 9c Tc")
		require.Equal(t, StatusWar, tr.round())

		st := tr.war(3)
		assert.Equal(t, StatusGameOverComputerWins, st)
		assert.Equal(t, 8, tr.hands[Computer].Size(), "winner takes the pool and the loser's cards")
		assert.True(t, tr.hands[Player].IsOut())
		assert.Equal(t, 0, tr.pool.Len())
	})

	t.Run("both short, larger hand wins", func(t *testing.T) {
		tr := newTestTurn("5h 2c 3c", "5d 2d")
		require.Equal(t, StatusWar, tr.round())

		assert.Equal(t, StatusGameOverPlayerWins, tr.war(3))
		assert.Equal(t, 5, tr.hands[Player].Size())
		assert.True(t, tr.hands[Computer].IsOut())
	})

	t.Run("both short and equal is a standoff", func(t *testing.T) {
		tr := newTestTurn("5h 2c", "5d 3d")
		require.Equal(t, StatusWar, tr.round())

		assert.Equal(t, StatusStandoff, tr.war(3))
		assert.Equal(t, 2, tr.hands[Player].Size())
		assert.Equal(t, 2, tr.hands[Computer].Size())
		assert.Contains(t, tr.hands[Player].WinPile(), deck.MustParseCards("5h")[0])
		assert.Contains(t, tr.hands[Computer].WinPile(), deck.MustParseCards("5d")[0])
		assert.Equal(t, 0, tr.pool.Len())
	})

	t.Run("win pile is recycled before declaring a shortfall", func(t *testing.T) {
		tr := newTestTurn("5h", "5d 2d 3d 4d Qd")
		tr.hands[Player].Receive(deck.MustParseCards("Ac Ad Ah As")...)
		require.Equal(t, StatusWar, tr.round())

		assert.Equal(t, StatusPlayerWins, tr.war(3))
		assert.Equal(t, 10, tr.hands[Player].Size())
		assert.Equal(t, 1, tr.hands[Player].Recycles())
	})

	t.Run("zero burn cards", func(t *testing.T) {
		tr := newTestTurn("5h 3c", "5d 2c")
		require.Equal(t, StatusWar, tr.round())

		assert.Equal(t, StatusPlayerWins, tr.war(0))
		assert.Equal(t, [2]int{0, 0}, tr.battles[1].Hidden)
		assert.Equal(t, 4, tr.hands[Player].Size())
	})
}

func TestRulesValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, StandardRules().Validate())
	assert.Equal(t, 54, StandardRules().DeckSize())
	assert.Equal(t, 4, StandardRules().WarStake())

	bad := StandardRules()
	bad.BurnCount = -1
	assert.Error(t, bad.Validate())

	bad = StandardRules()
	bad.BurnCount = MaxBurnCount + 1
	assert.Error(t, bad.Validate())

	bad = StandardRules()
	bad.Deal = deck.DealPolicy(7)
	assert.Error(t, bad.Validate())
}
