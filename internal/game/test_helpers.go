package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/randutil"
)

// quietLogger returns a logger that discards output, for tests.
func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestTurn builds a turn over two hands parsed from card notation.
func newTestTurn(player, computer string) *turn {
	rng := randutil.New(1)
	return &turn{
		hands: [2]*Hand{
			NewHand(rng, deck.MustParseCards(player)),
			NewHand(rng, deck.MustParseCards(computer)),
		},
		pool: &Pool{},
	}
}

// newDealtGame creates a game with explicit hands and standard rules unless
// overridden by opts.
func newDealtGame(player, computer string, opts ...Option) *Game {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	g := NewGame(randutil.New(42), opts...)
	g.Deal(deck.MustParseCards(player), deck.MustParseCards(computer))
	return g
}
