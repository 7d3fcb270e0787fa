package game

import (
	"fmt"

	"github.com/lox/wargame/internal/deck"
)

// MaxBurnCount bounds the number of hidden cards staked per side in a war.
const MaxBurnCount = 10

// Rules holds the named parameters of the ruleset.
type Rules struct {
	IncludeJokers bool
	BurnCount     int
	Deal          deck.DealPolicy
}

// StandardRules returns the ruleset used unless configured otherwise: 54
// cards including both Jokers, three hidden cards per war, alternate deal.
func StandardRules() Rules {
	return Rules{
		IncludeJokers: true,
		BurnCount:     3,
		Deal:          deck.DealAlternate,
	}
}

// DeckSize returns the number of cards in play under these rules.
func (r Rules) DeckSize() int {
	return deck.Size(r.IncludeJokers)
}

// WarStake is the minimum number of cards a side must hold to fight a war.
func (r Rules) WarStake() int {
	return r.BurnCount + 1
}

// Validate checks that the rules can be played.
func (r Rules) Validate() error {
	if r.BurnCount < 0 || r.BurnCount > MaxBurnCount {
		return fmt.Errorf("burn count must be between 0 and %d, got %d", MaxBurnCount, r.BurnCount)
	}
	if r.Deal != deck.DealAlternate && r.Deal != deck.DealHalves {
		return fmt.Errorf("unknown deal policy %d", r.Deal)
	}
	return nil
}
