package deck

import (
	"fmt"
	"math/rand/v2"
)

// DealPolicy controls how a deck is split between the two players.
type DealPolicy int

const (
	// DealAlternate deals one card at a time, player first.
	DealAlternate DealPolicy = iota
	// DealHalves gives the first half to the player and the rest to the computer.
	DealHalves
)

func (p DealPolicy) String() string {
	switch p {
	case DealAlternate:
		return "alternate"
	case DealHalves:
		return "halves"
	default:
		return "unknown"
	}
}

// ParseDealPolicy parses "alternate" or "halves".
func ParseDealPolicy(s string) (DealPolicy, error) {
	switch s {
	case "alternate", "":
		return DealAlternate, nil
	case "halves":
		return DealHalves, nil
	default:
		return 0, fmt.Errorf("unknown deal policy %q", s)
	}
}

// Size returns the number of cards Build produces.
func Size(includeJokers bool) int {
	if includeJokers {
		return 54
	}
	return 52
}

// Build returns the full ordered card set: every suit and rank, followed by
// the red and black Jokers when includeJokers is set.
func Build(includeJokers bool) []Card {
	cards := make([]Card, 0, Size(includeJokers))
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	if includeJokers {
		cards = append(cards, NewJoker(Red), NewJoker(Black))
	}
	return cards
}

// Shuffle permutes cards in place using Fisher-Yates.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deck represents the cards of one game until they are dealt
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates an unshuffled deck with explicit RNG
func NewDeck(includeJokers bool, rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	return &Deck{cards: Build(includeJokers), rng: rng}
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	Shuffle(d.cards, d.rng)
}

// Cards returns a copy of the cards in deck order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Split deals every card into two piles and leaves the deck empty. With an
// odd card count the player receives the extra card.
func (d *Deck) Split(policy DealPolicy) (player, computer []Card) {
	n := len(d.cards)
	player = make([]Card, 0, (n+1)/2)
	computer = make([]Card, 0, n/2)

	switch policy {
	case DealHalves:
		half := (n + 1) / 2
		player = append(player, d.cards[:half]...)
		computer = append(computer, d.cards[half:]...)
	default:
		for i, c := range d.cards {
			if i%2 == 0 {
				player = append(player, c)
			} else {
				computer = append(computer, c)
			}
		}
	}

	d.cards = nil
	return player, computer
}
