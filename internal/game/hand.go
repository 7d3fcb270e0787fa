package game

import (
	"math/rand/v2"

	"github.com/lox/wargame/internal/deck"
)

// Hand is one player's cards: an active queue drawn from the front and a win
// pile of cards won but not yet playable.
type Hand struct {
	active   []deck.Card
	winPile  []deck.Card
	rng      *rand.Rand
	recycles int
}

// NewHand creates a hand whose active queue holds cards in order. The rng
// shuffles the win pile on recycle.
func NewHand(rng *rand.Rand, cards []deck.Card) *Hand {
	if rng == nil {
		panic("rng is required for hand creation")
	}
	active := make([]deck.Card, len(cards))
	copy(active, cards)
	return &Hand{active: active, rng: rng}
}

// Draw removes and returns the front of the active queue. It returns false
// when the queue is empty; it never recycles on its own.
func (h *Hand) Draw() (deck.Card, bool) {
	if len(h.active) == 0 {
		return deck.Card{}, false
	}
	c := h.active[0]
	h.active = h.active[1:]
	return c, true
}

// Receive adds cards to the win pile.
func (h *Hand) Receive(cards ...deck.Card) {
	h.winPile = append(h.winPile, cards...)
}

// Size returns the total number of cards the player holds.
func (h *Hand) Size() int {
	return len(h.active) + len(h.winPile)
}

// IsOut reports whether the player holds no cards at all.
func (h *Hand) IsOut() bool {
	return h.Size() == 0
}

// RecycleIfEmpty shuffles the win pile into the active queue when the queue
// is empty and the pile is not. It reports whether a recycle happened.
func (h *Hand) RecycleIfEmpty() bool {
	if len(h.active) > 0 || len(h.winPile) == 0 {
		return false
	}
	deck.Shuffle(h.winPile, h.rng)
	h.active = append(h.active[:0], h.winPile...)
	h.winPile = h.winPile[:0]
	h.recycles++
	return true
}

// Recycles returns how many times the win pile was shuffled back in.
func (h *Hand) Recycles() int {
	return h.recycles
}

// Active returns a copy of the playable queue, front first.
func (h *Hand) Active() []deck.Card {
	return append([]deck.Card(nil), h.active...)
}

// WinPile returns a copy of the win pile.
func (h *Hand) WinPile() []deck.Card {
	return append([]deck.Card(nil), h.winPile...)
}

// surrender empties the hand and returns every card it held.
func (h *Hand) surrender() []deck.Card {
	out := make([]deck.Card, 0, h.Size())
	out = append(out, h.active...)
	out = append(out, h.winPile...)
	h.active = h.active[:0]
	h.winPile = h.winPile[:0]
	return out
}
