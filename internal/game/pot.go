package game

import "github.com/lox/wargame/internal/deck"

// Pool holds the cards at risk during a turn and remembers who staked each.
type Pool struct {
	cards  []deck.Card
	owners []Side
}

// Add stakes a card on behalf of side.
func (p *Pool) Add(side Side, c deck.Card) {
	p.cards = append(p.cards, c)
	p.owners = append(p.owners, side)
}

// Len returns the number of staked cards.
func (p *Pool) Len() int {
	return len(p.cards)
}

// Cards returns a copy of the staked cards in staking order.
func (p *Pool) Cards() []deck.Card {
	return append([]deck.Card(nil), p.cards...)
}

// Contributed returns how many cards side has staked.
func (p *Pool) Contributed(side Side) int {
	n := 0
	for _, o := range p.owners {
		if o == side {
			n++
		}
	}
	return n
}

// Take empties the pool and returns its cards.
func (p *Pool) Take() []deck.Card {
	out := p.cards
	p.cards = nil
	p.owners = nil
	return out
}

// awardTo moves the whole pool into the winner's win pile and returns the
// number of cards moved.
func (p *Pool) awardTo(h *Hand) int {
	cards := p.Take()
	h.Receive(cards...)
	return len(cards)
}

// returnStakes gives every card back to the side that staked it.
func (p *Pool) returnStakes(hands [2]*Hand) {
	for i, c := range p.cards {
		hands[p.owners[i]].Receive(c)
	}
	p.cards = nil
	p.owners = nil
}

// Clear discards the pool contents. Used only when a game is reset.
func (p *Pool) Clear() {
	p.cards = nil
	p.owners = nil
}
