package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card notation cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the lowercase suit name used in asset keys.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s >= Clubs && s <= Spades
}

// Color distinguishes the two Jokers.
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	case r == Joker:
		return "X"
	default:
		return "?"
	}
}

func (r Rank) valid() bool {
	return r >= Two && r <= Joker
}

// Card is an immutable playing card. Jokers carry a color instead of a suit.
type Card struct {
	rank  Rank
	suit  Suit
	color Color
	value int
}

// NewCard creates a suited card. It panics on an out-of-range rank or suit,
// which can only come from a bug in the caller.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.valid() || rank == Joker {
		panic(fmt.Sprintf("deck: invalid rank %d", rank))
	}
	if !suit.valid() {
		panic(fmt.Sprintf("deck: invalid suit %d", suit))
	}
	return Card{rank: rank, suit: suit, value: int(rank)}
}

// NewJoker creates the Joker of the given color.
func NewJoker(color Color) Card {
	if color != Red && color != Black {
		panic(fmt.Sprintf("deck: invalid joker color %d", color))
	}
	return Card{rank: Joker, color: color, value: int(Joker)}
}

// Rank returns the card rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card suit. It is meaningless for Jokers.
func (c Card) Suit() Suit { return c.suit }

// Color returns the Joker color, or the suit color for regular cards.
func (c Card) Color() Color {
	switch {
	case c.IsJoker():
		return c.color
	case c.suit.IsRed():
		return Red
	default:
		return Black
	}
}

// Value returns the numeric value used for comparison. Ace is 14 and the
// Joker 15.
func (c Card) Value() int {
	return c.value
}

// IsJoker reports whether the card is a Joker.
func (c Card) IsJoker() bool {
	return c.rank == Joker
}

// IsZero reports whether c is the zero Card, which is never dealt.
func (c Card) IsZero() bool {
	return c.value == 0
}

// Compare returns -1, 0 or 1 comparing the card values only.
func (c Card) Compare(other Card) int {
	switch {
	case c.value < other.value:
		return -1
	case c.value > other.value:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	if c.IsZero() {
		return "--"
	}
	if c.IsJoker() {
		return "🃏" + c.color.String()[:1]
	}
	return fmt.Sprintf("%s%s", c.rank, c.suit)
}

// Code returns the ASCII notation accepted by ParseCard (e.g. "As", "Xr").
func (c Card) Code() string {
	if c.IsJoker() {
		return "X" + c.color.String()[:1]
	}
	return c.rank.String() + suitCodes[c.suit]
}

// AssetKey returns the display asset file name for the card, following the
// card_{suit}_{rank}.png convention.
func (c Card) AssetKey() string {
	if c.IsJoker() {
		return "card_joker_" + c.color.String() + ".png"
	}
	return "card_" + c.suit.Name() + "_" + rankAsset(c.rank) + ".png"
}

// BackAssetKey is the asset shown for face-down cards.
const BackAssetKey = "card_back.png"

func rankAsset(r Rank) string {
	switch r {
	case Jack:
		return "j"
	case Queen:
		return "q"
	case King:
		return "k"
	case Ace:
		return "a"
	default:
		return fmt.Sprintf("%02d", int(r))
	}
}

var suitCodes = map[Suit]string{
	Clubs:    "c",
	Diamonds: "d",
	Hearts:   "h",
	Spades:   "s",
}

// ParseCard parses two-character notation: rank (2-9, T, J, Q, K, A) followed
// by suit (c, d, h, s), or X followed by r/b for Jokers. Case insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	r, sc := strings.ToUpper(s[:1]), strings.ToLower(s[1:])

	if r == "X" {
		switch sc {
		case "r":
			return NewJoker(Red), nil
		case "b":
			return NewJoker(Black), nil
		}
		return Card{}, fmt.Errorf("%w: joker color %q", ErrInvalidCard, sc)
	}

	var rank Rank
	switch r {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		if r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, r)
		}
		rank = Rank(r[0] - '0')
	}

	for suit, code := range suitCodes {
		if code == sc {
			return NewCard(rank, suit), nil
		}
	}
	return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, sc)
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
