package game

import "github.com/lox/wargame/internal/deck"

// Side identifies one of the two players.
type Side int

const (
	Player Side = iota
	Computer
)

var sides = [2]Side{Player, Computer}

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Status is the closed set of outcomes a turn or battle can report.
type Status int

const (
	StatusPlayerWins Status = iota
	StatusComputerWins
	StatusWar
	StatusGameOverPlayerWins
	StatusGameOverComputerWins
	// StatusStandoff ends a turn in which neither side could finish a war
	// and both held the same number of cards. Stakes go back to their owners.
	StatusStandoff
)

func (s Status) String() string {
	switch s {
	case StatusPlayerWins:
		return "player_wins"
	case StatusComputerWins:
		return "computer_wins"
	case StatusWar:
		return "war"
	case StatusGameOverPlayerWins:
		return "game_over_player_wins"
	case StatusGameOverComputerWins:
		return "game_over_computer_wins"
	case StatusStandoff:
		return "standoff"
	default:
		return "unknown"
	}
}

// IsGameOver reports whether the status ends the game.
func (s Status) IsGameOver() bool {
	return s == StatusGameOverPlayerWins || s == StatusGameOverComputerWins
}

// Winner returns the side favoured by the status, if any.
func (s Status) Winner() (Side, bool) {
	switch s {
	case StatusPlayerWins, StatusGameOverPlayerWins:
		return Player, true
	case StatusComputerWins, StatusGameOverComputerWins:
		return Computer, true
	default:
		return 0, false
	}
}

func winStatus(s Side) Status {
	if s == Player {
		return StatusPlayerWins
	}
	return StatusComputerWins
}

func gameOverStatus(s Side) Status {
	if s == Player {
		return StatusGameOverPlayerWins
	}
	return StatusGameOverComputerWins
}

// Battle is one face-up comparison within a turn: the opening round or a
// war stage. Cards are zero when a side could not reveal one.
type Battle struct {
	Player   deck.Card
	Computer deck.Card
	// Hidden counts the face-down cards each side staked before revealing.
	Hidden [2]int
	Status Status
}

// Card returns the card revealed by side.
func (b Battle) Card(s Side) deck.Card {
	if s == Player {
		return b.Player
	}
	return b.Computer
}

// TurnResult describes a completed turn. It is a value; the engine keeps no
// reference to it.
type TurnResult struct {
	Turn   int
	Status Status

	// Player and Computer are the last cards revealed: the round cards, or
	// the deciding cards of the final war stage.
	Player   deck.Card
	Computer deck.Card

	Battles  []Battle
	WarDepth int
	// Staked is the number of cards that changed hands.
	Staked int

	PlayerCount   int
	ComputerCount int
}

// Wars reports whether the turn went to war.
func (r TurnResult) Wars() bool {
	return r.WarDepth > 0
}
