package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowHidden   bool // Include face-down card counts for each war stage
	ShowCounts   bool // Append both card counts after each turn
	PlayerName   string
	ComputerName string
}

// EventFormatter provides centralized formatting for game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	if opts.PlayerName == "" {
		opts.PlayerName = "You"
	}
	if opts.ComputerName == "" {
		opts.ComputerName = "Computer"
	}
	return &EventFormatter{opts: opts}
}

func (ef *EventFormatter) name(s Side) string {
	if s == Player {
		return ef.opts.PlayerName
	}
	return ef.opts.ComputerName
}

// FormatGameStart formats a deal.
func (ef *EventFormatter) FormatGameStart(event GameStartEvent) string {
	return fmt.Sprintf("*** DEAL *** %s %d cards, %s %d cards (burn %d)",
		ef.opts.PlayerName, len(event.Player),
		ef.opts.ComputerName, len(event.Computer),
		event.Rules.BurnCount)
}

// FormatStatus returns the headline for a status.
func (ef *EventFormatter) FormatStatus(s Status) string {
	switch s {
	case StatusPlayerWins:
		return fmt.Sprintf("%s win the round", ef.opts.PlayerName)
	case StatusComputerWins:
		return fmt.Sprintf("%s wins the round", ef.opts.ComputerName)
	case StatusWar:
		return "WAR!"
	case StatusGameOverPlayerWins:
		return fmt.Sprintf("Game over: %s win", ef.opts.PlayerName)
	case StatusGameOverComputerWins:
		return fmt.Sprintf("Game over: %s wins", ef.opts.ComputerName)
	case StatusStandoff:
		return "Standoff: stakes returned"
	default:
		return s.String()
	}
}

// FormatBattle formats one face-up comparison.
func (ef *EventFormatter) FormatBattle(b Battle) string {
	var sb strings.Builder
	if ef.opts.ShowHidden && (b.Hidden[Player] > 0 || b.Hidden[Computer] > 0) {
		fmt.Fprintf(&sb, "[%d face down / %d face down] ", b.Hidden[Player], b.Hidden[Computer])
	}
	fmt.Fprintf(&sb, "%s vs %s: %s", b.Player, b.Computer, ef.FormatStatus(b.Status))
	return sb.String()
}

// FormatTurn formats a turn as one line per battle.
func (ef *EventFormatter) FormatTurn(event TurnEvent) string {
	r := event.Result
	lines := make([]string, 0, len(r.Battles)+1)
	for i, b := range r.Battles {
		line := ef.FormatBattle(b)
		if i == 0 {
			line = fmt.Sprintf("Turn %d: %s", r.Turn, line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("Turn %d: %s", r.Turn, ef.FormatStatus(r.Status)))
	}
	if ef.opts.ShowCounts {
		lines = append(lines, fmt.Sprintf("  %s %d, %s %d",
			ef.opts.PlayerName, r.PlayerCount, ef.opts.ComputerName, r.ComputerCount))
	}
	return strings.Join(lines, "\n")
}

// FormatGameOver formats the end of a game.
func (ef *EventFormatter) FormatGameOver(event GameOverEvent) string {
	return fmt.Sprintf("*** GAME OVER *** %s took every card after %d turns (%d wars)",
		ef.name(event.Winner), event.Stats.Turns, event.Stats.Wars)
}

// FormatEvent dispatches to the formatter for the event's type.
func (ef *EventFormatter) FormatEvent(event GameEvent) string {
	switch e := event.(type) {
	case GameStartEvent:
		return ef.FormatGameStart(e)
	case TurnEvent:
		return ef.FormatTurn(e)
	case GameOverEvent:
		return ef.FormatGameOver(e)
	default:
		return string(event.EventType())
	}
}
