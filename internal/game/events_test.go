package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/wargame/internal/deck"
)

func TestEventFormatter_FormatTurn(t *testing.T) {
	t.Parallel()

	c := deck.MustParseCards("Kc Qc 5h 5d")

	tests := []struct {
		name     string
		opts     FormattingOptions
		result   TurnResult
		expected string
	}{
		{
			name: "plain round",
			result: TurnResult{
				Turn:    3,
				Status:  StatusPlayerWins,
				Battles: []Battle{{Player: c[0], Computer: c[1], Status: StatusPlayerWins}},
			},
			expected: "Turn 3: K♣ vs Q♣: You win the round",
		},
		{
			name: "war with hidden counts",
			opts: FormattingOptions{ShowHidden: true},
			result: TurnResult{
				Turn:   1,
				Status: StatusComputerWins,
				Battles: []Battle{
					{Player: c[2], Computer: c[3], Status: StatusWar},
					{Player: c[1], Computer: c[0], Hidden: [2]int{3, 3}, Status: StatusComputerWins},
				},
			},
			expected: "Turn 1: 5♥ vs 5♦: WAR!\n  [3 face down / 3 face down] Q♣ vs K♣: Computer wins the round",
		},
		{
			name: "counts and custom names",
			opts: FormattingOptions{ShowCounts: true, PlayerName: "Ann", ComputerName: "Bot"},
			result: TurnResult{
				Turn:          2,
				Status:        StatusComputerWins,
				Battles:       []Battle{{Player: c[1], Computer: c[0], Status: StatusComputerWins}},
				PlayerCount:   20,
				ComputerCount: 34,
			},
			expected: "Turn 2: Q♣ vs K♣: Bot wins the round\n  Ann 20, Bot 34",
		},
		{
			name:     "terminal result without battles",
			result:   TurnResult{Turn: 9, Status: StatusGameOverComputerWins},
			expected: "Turn 9: Game over: Computer wins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef := NewEventFormatter(tt.opts)
			assert.Equal(t, tt.expected, ef.FormatTurn(NewTurnEvent(tt.result)))
		})
	}
}

func TestEventFormatter_FormatEvent(t *testing.T) {
	t.Parallel()

	ef := NewEventFormatter(FormattingOptions{})
	start := NewGameStartEvent(StandardRules(), deck.MustParseCards("As Ks"), deck.MustParseCards("2c"))
	assert.Equal(t, "*** DEAL *** You 2 cards, Computer 1 cards (burn 3)", ef.FormatEvent(start))

	over := NewGameOverEvent(Computer, Stats{Turns: 120, Wars: 7})
	assert.Equal(t, "*** GAME OVER *** Computer took every card after 120 turns (7 wars)", ef.FormatEvent(over))
}

func TestEventFormatter_FormatStatus(t *testing.T) {
	t.Parallel()

	ef := NewEventFormatter(FormattingOptions{})
	for _, s := range []Status{
		StatusPlayerWins, StatusComputerWins, StatusWar,
		StatusGameOverPlayerWins, StatusGameOverComputerWins, StatusStandoff,
	} {
		assert.NotEqual(t, s.String(), ef.FormatStatus(s), "status %s has display text", s)
	}
}

func TestEventBusDeliversInOrder(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) { got = append(got, "a:"+e.EventType().String()) }))
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) { got = append(got, "b:"+e.EventType().String()) }))

	bus.Publish(NewTurnEvent(TurnResult{}))
	assert.Equal(t, []string{"a:turn", "b:turn"}, got)
}

func TestGameStartEventCopiesHands(t *testing.T) {
	t.Parallel()

	player := deck.MustParseCards("As Ks")
	e := NewGameStartEvent(StandardRules(), player, nil)
	player[0] = deck.MustParseCards("2c")[0]
	assert.Equal(t, deck.MustParseCards("As")[0], e.Player[0])
}
