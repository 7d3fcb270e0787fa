// Package history records War games as TOML transcripts.
package history

import (
	"sync"
	"time"

	"github.com/lox/wargame/internal/game"
)

// Recorder is a game.EventSubscriber that builds a transcript of the current
// game. A new deal starts a new transcript.
type Recorder struct {
	mu     sync.Mutex
	gameID string
	seed   int64
	t      Transcript
}

// NewRecorder creates a recorder. gameID and seed are copied into every
// transcript; a zero seed is omitted.
func NewRecorder(gameID string, seed int64) *Recorder {
	return &Recorder{gameID: gameID, seed: seed}
}

// SetGame changes the id and seed used for the next deal.
func (r *Recorder) SetGame(gameID string, seed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gameID = gameID
	r.seed = seed
}

// OnEvent implements game.EventSubscriber.
func (r *Recorder) OnEvent(event game.GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch e := event.(type) {
	case game.GameStartEvent:
		r.t = Transcript{
			Variant: "war",
			GameID:  r.gameID,
			Seed:    r.seed,
			Time:    e.Timestamp().UTC().Format(time.RFC3339),
			Rules: Rules{
				IncludeJokers: e.Rules.IncludeJokers,
				BurnCount:     e.Rules.BurnCount,
				Deal:          e.Rules.Deal.String(),
			},
			Player:   cardCodes(e.Player),
			Computer: cardCodes(e.Computer),
		}
	case game.TurnEvent:
		res := e.Result
		battles := make([]string, len(res.Battles))
		for i, b := range res.Battles {
			battles[i] = FormatBattle(b)
		}
		r.t.Turns = append(r.t.Turns, Turn{
			Number:        res.Turn,
			Status:        res.Status.String(),
			Battles:       battles,
			WarDepth:      res.WarDepth,
			Staked:        res.Staked,
			PlayerCards:   res.PlayerCount,
			ComputerCards: res.ComputerCount,
		})
	case game.GameOverEvent:
		s := e.Stats
		r.t.Result = &Result{
			Winner:      e.Winner.String(),
			Turns:       s.Turns,
			Wars:        s.Wars,
			DoubleWars:  s.DoubleWars,
			MaxWarDepth: s.MaxWarDepth,
			Standoffs:   s.Standoffs,
			Recycles:    []int{s.Recycles[game.Player], s.Recycles[game.Computer]},
		}
	}
}

// Transcript returns a copy of the current transcript.
func (r *Recorder) Transcript() *Transcript {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.t
	t.Player = append([]string(nil), r.t.Player...)
	t.Computer = append([]string(nil), r.t.Computer...)
	t.Turns = append([]Turn(nil), r.t.Turns...)
	if r.t.Result != nil {
		res := *r.t.Result
		t.Result = &res
	}
	return &t
}
