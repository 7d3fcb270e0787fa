package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/wargame/internal/deck"
)

// Stats counts what happened over a game so far.
type Stats struct {
	Turns int
	// Wars is the number of war stages fought across all turns.
	Wars int
	// WarTurns is the number of turns that went to war at least once.
	WarTurns int
	// DoubleWars is the number of turns with two or more war stages.
	DoubleWars  int
	MaxWarDepth int
	Standoffs   int
	TurnsWon    [2]int
	Recycles    [2]int
}

// Game is the War engine: two hands, the pool and the turn loop.
type Game struct {
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger
	bus    *SimpleEventBus

	hands [2]*Hand
	pool  Pool
	total int
	turns int
	stats Stats
	ended bool
}

// NewGame creates a game and deals the first hands. The rng is required so
// randomness is explicit; NewGame panics if it is nil or the rules are
// invalid.
func NewGame(rng *rand.Rand, opts ...Option) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}

	cfg := &gameConfig{rules: StandardRules()}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.rules.Validate(); err != nil {
		panic(fmt.Sprintf("invalid rules: %v", err))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	g := &Game{
		rules:  cfg.rules,
		rng:    rng,
		logger: cfg.logger,
		bus:    NewEventBus(),
	}
	for _, s := range cfg.subscribers {
		g.bus.Subscribe(s)
	}

	g.Initialize()
	return g
}

// Initialize builds and shuffles a fresh deck and deals it to both hands,
// discarding any previous game state.
func (g *Game) Initialize() {
	d := deck.NewDeck(g.rules.IncludeJokers, g.rng)
	d.Shuffle()
	player, computer := d.Split(g.rules.Deal)
	g.start(player, computer)
}

// Deal starts a game from explicit hands, front of each slice first. The
// total card count becomes len(player)+len(computer).
func (g *Game) Deal(player, computer []deck.Card) {
	g.start(player, computer)
}

func (g *Game) start(player, computer []deck.Card) {
	g.hands = [2]*Hand{NewHand(g.rng, player), NewHand(g.rng, computer)}
	g.pool.Clear()
	g.total = len(player) + len(computer)
	g.turns = 0
	g.stats = Stats{}
	g.ended = false

	g.logger.Debug("Dealt hands",
		"player_cards", len(player),
		"computer_cards", len(computer),
		"jokers", g.rules.IncludeJokers,
		"burn", g.rules.BurnCount)
	g.bus.Publish(NewGameStartEvent(g.rules, player, computer))
}

// Subscribe registers an event subscriber.
func (g *Game) Subscribe(s EventSubscriber) {
	g.bus.Subscribe(s)
}

// PlayTurn resolves one complete turn, including every war it triggers.
// Once the game is over it returns the terminal status without changing
// anything.
func (g *Game) PlayTurn() TurnResult {
	if g.IsGameOver() {
		return g.terminalResult()
	}

	g.turns++
	t := &turn{hands: g.hands, pool: &g.pool}
	if t.round() == StatusWar {
		t.war(g.rules.BurnCount)
	}

	res := TurnResult{
		Turn:          g.turns,
		Status:        t.status(),
		Battles:       t.battles,
		WarDepth:      t.depth,
		Staked:        t.staked,
		PlayerCount:   g.PlayerCardCount(),
		ComputerCount: g.ComputerCardCount(),
	}
	for i := len(t.battles) - 1; i >= 0; i-- {
		b := t.battles[i]
		if !b.Player.IsZero() || !b.Computer.IsZero() {
			res.Player, res.Computer = b.Player, b.Computer
			break
		}
	}

	g.recordStats(res)
	g.logger.Debug("Turn resolved",
		"turn", res.Turn,
		"status", res.Status,
		"player", res.Player,
		"computer", res.Computer,
		"war_depth", res.WarDepth,
		"staked", res.Staked,
		"player_cards", res.PlayerCount,
		"computer_cards", res.ComputerCount)
	g.bus.Publish(NewTurnEvent(res))

	if g.IsGameOver() && !g.ended {
		g.ended = true
		winner, _ := g.Winner()
		g.logger.Debug("Game over", "winner", winner, "turns", g.turns)
		g.bus.Publish(NewGameOverEvent(winner, g.Stats()))
	}
	return res
}

func (g *Game) terminalResult() TurnResult {
	winner := Player
	if g.hands[Player].IsOut() {
		winner = Computer
	}
	return TurnResult{
		Turn:          g.turns,
		Status:        gameOverStatus(winner),
		PlayerCount:   g.PlayerCardCount(),
		ComputerCount: g.ComputerCardCount(),
	}
}

func (g *Game) recordStats(res TurnResult) {
	g.stats.Turns = g.turns
	g.stats.Wars += res.WarDepth
	if res.WarDepth > 0 {
		g.stats.WarTurns++
	}
	if res.WarDepth > 1 {
		g.stats.DoubleWars++
	}
	if res.WarDepth > g.stats.MaxWarDepth {
		g.stats.MaxWarDepth = res.WarDepth
	}
	if res.Status == StatusStandoff {
		g.stats.Standoffs++
	}
	if side, ok := res.Status.Winner(); ok {
		g.stats.TurnsWon[side]++
	}
}

// IsGameOver reports whether a side has run out of cards or holds them all.
func (g *Game) IsGameOver() bool {
	for _, h := range g.hands {
		if n := h.Size(); n == 0 || n == g.total {
			return true
		}
	}
	return false
}

// Winner returns the side holding every card once the game is over.
func (g *Game) Winner() (Side, bool) {
	if !g.IsGameOver() || g.total == 0 {
		return 0, false
	}
	if g.hands[Player].IsOut() {
		return Computer, true
	}
	return Player, true
}

// PlayerCardCount returns the player's total cards, active and won.
func (g *Game) PlayerCardCount() int {
	return g.hands[Player].Size()
}

// ComputerCardCount returns the computer's total cards, active and won.
func (g *Game) ComputerCardCount() int {
	return g.hands[Computer].Size()
}

// CardCount returns the total cards held by side.
func (g *Game) CardCount(side Side) int {
	return g.hands[side].Size()
}

// Piles returns the sizes of side's active queue and win pile.
func (g *Game) Piles(side Side) (active, won int) {
	h := g.hands[side]
	return len(h.active), len(h.winPile)
}

// TotalCards returns the number of cards dealt at the start of the game.
func (g *Game) TotalCards() int {
	return g.total
}

// Turns returns the number of turns played.
func (g *Game) Turns() int {
	return g.turns
}

// Rules returns the ruleset in use.
func (g *Game) Rules() Rules {
	return g.rules
}

// Stats returns a snapshot of the game statistics.
func (g *Game) Stats() Stats {
	s := g.stats
	s.Turns = g.turns
	for _, side := range sides {
		s.Recycles[side] = g.hands[side].Recycles()
	}
	return s
}

// ValidateConservation checks that no card was created or lost.
func (g *Game) ValidateConservation() error {
	held := g.PlayerCardCount() + g.ComputerCardCount() + g.pool.Len()
	if held != g.total {
		return fmt.Errorf("card conservation violated: %d player + %d computer + %d pool = %d, want %d",
			g.PlayerCardCount(), g.ComputerCardCount(), g.pool.Len(), held, g.total)
	}
	if g.pool.Len() != 0 {
		return fmt.Errorf("pool holds %d cards between turns", g.pool.Len())
	}
	return nil
}
