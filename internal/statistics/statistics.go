package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/wargame/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	ID          string
	Seed        int64 // RNG seed for this game (for replay)
	Finished    bool  // False when the turn limit stopped the game
	Winner      game.Side
	Turns       int
	Wars        int
	WarTurns    int
	DoubleWars  int
	MaxWarDepth int
	Standoffs   int
	TurnsWon    [2]int
	Recycles    [2]int
}

// ResultFromStats builds a GameResult from an engine's statistics.
func ResultFromStats(id string, seed int64, g *game.Game) GameResult {
	s := g.Stats()
	r := GameResult{
		ID:          id,
		Seed:        seed,
		Turns:       s.Turns,
		Wars:        s.Wars,
		WarTurns:    s.WarTurns,
		DoubleWars:  s.DoubleWars,
		MaxWarDepth: s.MaxWarDepth,
		Standoffs:   s.Standoffs,
		TurnsWon:    s.TurnsWon,
		Recycles:    s.Recycles,
	}
	if winner, ok := g.Winner(); ok {
		r.Finished = true
		r.Winner = winner
	}
	return r
}

// Statistics aggregates simulated games
type Statistics struct {
	Games        int
	Unfinished   int
	PlayerWins   int
	ComputerWins int

	TotalTurns  int
	TotalWars   int
	WarTurns    int
	DoubleWars  int
	Standoffs   int
	MaxWarDepth int
	Recycles    [2]int

	// Turns holds the turn count of every finished game for quantiles.
	Turns []float64
	// LongestGame is the finished game with the most turns.
	LongestGame GameResult
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(r GameResult) {
	s.Games++
	s.TotalTurns += r.Turns
	s.TotalWars += r.Wars
	s.WarTurns += r.WarTurns
	s.DoubleWars += r.DoubleWars
	s.Standoffs += r.Standoffs
	if r.MaxWarDepth > s.MaxWarDepth {
		s.MaxWarDepth = r.MaxWarDepth
	}
	s.Recycles[game.Player] += r.Recycles[game.Player]
	s.Recycles[game.Computer] += r.Recycles[game.Computer]

	if !r.Finished {
		s.Unfinished++
		return
	}

	switch r.Winner {
	case game.Player:
		s.PlayerWins++
	case game.Computer:
		s.ComputerWins++
	}
	s.Turns = append(s.Turns, float64(r.Turns))
	if r.Turns > s.LongestGame.Turns {
		s.LongestGame = r
	}
}

// Finished returns the number of games that produced a winner.
func (s *Statistics) Finished() int {
	return s.Games - s.Unfinished
}

// MeanTurns returns the mean length of finished games
func (s *Statistics) MeanTurns() float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	return stat.Mean(s.Turns, nil)
}

// StdDevTurns returns the sample standard deviation of finished game lengths
func (s *Statistics) StdDevTurns() float64 {
	if len(s.Turns) < 2 {
		return 0
	}
	return stat.StdDev(s.Turns, nil)
}

// StdErrorTurns returns the standard error of the mean game length
func (s *Statistics) StdErrorTurns() float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	return stat.StdErr(s.StdDevTurns(), float64(len(s.Turns)))
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// MedianTurns returns the median length of finished games
func (s *Statistics) MedianTurns() float64 {
	return s.Percentile(0.5)
}

// WarsPerGame returns the mean number of war stages per game
func (s *Statistics) WarsPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalWars) / float64(s.Games)
}

// WarTurnRate returns the fraction of turns that went to war
func (s *Statistics) WarTurnRate() float64 {
	if s.TotalTurns == 0 {
		return 0
	}
	return float64(s.WarTurns) / float64(s.TotalTurns)
}

// PlayerWinRate returns the player's share of finished games
func (s *Statistics) PlayerWinRate() float64 {
	n := s.Finished()
	if n == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(n)
}

// WinRateInterval95 returns the normal-approximation 95% confidence interval
// for the player's win rate.
func (s *Statistics) WinRateInterval95() (float64, float64) {
	n := s.Finished()
	if n == 0 {
		return 0, 0
	}
	p := s.PlayerWinRate()
	margin := distuv.UnitNormal.Quantile(0.975) * math.Sqrt(p*(1-p)/float64(n))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// FairnessPValue returns the two-sided p-value of a z-test that the player
// wins half of all finished games.
func (s *Statistics) FairnessPValue() float64 {
	n := s.Finished()
	if n == 0 {
		return 1
	}
	se := math.Sqrt(0.25 / float64(n))
	z := (s.PlayerWinRate() - 0.5) / se
	return 2 * distuv.UnitNormal.CDF(-math.Abs(z))
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.PlayerWins+s.ComputerWins != s.Finished() {
		return fmt.Errorf("wins (%d player + %d computer) do not match finished games (%d)",
			s.PlayerWins, s.ComputerWins, s.Finished())
	}
	if len(s.Turns) != s.Finished() {
		return fmt.Errorf("turn samples (%d) do not match finished games (%d)", len(s.Turns), s.Finished())
	}
	if s.WarTurns > s.TotalTurns {
		return fmt.Errorf("war turns (%d) exceed total turns (%d)", s.WarTurns, s.TotalTurns)
	}
	if s.DoubleWars > s.WarTurns {
		return fmt.Errorf("double wars (%d) exceed war turns (%d)", s.DoubleWars, s.WarTurns)
	}
	if s.WarTurns > s.TotalWars {
		return fmt.Errorf("war turns (%d) exceed war stages (%d)", s.WarTurns, s.TotalWars)
	}
	return nil
}
