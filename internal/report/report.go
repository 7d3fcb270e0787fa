// Package report writes simulation results: a CSV row per game and a
// plain-text summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lox/wargame/internal/fileutil"
	"github.com/lox/wargame/internal/game"
	"github.com/lox/wargame/internal/statistics"
)

// Header is the CSV column layout written by WriteCSV.
var Header = []string{
	"game_id", "seed", "finished", "winner", "turns", "wars", "war_turns",
	"double_wars", "max_war_depth", "standoffs", "player_turns_won",
	"computer_turns_won", "player_recycles", "computer_recycles",
}

// WriteCSV writes one row per game.
func WriteCSV(w io.Writer, results []statistics.GameResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		winner := ""
		if r.Finished {
			winner = r.Winner.String()
		}
		row := []string{
			r.ID,
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatBool(r.Finished),
			winner,
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Wars),
			strconv.Itoa(r.WarTurns),
			strconv.Itoa(r.DoubleWars),
			strconv.Itoa(r.MaxWarDepth),
			strconv.Itoa(r.Standoffs),
			strconv.Itoa(r.TurnsWon[game.Player]),
			strconv.Itoa(r.TurnsWon[game.Computer]),
			strconv.Itoa(r.Recycles[game.Player]),
			strconv.Itoa(r.Recycles[game.Computer]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the CSV report to path atomically.
func SaveCSV(path string, results []statistics.GameResult) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteCSV(w, results)
	})
}

// WriteSummary prints a summary of simulation results
func WriteSummary(w io.Writer, stats *statistics.Statistics, rules game.Rules) {
	fmt.Fprintf(w, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(w, "Rules: jokers=%v burn=%d deal=%s\n", rules.IncludeJokers, rules.BurnCount, rules.Deal)
	fmt.Fprintf(w, "Games played: %d (%d finished, %d hit the turn limit)\n",
		stats.Games, stats.Finished(), stats.Unfinished)

	fmt.Fprintf(w, "\n=== WINNERS ===\n")
	low, high := stats.WinRateInterval95()
	fmt.Fprintf(w, "Player: %d, Computer: %d\n", stats.PlayerWins, stats.ComputerWins)
	fmt.Fprintf(w, "Player win rate: %.2f%% (95%% CI: [%.2f%%, %.2f%%])\n",
		stats.PlayerWinRate()*100, low*100, high*100)
	fmt.Fprintf(w, "Fairness p-value: %.4f\n", stats.FairnessPValue())

	fmt.Fprintf(w, "\n=== GAME LENGTH (turns) ===\n")
	fmt.Fprintf(w, "Mean: %.1f, Median: %.1f, Std Dev: %.1f, Std Error: %.2f\n",
		stats.MeanTurns(), stats.MedianTurns(), stats.StdDevTurns(), stats.StdErrorTurns())
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	if stats.LongestGame.Turns > 0 {
		fmt.Fprintf(w, "Longest game: %d turns (id %s, seed %d)\n",
			stats.LongestGame.Turns, stats.LongestGame.ID, stats.LongestGame.Seed)
	}

	fmt.Fprintf(w, "\n=== WARS ===\n")
	fmt.Fprintf(w, "War stages: %d (%.2f per game)\n", stats.TotalWars, stats.WarsPerGame())
	fmt.Fprintf(w, "Turns with war: %d (%.2f%% of turns)\n", stats.WarTurns, stats.WarTurnRate()*100)
	fmt.Fprintf(w, "Double wars: %d, deepest war: %d stages\n", stats.DoubleWars, stats.MaxWarDepth)
	fmt.Fprintf(w, "Standoffs: %d\n", stats.Standoffs)
	fmt.Fprintf(w, "Recycles: player %d, computer %d\n",
		stats.Recycles[game.Player], stats.Recycles[game.Computer])
}
