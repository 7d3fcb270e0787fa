package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/fileutil"
	"github.com/lox/wargame/internal/game"
)

// Encode writes the transcript to the provided writer in TOML format.
func Encode(w io.Writer, t *Transcript) error {
	if t == nil {
		return fmt.Errorf("history: transcript is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(t)
}

// Decode reads a transcript written by Encode.
func Decode(r io.Reader) (*Transcript, error) {
	var t Transcript
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	return &t, nil
}

// Save writes the transcript to path atomically.
func Save(path string, t *Transcript) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, t)
	})
}

// FormatBattle renders a battle as "[3/3] Kc Qc player_wins". The hidden
// counts are omitted for the opening round and a missing card is "--".
func FormatBattle(b game.Battle) string {
	var sb strings.Builder
	if b.Hidden != [2]int{} {
		fmt.Fprintf(&sb, "[%d/%d] ", b.Hidden[game.Player], b.Hidden[game.Computer])
	}
	sb.WriteString(cardCode(b.Player))
	sb.WriteByte(' ')
	sb.WriteString(cardCode(b.Computer))
	sb.WriteByte(' ')
	sb.WriteString(b.Status.String())
	return sb.String()
}

func cardCode(c deck.Card) string {
	if c.IsZero() {
		return "--"
	}
	return c.Code()
}

func cardCodes(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = cardCode(c)
	}
	return out
}
