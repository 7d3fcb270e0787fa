// Package gameid generates sortable identifiers for games: a UUIDv7 encoded
// as 26 characters of Crockford base32, in the style of TypeID.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded id.
const Length = 26

// Generator creates game ids from a random source
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading randomness from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new game ID using crypto/rand
func Generate() string {
	id, err := NewGenerator(nil).New()
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return id
}

// New creates a new game ID.
func (g *Generator) New() (string, error) {
	var (
		u   uuid.UUID
		err error
	)
	if g.rand == nil {
		u, err = uuid.NewV7()
	} else {
		u, err = uuid.NewV7FromReader(g.rand)
	}
	if err != nil {
		return "", fmt.Errorf("generate uuidv7: %w", err)
	}
	return Encode(u), nil
}

// Encode encodes a UUID as a 26-character base32 string. The 128 bits are
// read as a 130-bit number with two leading zero bits, so the first
// character is always 0-7.
func Encode(u uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(Length)
	for i := range Length {
		var v byte
		for j := range 5 {
			v = v<<1 | bit(u, i*5-2+j)
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

// Parse decodes an id produced by Encode.
func Parse(id string) (uuid.UUID, error) {
	var u uuid.UUID
	if err := Validate(id); err != nil {
		return u, err
	}
	for i := range Length {
		v := strings.IndexByte(alphabet, id[i])
		for j := range 5 {
			k := i*5 - 2 + j
			if k < 0 || v&(1<<(4-j)) == 0 {
				continue
			}
			u[k/8] |= 1 << (7 - k%8)
		}
	}
	return u, nil
}

// bit returns bit k of u counting from the most significant; negative
// positions are the zero padding.
func bit(u uuid.UUID, k int) byte {
	if k < 0 {
		return 0
	}
	return (u[k/8] >> (7 - k%8)) & 1
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	// The first character carries only the top three bits
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
