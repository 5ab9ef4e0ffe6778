// Package roomcode generates short, human-typable room codes.
package roomcode

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, upper case: no I, L, O or U.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Length is the number of characters in a room code.
const Length = 6

// Generator produces room codes from the random tail of UUIDv7 values.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand; tests pass
// a deterministic reader.
func NewGenerator(rand io.Reader) *Generator {
	return &Generator{rand: rand}
}

// Generate returns a code using crypto/rand.
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// Generate returns a new code.
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generate room code: %w", err)
	}
	return encode(id), nil
}

// encode takes 30 bits from the last bytes of the UUID. The leading bytes
// of a UUIDv7 are a timestamp and would make codes created together look
// alike.
func encode(id uuid.UUID) string {
	var bits uint64
	for _, b := range id[10:] {
		bits = bits<<8 | uint64(b)
	}
	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[bits&0x1f]
		bits >>= 5
	}
	return string(out)
}

// Normalize upper-cases a user-typed code and maps the characters Crockford
// base32 treats as aliases.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.Map(func(r rune) rune {
		switch r {
		case 'O':
			return '0'
		case 'I', 'L':
			return '1'
		}
		return r
	}, code)
}

// Validate checks that code is a well-formed, normalized room code.
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("room code must be exactly %d characters, got %d", Length, len(code))
	}
	for i, c := range code {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
