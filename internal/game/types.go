// apps/go-solver/internal/game/types.go
//
// Core type definitions for the six-letter game.
// Defines:
//   - Mark: per-letter feedback (absent/present/correct).
//   - Mask: feedback for a whole guess, with a compact base-3 key.
//   - Policy: duplicate-letter rule used when computing masks.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"fmt"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	Absent  Mark = iota // letter not in the answer (or no unmatched copy left)
	Present             // letter in the answer at another position
	Correct             // right letter, right position
)

// String returns the lowercase name used in JSON payloads.
func (m Mark) String() string {
	switch m {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("mark(%d)", uint8(m))
}

// MarshalText encodes a Mark as its name.
func (m Mark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText accepts the names produced by MarshalText.
func (m *Mark) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "absent":
		*m = Absent
	case "present":
		*m = Present
	case "correct":
		*m = Correct
	default:
		return invalid(string(b), "unknown mark")
	}
	return nil
}

// MaskKeys is the number of distinct masks (3^WordLen).
const MaskKeys = 729

// Mask is the feedback for one guess.
type Mask [WordLen]Mark

// Key packs the mask into [0, MaskKeys) as a base-3 number, position 0 most significant.
func (m Mask) Key() int {
	k := 0
	for _, x := range m {
		k = k*3 + int(x)
	}
	return k
}

// Solved reports whether every position is Correct.
func (m Mask) Solved() bool {
	for _, x := range m {
		if x != Correct {
			return false
		}
	}
	return true
}

// String renders the mask compactly, e.g. "CCCCCP".
func (m Mask) String() string {
	var b [WordLen]byte
	for i, x := range m {
		switch x {
		case Correct:
			b[i] = 'C'
		case Present:
			b[i] = 'P'
		default:
			b[i] = 'A'
		}
	}
	return string(b[:])
}

// MarshalText encodes the mask in the compact "CPA" form.
func (m Mask) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText is ParseMask for encoding/json.
func (m *Mask) UnmarshalText(b []byte) error {
	v, err := ParseMask(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMask reads feedback observed outside the solver. Each position is one of
// C/P/A (case-insensitive), 2/1/0, or the tile emoji 🟩/🟨/⬛.
func ParseMask(s string) (Mask, error) {
	var m Mask
	i := 0
	for _, r := range s {
		if i >= WordLen {
			return m, invalid(s, "too many positions")
		}
		switch r {
		case 'C', 'c', 'G', 'g', '2', '🟩':
			m[i] = Correct
		case 'P', 'p', 'Y', 'y', '1', '🟨':
			m[i] = Present
		case 'A', 'a', '0', '⬛', '⬜':
			m[i] = Absent
		default:
			return m, invalid(s, fmt.Sprintf("unknown mark %q", r))
		}
		i++
	}
	if i != WordLen {
		return m, invalid(s, fmt.Sprintf("want %d positions, got %d", WordLen, i))
	}
	return m, nil
}

// Game holds the state of a single interactive game session.
type Game struct {
	ID       string // Unique game identifier.
	Answer   Word   // The solution word.
	Policy   Policy // Duplicate-letter rule used to score guesses.
	Rows     int    // Maximum number of guesses allowed.
	Guesses  []Word // Guesses made so far.
	Marks    []Mask // Feedback for each guess, parallel to Guesses.
	Finished bool   // True once the game is over (won or lost).
	Won      bool   // True if the game was finished with a win.
}
