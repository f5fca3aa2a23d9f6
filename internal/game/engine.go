// apps/go-solver/internal/game/engine.go
//
// Game engine for a single interactive session.
// Responsibilities:
//   - Create new games against a fixed answer.
//   - Validate and apply guesses (codec rules + dictionary membership).
//   - Score guesses with the game's duplicate-letter policy.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary is injected so the engine holds no package-level word state.
//   - Game IDs are UUIDv4 strings.

package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DefaultRows is the number of guesses an interactive game allows.
const DefaultRows = 10

var (
	// ErrGameFinished is returned when guessing after the game ended.
	ErrGameFinished = errors.New("game: finished")
	// ErrUnknownWord is returned for guesses missing from the dictionary.
	ErrUnknownWord = errors.New("game: not in word list")
)

// Dictionary answers list-membership questions for guesses.
type Dictionary interface {
	Contains(text string) bool
}

// New constructs a new game instance for answer.
func New(answer Word, policy Policy) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Answer:  answer,
		Policy:  policy,
		Rows:    DefaultRows,
		Guesses: []Word{},
		Marks:   []Mask{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the mask, the new state string ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must encode as a 6-letter A–Z word (input is trimmed and upper-cased).
//   - Guess must be present in dict, when dict is non-nil.
func (g *Game) ApplyGuess(text string, dict Dictionary) (Mask, string, error) {
	if g.Finished {
		return Mask{}, g.State(), ErrGameFinished
	}
	text = strings.ToUpper(strings.TrimSpace(text))
	guess, err := Encode(text)
	if err != nil {
		return Mask{}, g.State(), err
	}
	if dict != nil && !dict.Contains(text) {
		return Mask{}, g.State(), ErrUnknownWord
	}

	mask := ComputeMask(g.Answer, guess, g.Policy)
	g.Guesses = append(g.Guesses, guess)
	g.Marks = append(g.Marks, mask)

	if mask.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return mask, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
