package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

const (
	// DefaultSampleThreshold is the pool size below which guesses are scored
	// by simulated feedback instead of letter frequencies.
	DefaultSampleThreshold = 250
	// DefaultSampleBudget bounds guesses×samples per sampled selection.
	DefaultSampleBudget = 12500
	// DefaultMaxTurns caps a solve; an unsolved game scores this value.
	DefaultMaxTurns = 10
)

var (
	// ErrNoCandidates is returned when filtering leaves nothing to guess.
	ErrNoCandidates = errors.New("solver: no candidates remaining")
	// ErrBadConfig is returned by Config.Validate.
	ErrBadConfig = errors.New("solver: invalid config")
)

// Config holds the tuning knobs of a solve session.
type Config struct {
	Policy          game.Policy // duplicate-letter rule for masks and filtering
	SampleThreshold int         // |pool| < threshold → SampledMaskEntropy
	SampleBudget    int         // k = min(budget/|pool|, |pool|)
	MaxTurns        int         // turn cap and failure score
	UseMatrix       bool        // enable the ConstraintMatrix pre-filter

	// Logger receives per-turn debug events. The zero value discards them.
	Logger zerolog.Logger
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Policy:          game.PolicyFaithful,
		SampleThreshold: DefaultSampleThreshold,
		SampleBudget:    DefaultSampleBudget,
		MaxTurns:        DefaultMaxTurns,
		UseMatrix:       true,
		Logger:          zerolog.Nop(),
	}
}

// Validate checks that every knob is usable.
func (c Config) Validate() error {
	switch {
	case c.Policy != game.PolicyFaithful && c.Policy != game.PolicyStandard:
		return fmt.Errorf("%w: unknown policy %s", ErrBadConfig, c.Policy)
	case c.SampleThreshold < 1:
		return fmt.Errorf("%w: sample threshold %d < 1", ErrBadConfig, c.SampleThreshold)
	case c.SampleBudget < 1:
		return fmt.Errorf("%w: sample budget %d < 1", ErrBadConfig, c.SampleBudget)
	case c.MaxTurns < 1:
		return fmt.Errorf("%w: max turns %d < 1", ErrBadConfig, c.MaxTurns)
	}
	return nil
}

// matrixEnabled reports whether the matrix pre-filter is sound for this config.
// Its Absent rule clears a letter everywhere, which only matches the faithful
// policy: there an Absent mark means the letter is nowhere in the answer.
func (c Config) matrixEnabled() bool {
	return c.UseMatrix && c.Policy == game.PolicyFaithful
}
