package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Step records one turn of a solve.
type Step struct {
	Guess    game.Word `json:"guess"`
	Mask     game.Mask `json:"mask"`
	PoolSize int       `json:"poolSize"` // candidates the guess was chosen from
	Strategy string    `json:"strategy"`
}

// Result is the outcome of Run. Turns is the 1-based winning turn, or
// Config.MaxTurns when the game was not won.
type Result struct {
	Target game.Word `json:"target"`
	Turns  int       `json:"turns"`
	Won    bool      `json:"won"`
	Steps  []Step    `json:"steps"`
}

// Session is the per-solve state: candidate pool, feasibility matrix and
// sampler. A Session must not be used from more than one goroutine.
type Session struct {
	cfg     Config
	pool    Pool
	matrix  *Matrix // nil when the pre-filter is disabled
	sampler Sampler
	log     zerolog.Logger
	turn    int
}

// NewSession starts a session over words. A nil sampler gets a RandSampler
// with the default seed.
func NewSession(words []game.Word, cfg Config, s Sampler) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = NewRandSampler(0)
	}
	sess := &Session{
		cfg:     cfg,
		pool:    NewPool(words),
		sampler: s,
		log:     cfg.Logger,
	}
	if cfg.matrixEnabled() {
		sess.matrix = NewMatrix()
	}
	return sess, nil
}

// Pool returns the current candidates. Callers must not modify it.
func (s *Session) Pool() Pool { return s.pool }

// Turn returns how many guesses Next has produced.
func (s *Session) Turn() int { return s.turn }

// Next selects the next guess from the current pool.
func (s *Session) Next() (game.Word, Strategy, error) {
	if len(s.pool) == 0 {
		return game.Word{}, StrategySampled, ErrNoCandidates
	}
	w, st, err := Select(s.pool, s.cfg, s.sampler)
	if err != nil {
		return w, st, err
	}
	s.turn++
	s.log.Debug().
		Int("turn", s.turn).
		Str("guess", w.String()).
		Int("pool", len(s.pool)).
		Stringer("strategy", st).
		Msg("guess selected")
	return w, st, nil
}

// Observe narrows the session with the feedback mask that guess received.
// It returns ErrNoCandidates when nothing survives; the pool is then empty
// and Next will keep failing.
func (s *Session) Observe(guess game.Word, mask game.Mask) error {
	if s.matrix != nil {
		s.matrix.Update(guess, mask)
	}
	before := len(s.pool)
	s.pool = Filter(s.pool, guess, mask, s.cfg.Policy, s.matrix)
	s.log.Debug().
		Str("guess", guess.String()).
		Stringer("mask", mask).
		Int("before", before).
		Int("after", len(s.pool)).
		Msg("pool filtered")
	if len(s.pool) == 0 {
		return ErrNoCandidates
	}
	return nil
}

// Run solves for target starting from words, simulating feedback locally.
//
// States: Start → SelectGuess → Evaluate → Filter → (Won | SelectGuess).
// An unsolved game reports Turns == cfg.MaxTurns with a nil error. An emptied
// pool stops the loop with an error wrapping ErrNoCandidates.
func Run(words []game.Word, target game.Word, cfg Config, s Sampler) (Result, error) {
	res := Result{Target: target}
	if _, err := game.Decode(target); err != nil {
		return res, err
	}
	sess, err := NewSession(words, cfg, s)
	if err != nil {
		return res, err
	}

	for turn := 1; turn <= cfg.MaxTurns; turn++ {
		guess, st, err := sess.Next()
		if err != nil {
			return res, fmt.Errorf("turn %d: %w", turn, err)
		}
		mask := game.ComputeMask(target, guess, cfg.Policy)
		res.Steps = append(res.Steps, Step{
			Guess:    guess,
			Mask:     mask,
			PoolSize: len(sess.pool),
			Strategy: st.String(),
		})
		if guess == target {
			res.Turns, res.Won = turn, true
			sess.log.Debug().Int("turns", turn).Str("target", target.String()).Msg("solved")
			return res, nil
		}
		if turn == cfg.MaxTurns {
			break
		}
		if err := sess.Observe(guess, mask); err != nil {
			return res, fmt.Errorf("turn %d: %w", turn+1, err)
		}
	}
	res.Turns = cfg.MaxTurns
	sess.log.Debug().Int("turns", res.Turns).Str("target", target.String()).Msg("turn budget exhausted")
	return res, nil
}
