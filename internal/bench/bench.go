// apps/go-solver/internal/bench/bench.go
//
// Benchmark harness: solves many targets, each in its own solver session, and
// aggregates the scores.
//
// Notes:
//   - Sessions run concurrently (errgroup, bounded by Options.Workers). Each
//     gets its own pool, matrix and sampler; the sampler seed is derived from
//     Options.Seed and the target's index, so results do not depend on
//     scheduling order.
//   - A target whose pool empties (solver.ErrNoCandidates) is a failure scored
//     at MaxTurns, not a fatal error.

package bench

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Options controls a benchmark.
type Options struct {
	Workers    int                   // concurrent sessions; <= 0 means GOMAXPROCS
	Seed       int64                 // base seed for per-target samplers
	WordSource string                // recorded on the run
	OnResult   func(results.Outcome) // called once per finished target, serialized
}

// Summary aggregates a benchmark.
type Summary struct {
	results.Run
	Mean      float64     `json:"mean"`
	Histogram map[int]int `json:"histogram"` // turns → targets
}

// Run solves every target against list and returns the summary and the
// per-target outcomes in target order.
func Run(ctx context.Context, list []game.Word, targets []game.Word, cfg solver.Config, opts Options) (Summary, []results.Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	outcomes := make([]results.Outcome, len(targets))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, target := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := solveOne(list, target, cfg, solver.NewRandSampler(solver.DeriveSeed(opts.Seed, uint64(i))))
			if err != nil {
				return err
			}
			outcomes[i] = o
			if opts.OnResult != nil {
				mu.Lock()
				opts.OnResult(o)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, nil, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, nil, err
	}

	sum := Summary{
		Run: results.Run{
			ID:         uuid.NewString(),
			CreatedAt:  start.UTC(),
			Policy:     cfg.Policy.String(),
			Seed:       opts.Seed,
			WordSource: opts.WordSource,
			Targets:    len(targets),
			ElapsedMs:  time.Since(start).Milliseconds(),
		},
		Histogram: make(map[int]int),
	}
	for _, o := range outcomes {
		sum.TotalTurns += o.Turns
		sum.Histogram[o.Turns]++
		switch {
		case o.Won:
			sum.Wins++
		case o.Err != "":
			sum.Failures++
		}
	}
	sum.Mean = sum.Run.Mean()
	return sum, outcomes, nil
}

// solveOne runs a single session. Only configuration-level errors are returned;
// an emptied pool is folded into the outcome.
func solveOne(list []game.Word, target game.Word, cfg solver.Config, s solver.Sampler) (results.Outcome, error) {
	t0 := time.Now()
	res, err := solver.Run(list, target, cfg, s)
	o := results.Outcome{
		Target:    target.String(),
		Turns:     res.Turns,
		Won:       res.Won,
		ElapsedUs: time.Since(t0).Microseconds(),
	}
	for _, st := range res.Steps {
		o.Guesses = append(o.Guesses, st.Guess.String())
	}
	if err != nil {
		if !errors.Is(err, solver.ErrNoCandidates) {
			return o, err
		}
		o.Turns = cfg.MaxTurns
		o.Err = err.Error()
		cfg.Logger.Warn().Err(err).Str("target", o.Target).Msg("pool emptied before the target was found")
	}
	return o, nil
}
