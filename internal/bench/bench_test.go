package bench_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func encodeAll(t *testing.T, texts ...string) []game.Word {
	t.Helper()
	out := make([]game.Word, len(texts))
	for i, s := range texts {
		w, err := game.Encode(s)
		require.NoError(t, err)
		out[i] = w
	}
	return out
}

func suffixPool(t *testing.T) []game.Word {
	var texts []string
	for c := 'B'; c <= 'Z'; c++ {
		texts = append(texts, "AAAAA"+string(c))
	}
	return encodeAll(t, texts...)
}

func TestRun_TwoWordPool(t *testing.T) {
	list := encodeAll(t, "AAAAAA", "AAAAAB")
	sum, outs, err := bench.Run(context.Background(), list, list, solver.DefaultConfig(), bench.Options{Seed: 21})
	require.NoError(t, err)

	require.Len(t, outs, 2)
	assert.Equal(t, "AAAAAA", outs[0].Target)
	assert.Equal(t, "AAAAAB", outs[1].Target)
	for _, o := range outs {
		assert.True(t, o.Won, o.Target)
		assert.LessOrEqual(t, o.Turns, 2)
		assert.Equal(t, o.Target, o.Guesses[len(o.Guesses)-1])
	}
	assert.Equal(t, 2, sum.Wins)
	assert.Zero(t, sum.Failures)
	assert.Equal(t, 2, sum.Targets)
	assert.Equal(t, "faithful", sum.Policy)
	assert.NotEmpty(t, sum.ID)
	assert.InDelta(t, float64(sum.TotalTurns)/2, sum.Mean, 1e-9)
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	list := suffixPool(t)
	cfg := solver.DefaultConfig()

	_, serial, err := bench.Run(context.Background(), list, list, cfg, bench.Options{Seed: 7, Workers: 1})
	require.NoError(t, err)
	_, parallel, err := bench.Run(context.Background(), list, list, cfg, bench.Options{Seed: 7, Workers: 8})
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Target, parallel[i].Target)
		assert.Equal(t, serial[i].Turns, parallel[i].Turns, serial[i].Target)
		assert.Equal(t, serial[i].Guesses, parallel[i].Guesses, serial[i].Target)
	}
}

func TestRun_HistogramAndCap(t *testing.T) {
	list := suffixPool(t)
	cfg := solver.DefaultConfig()

	var seen int
	sum, outs, err := bench.Run(context.Background(), list, list, cfg, bench.Options{
		Seed:     21,
		Workers:  4,
		OnResult: func(results.Outcome) { seen++ },
	})
	require.NoError(t, err)
	assert.Equal(t, len(list), seen)

	total, counted := 0, 0
	for turns, n := range sum.Histogram {
		assert.LessOrEqual(t, turns, cfg.MaxTurns)
		counted += n
		total += turns * n
	}
	assert.Equal(t, len(list), counted)
	assert.Equal(t, sum.TotalTurns, total)

	// One candidate is removed per turn, so most targets exhaust the budget.
	losses := 0
	for _, o := range outs {
		if !o.Won {
			losses++
			assert.Equal(t, cfg.MaxTurns, o.Turns)
			assert.Empty(t, o.Err)
		}
	}
	assert.Equal(t, len(list)-sum.Wins, losses)
	assert.Zero(t, sum.Failures)
}

func TestRun_TargetOutsideListIsFailure(t *testing.T) {
	list := encodeAll(t, "AAAAAA", "AAAAAB")
	targets := encodeAll(t, "AAAAAC")
	cfg := solver.DefaultConfig()

	sum, outs, err := bench.Run(context.Background(), list, targets, cfg, bench.Options{Seed: 1})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	o := outs[0]
	assert.False(t, o.Won)
	assert.Equal(t, cfg.MaxTurns, o.Turns)
	assert.True(t, strings.Contains(o.Err, "no candidates"), o.Err)
	assert.Equal(t, 1, sum.Failures)
	assert.Equal(t, cfg.MaxTurns, sum.TotalTurns)
}

func TestRun_BadConfig(t *testing.T) {
	cfg := solver.DefaultConfig()
	cfg.MaxTurns = 0
	list := encodeAll(t, "ZEBRAS")
	_, _, err := bench.Run(context.Background(), list, list, cfg, bench.Options{})
	assert.ErrorIs(t, err, solver.ErrBadConfig)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	list := suffixPool(t)
	_, _, err := bench.Run(ctx, list, list, solver.DefaultConfig(), bench.Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
