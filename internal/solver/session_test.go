package solver_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestRun_TwoWordPool(t *testing.T) {
	cases := []struct {
		policy    game.Policy
		firstMask string
	}{
		{game.PolicyFaithful, "CCCCCP"},
		{game.PolicyStandard, "CCCCCA"},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			cfg := solver.DefaultConfig()
			cfg.Policy = tc.policy

			res, err := solver.Run(words(t, "AAAAAA", "AAAAAB"), game.MustEncode("AAAAAB"), cfg, solver.NewRandSampler(21))
			require.NoError(t, err)
			assert.True(t, res.Won)
			assert.Equal(t, 2, res.Turns)
			require.Len(t, res.Steps, 2)

			assert.Equal(t, "AAAAAA", res.Steps[0].Guess.String())
			assert.Equal(t, mustMask(t, tc.firstMask), res.Steps[0].Mask)
			assert.Equal(t, 2, res.Steps[0].PoolSize)
			assert.Equal(t, "sampled", res.Steps[0].Strategy)

			assert.Equal(t, "AAAAAB", res.Steps[1].Guess.String())
			assert.True(t, res.Steps[1].Mask.Solved())
			assert.Equal(t, 1, res.Steps[1].PoolSize)
		})
	}
}

func TestRun_SingleCandidate(t *testing.T) {
	res, err := solver.Run(words(t, "ZEBRAS"), game.MustEncode("ZEBRAS"), solver.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 1, res.Turns)
}

func TestRun_ExhaustsTurnBudget(t *testing.T) {
	for _, p := range []game.Policy{game.PolicyFaithful, game.PolicyStandard} {
		cfg := solver.DefaultConfig()
		cfg.Policy = p

		res, err := solver.Run(suffixPool(t), game.MustEncode("AAAAAZ"), cfg, solver.NewRandSampler(3))
		require.NoError(t, err, "exhaustion is a score, not an error")
		assert.False(t, res.Won)
		assert.Equal(t, solver.DefaultMaxTurns, res.Turns)
		require.Len(t, res.Steps, solver.DefaultMaxTurns)

		// every estimate ties, so guesses walk the pool in order
		assert.Equal(t, "AAAAAB", res.Steps[0].Guess.String())
		assert.Equal(t, "AAAAAK", res.Steps[9].Guess.String())
		for i, st := range res.Steps {
			assert.Equal(t, 25-i, st.PoolSize, "turn %d", i+1)
		}
	}
}

func TestRun_MaxTurnsIsConfigurable(t *testing.T) {
	cfg := solver.DefaultConfig()
	cfg.MaxTurns = 3
	res, err := solver.Run(suffixPool(t), game.MustEncode("AAAAAZ"), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Turns)
	assert.Len(t, res.Steps, 3)
}

func TestRun_NoCandidatesRemaining(t *testing.T) {
	res, err := solver.Run(words(t, "ABCDEF", "GHIJKL"), game.MustEncode("ZZZZZZ"), solver.DefaultConfig(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
	assert.Contains(t, err.Error(), "turn 3")
	assert.False(t, res.Won)
	assert.Len(t, res.Steps, 2)
}

func TestRun_InvalidTarget(t *testing.T) {
	_, err := solver.Run(words(t, "ZEBRAS"), game.Word{0, 0, 0, 0, 0, 40}, solver.DefaultConfig(), nil)
	assert.ErrorIs(t, err, game.ErrInvalidInput)
}

func TestRun_EmptyWordList(t *testing.T) {
	_, err := solver.Run(nil, game.MustEncode("ZEBRAS"), solver.DefaultConfig(), nil)
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
}

func TestRun_SolvesEveryTargetOfSmallList(t *testing.T) {
	list := words(t, "ZEBRAS", "PLANET", "PLANTS", "SOLVER", "BANANA", "LETTER", "SETTLE",
		"TEETER", "ANNALS", "GARDEN", "DANGER", "RANGED", "MARKET", "CASTLE", "BOTTLE")
	for _, p := range []game.Policy{game.PolicyFaithful, game.PolicyStandard} {
		cfg := solver.DefaultConfig()
		cfg.Policy = p
		for i, target := range list {
			res, err := solver.Run(list, target, cfg, solver.NewRandSampler(solver.DeriveSeed(21, uint64(i))))
			require.NoError(t, err, "%s: %s", p, target)
			assert.True(t, res.Won, "%s: %s", p, target)
			assert.LessOrEqual(t, res.Turns, len(list))

			// pool never grows
			for j := 1; j < len(res.Steps); j++ {
				assert.LessOrEqual(t, res.Steps[j].PoolSize, res.Steps[j-1].PoolSize)
			}
		}
	}
}

func TestRun_SameSeedSameTrace(t *testing.T) {
	pool := syntheticPool(220)
	target := pool[137]
	a, err := solver.Run(pool, target, solver.DefaultConfig(), solver.NewRandSampler(9))
	require.NoError(t, err)
	b, err := solver.Run(pool, target, solver.DefaultConfig(), solver.NewRandSampler(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_LogsTurns(t *testing.T) {
	var buf bytes.Buffer
	cfg := solver.DefaultConfig()
	cfg.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := solver.Run(words(t, "AAAAAA", "AAAAAB"), game.MustEncode("AAAAAB"), cfg, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"guess":"AAAAAA"`)
	assert.Contains(t, buf.String(), `"message":"solved"`)
}

func TestSession_InteractiveFeedback(t *testing.T) {
	sess, err := solver.NewSession(words(t, "ZEBRAS", "PLANET", "PLANTS", "SOLVER"), solver.DefaultConfig(), &firstK{})
	require.NoError(t, err)

	g, _, err := sess.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Turn())
	assert.True(t, sess.Pool().Contains(g))

	target := game.MustEncode("PLANTS")
	require.NoError(t, sess.Observe(g, game.ComputeMask(target, g, game.PolicyFaithful)))
	assert.True(t, sess.Pool().Contains(target))

	// feedback that matches nothing empties the pool
	err = sess.Observe(game.MustEncode("QQQQQQ"), mustMask(t, "CCCCCC"))
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
	_, _, err = sess.Next()
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
}

func TestSession_IndependentState(t *testing.T) {
	list := words(t, "ZEBRAS", "PLANET", "PLANTS", "SOLVER")
	a, err := solver.NewSession(list, solver.DefaultConfig(), nil)
	require.NoError(t, err)
	b, err := solver.NewSession(list, solver.DefaultConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, a.Observe(game.MustEncode("PLANET"), mustMask(t, "CCCCAP")))
	assert.Len(t, a.Pool(), 1)
	assert.Len(t, b.Pool(), 4, "sessions must not share pools")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, solver.DefaultConfig().Validate())

	mutate := []func(*solver.Config){
		func(c *solver.Config) { c.SampleThreshold = 0 },
		func(c *solver.Config) { c.SampleBudget = 0 },
		func(c *solver.Config) { c.MaxTurns = 0 },
		func(c *solver.Config) { c.Policy = game.Policy(9) },
	}
	for i, m := range mutate {
		cfg := solver.DefaultConfig()
		m(&cfg)
		assert.ErrorIs(t, cfg.Validate(), solver.ErrBadConfig, "case %d", i)

		_, err := solver.NewSession(nil, cfg, nil)
		assert.ErrorIs(t, err, solver.ErrBadConfig, "case %d", i)
	}
}
