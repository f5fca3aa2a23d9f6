package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestNewPool_DropsDuplicatesKeepsOrder(t *testing.T) {
	p := solver.NewPool(words(t, "ZEBRAS", "PLANET", "ZEBRAS", "SOLVER", "PLANET"))
	assert.Equal(t, []string{"ZEBRAS", "PLANET", "SOLVER"}, p.Strings())
	assert.True(t, p.Contains(game.MustEncode("SOLVER")))
	assert.False(t, p.Contains(game.MustEncode("BANANA")))
}

func TestFilter_SubsetInOrder(t *testing.T) {
	pool := solver.NewPool(words(t, "ZEBRAS", "PLANET", "SOLVER", "PLANTS", "BANANA", "LETTER"))
	snapshot := append(solver.Pool(nil), pool...)

	for _, p := range []game.Policy{game.PolicyFaithful, game.PolicyStandard} {
		for _, target := range pool {
			for _, guess := range pool {
				mask := game.ComputeMask(target, guess, p)
				for _, m := range []*solver.Matrix{nil, solver.NewMatrix()} {
					if m != nil {
						m.Update(guess, mask)
					}
					out := solver.Filter(pool, guess, mask, p, m)
					require.LessOrEqual(t, len(out), len(pool))

					requireSubsetInOrder(t, pool, out)
					if m == nil || p == game.PolicyFaithful {
						assert.True(t, out.Contains(target), "%s: target %s dropped after %s", p, target, guess)
					}
				}
			}
		}
	}
	assert.Equal(t, snapshot, pool, "Filter must not modify its input")
}

func TestFilter_AnyMaskSubset(t *testing.T) {
	pool := solver.NewPool(words(t, "ZEBRAS", "PLANET", "SOLVER", "PLANTS", "BANANA", "LETTER", "AAAAAA"))
	snapshot := append(solver.Pool(nil), pool...)

	for _, p := range []game.Policy{game.PolicyFaithful, game.PolicyStandard} {
		for _, guess := range words(t, "PLANET", "BANANA", "LETTER") {
			for key := 0; key < game.MaskKeys; key++ {
				mask := maskFromKey(key)
				require.Equal(t, key, mask.Key())

				out := solver.Filter(pool, guess, mask, p, nil)
				requireSubsetInOrder(t, pool, out)

				m := solver.NewMatrix()
				m.Update(guess, mask)
				withMatrix := solver.Filter(pool, guess, mask, p, m)
				requireSubsetInOrder(t, pool, withMatrix)
				requireSubsetInOrder(t, out, withMatrix)
			}
		}
	}
	assert.Equal(t, snapshot, pool, "Filter must not modify its input")
}

// maskFromKey inverts Mask.Key.
func maskFromKey(key int) game.Mask {
	var m game.Mask
	for i := game.WordLen - 1; i >= 0; i-- {
		m[i] = game.Mark(key % 3)
		key /= 3
	}
	return m
}

// requireSubsetInOrder fails unless every word of out appears in pool, in
// the same relative order.
func requireSubsetInOrder(t *testing.T, pool, out solver.Pool) {
	t.Helper()
	require.LessOrEqual(t, len(out), len(pool))
	j := 0
	for _, w := range out {
		for j < len(pool) && pool[j] != w {
			j++
		}
		require.Less(t, j, len(pool), "%s not in pool order", w)
		j++
	}
}

func TestFilter_Narrowing(t *testing.T) {
	pool := solver.NewPool(words(t, "ZEBRAS", "PLANET", "PLANTS", "SOLVER"))
	guess := game.MustEncode("PLANET")
	target := game.MustEncode("PLANTS")

	mask := game.ComputeMask(target, guess, game.PolicyFaithful)
	assert.Equal(t, mustMask(t, "CCCCAP"), mask)

	out := solver.Filter(pool, guess, mask, game.PolicyFaithful, nil)
	assert.Equal(t, []string{"PLANTS"}, out.Strings())
}

func TestFilter_Empty(t *testing.T) {
	out := solver.Filter(nil, game.MustEncode("ZEBRAS"), mustMask(t, "AAAAAA"), game.PolicyFaithful, nil)
	assert.Empty(t, out)
}
