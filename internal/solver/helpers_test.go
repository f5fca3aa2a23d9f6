package solver_test

import (
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// firstK is a deterministic Sampler that always returns the head of the pool.
type firstK struct{ calls int }

func (f *firstK) Sample(pool []game.Word, k int) []game.Word {
	f.calls++
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}

func words(t testing.TB, texts ...string) []game.Word {
	t.Helper()
	out := make([]game.Word, len(texts))
	for i, s := range texts {
		w, err := game.Encode(s)
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		out[i] = w
	}
	return out
}

// suffixPool returns AAAAAB..AAAAAZ: every pair differs only in the last
// letter, so no guess ever tells the rest apart.
func suffixPool(t testing.TB) []game.Word {
	t.Helper()
	var texts []string
	for c := 'B'; c <= 'Z'; c++ {
		texts = append(texts, "AAAAA"+string(c))
	}
	return words(t, texts...)
}

// syntheticPool builds n distinct words by writing i in base 26.
func syntheticPool(n int) solver.Pool {
	out := make(solver.Pool, 0, n)
	for i := 0; i < n; i++ {
		var w game.Word
		x := i*7919 + 13
		for p := game.WordLen - 1; p >= 0; p-- {
			w[p] = uint8(x % game.AlphabetSize)
			x /= game.AlphabetSize
		}
		out = append(out, w)
	}
	return solver.NewPool(out)
}

func mustMask(t testing.TB, s string) game.Mask {
	t.Helper()
	m, err := game.ParseMask(s)
	if err != nil {
		t.Fatalf("mask %q: %v", s, err)
	}
	return m
}
