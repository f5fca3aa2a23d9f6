package solver

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Pool is an ordered, duplicate-free list of candidate words. Iteration order
// is the tie-break for every selector, so it is kept stable.
type Pool []game.Word

// NewPool copies words into a Pool, dropping repeats (first occurrence wins).
func NewPool(words []game.Word) Pool {
	seen := mapset.NewThreadUnsafeSet()
	out := make(Pool, 0, len(words))
	for _, w := range words {
		if seen.Add(w) {
			out = append(out, w)
		}
	}
	return out
}

// Contains reports whether w is in the pool.
func (p Pool) Contains(w game.Word) bool {
	for _, x := range p {
		if x == w {
			return true
		}
	}
	return false
}

// Strings decodes every word.
func (p Pool) Strings() []string {
	out := make([]string, len(p))
	for i, w := range p {
		out[i] = w.String()
	}
	return out
}

// Filter returns, in order, the words of pool that pass m.IsValidWord (when m is
// non-nil) and are consistent with guess having produced mask. pool is not modified.
func Filter(pool Pool, guess game.Word, mask game.Mask, policy game.Policy, m *Matrix) Pool {
	out := make(Pool, 0, len(pool))
	for _, w := range pool {
		if m != nil && !m.IsValidWord(w) {
			continue
		}
		if game.IsConsistent(w, guess, mask, policy) {
			out = append(out, w)
		}
	}
	return out
}
