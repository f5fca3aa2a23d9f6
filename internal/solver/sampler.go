package solver

import (
	"math/rand"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// DefaultSeed is used when callers pass seed == 0, keeping the zero value reproducible.
const DefaultSeed int64 = 21

// Sampler draws k distinct words, uniformly and without replacement, from pool.
// Implementations need not be safe for concurrent use.
type Sampler interface {
	Sample(pool []game.Word, k int) []game.Word
}

// RandSampler is a Sampler backed by a seeded math/rand generator.
type RandSampler struct {
	rng *rand.Rand
	idx []int
}

// NewRandSampler returns a deterministic sampler. Seed 0 selects DefaultSeed.
func NewRandSampler(seed int64) *RandSampler {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample performs a partial Fisher–Yates shuffle over pool indices. k is clamped
// to [0, len(pool)].
func (s *RandSampler) Sample(pool []game.Word, k int) []game.Word {
	n := len(pool)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	if cap(s.idx) < n {
		s.idx = make([]int, n)
	}
	s.idx = s.idx[:n]
	for i := range s.idx {
		s.idx[i] = i
	}
	out := make([]game.Word, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
		out[i] = pool[s.idx[i]]
	}
	return out
}

// DeriveSeed mixes a base seed and a stream id (e.g. a target index) into an
// independent seed, so parallel sessions get uncorrelated samplers.
func DeriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
