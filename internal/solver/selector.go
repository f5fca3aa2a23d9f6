package solver

import (
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Strategy names the selector used for a turn.
type Strategy uint8

const (
	StrategySampled Strategy = iota // simulated feedback over a pool sample
	StrategyOpener                  // per-position letter-frequency entropy
)

func (s Strategy) String() string {
	if s == StrategyOpener {
		return "opener"
	}
	return "sampled"
}

// ChooseStrategy picks the selector for a pool of size n.
func ChooseStrategy(n int, cfg Config) Strategy {
	if n < cfg.SampleThreshold {
		return StrategySampled
	}
	return StrategyOpener
}

// Select returns the next guess for pool using the strategy cfg prescribes.
func Select(pool Pool, cfg Config, s Sampler) (game.Word, Strategy, error) {
	st := ChooseStrategy(len(pool), cfg)
	var (
		w   game.Word
		err error
	)
	if st == StrategySampled {
		w, err = SampledMaskEntropy(pool, s, cfg.SampleBudget, cfg.Policy)
	} else {
		w, err = OpeningHeuristic(pool)
	}
	return w, st, err
}

// Entropy is the Shannon entropy in bits of a histogram whose bins sum to total.
// Empty bins contribute nothing.
func Entropy(counts []int, total int) float64 {
	if total <= 0 {
		return 0
	}
	t := float64(total)
	var h float64
	for _, c := range counts {
		if c > 0 {
			h += plogp(float64(c) / t)
		}
	}
	return h
}

// plogp returns −p·log₂(p).
func plogp(p float64) float64 {
	return -p * math.Log2(p)
}

// OpeningHeuristic scores each word by the summed per-position entropy
// contribution of its letters, using letter frequencies over the whole pool.
// The first word reaching the maximum wins.
//
// Complexity: O(|pool|·6).
func OpeningHeuristic(pool Pool) (game.Word, error) {
	if len(pool) == 0 {
		return game.Word{}, ErrNoCandidates
	}
	var freq [game.WordLen][game.AlphabetSize]int
	for _, w := range pool {
		for i, l := range w {
			freq[i][l]++
		}
	}

	total := float64(len(pool))
	var contrib [game.WordLen][game.AlphabetSize]float64
	for i := range freq {
		for l, c := range freq[i] {
			if c > 0 {
				contrib[i][l] = plogp(float64(c) / total)
			}
		}
	}

	best, bestScore := pool[0], -1.0
	for _, w := range pool {
		var score float64
		for i, l := range w {
			score += contrib[i][l]
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best, nil
}

// SampleSize is k = min(budget/n, n), at least 1 for a non-empty pool.
func SampleSize(n, budget int) int {
	if n <= 0 {
		return 0
	}
	k := budget / n
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	return k
}

// SampledMaskEntropy scores every pool word g by the entropy of the masks g
// produces against a fresh sample of the pool, and returns the best g. Ties go
// to the earlier word. With k == |pool| every candidate is simulated, so the
// result no longer depends on the sampler.
//
// Complexity: O(|pool|·k) mask computations, about budget for small pools.
func SampledMaskEntropy(pool Pool, s Sampler, budget int, policy game.Policy) (game.Word, error) {
	if len(pool) == 0 {
		return game.Word{}, ErrNoCandidates
	}
	k := SampleSize(len(pool), budget)

	var bins [game.MaskKeys]int
	best, bestH := pool[0], -1.0
	for _, g := range pool {
		sample := s.Sample(pool, k)
		clear(bins[:])
		for _, c := range sample {
			bins[game.ComputeMask(c, g, policy).Key()]++
		}
		h := Entropy(bins[:], len(sample))
		if h > bestH {
			best, bestH = g, h
		}
	}
	return best, nil
}
