// apps/go-solver/internal/game/feedback.go
//
// Feedback evaluation: the mask a candidate answer produces for a guess, and
// the consistency check used to narrow candidate pools.
//
// Two duplicate-letter policies exist:
//   - PolicyFaithful: a non-matching guess letter is Present whenever it occurs
//     anywhere in the candidate. A guess with a repeated letter can collect more
//     Present marks than the candidate has unmatched copies.
//   - PolicyStandard: the classic two-pass rule. Correct positions are allocated
//     first, then Present marks up to the remaining unmatched count.
//
// ComputeMask and IsConsistent must always be called with the same policy.

package game

import (
	"fmt"
	"strings"
)

// Policy selects the duplicate-letter rule.
type Policy uint8

const (
	PolicyFaithful Policy = iota
	PolicyStandard
)

func (p Policy) String() string {
	switch p {
	case PolicyFaithful:
		return "faithful"
	case PolicyStandard:
		return "standard"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy maps "faithful" / "standard" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "faithful", "reference":
		return PolicyFaithful, nil
	case "standard", "classic":
		return PolicyStandard, nil
	}
	return 0, invalid(s, "unknown policy")
}

// ComputeMask returns the feedback a player would see after guessing guess
// when the answer is candidate.
func ComputeMask(candidate, guess Word, policy Policy) Mask {
	if policy == PolicyStandard {
		return scoreGuess(candidate, guess)
	}
	var m Mask
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == candidate[i]:
			m[i] = Correct
		case candidate.Contains(guess[i]):
			m[i] = Present
		}
	}
	return m
}

// IsConsistent reports whether candidate could still be the answer given that
// guess produced mask.
func IsConsistent(candidate, guess Word, mask Mask, policy Policy) bool {
	return ComputeMask(candidate, guess, policy) == mask
}

// scoreGuess implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-matched) answer letters by ordinal.
//
// Pass 2:
//   - For each non-matched guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise leave Absent.
func scoreGuess(answer, guess Word) Mask {
	var res Mask
	var counts [AlphabetSize]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			res[i] = Correct
		} else {
			counts[answer[i]]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == Correct {
			continue
		}
		if j := guess[i]; counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}
