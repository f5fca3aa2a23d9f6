package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Matrix is a 26×6 grid: cell(letter, pos) set means letter may still occupy pos.
// Within a session cells only ever go from set to clear, except that a Correct
// mark re-asserts its own cell after clearing the column.
type Matrix struct {
	cells *bitset.BitSet
}

// NewMatrix returns a matrix with every cell set.
func NewMatrix() *Matrix {
	m := &Matrix{cells: bitset.New(game.AlphabetSize * game.WordLen)}
	m.Reset()
	return m
}

func cell(letter uint8, pos int) uint {
	return uint(letter)*game.WordLen + uint(pos)
}

// Reset marks every letter feasible at every position.
func (m *Matrix) Reset() {
	m.cells.SetAll()
}

// Allowed reports cell(letter, pos).
func (m *Matrix) Allowed(letter uint8, pos int) bool {
	return m.cells.Test(cell(letter, pos))
}

// Update tightens the grid with one round of feedback.
//
//	Absent  → clear the letter's row (all positions)
//	Present → clear (letter, i)
//	Correct → clear column i, then set (letter, i)
//
// The Absent rule treats the letter as missing from the answer, which is wrong
// for a repeated guess letter under the standard duplicate policy.
func (m *Matrix) Update(guess game.Word, mask game.Mask) {
	for i, letter := range guess {
		switch mask[i] {
		case game.Absent:
			for p := 0; p < game.WordLen; p++ {
				m.cells.Clear(cell(letter, p))
			}
		case game.Present:
			m.cells.Clear(cell(letter, i))
		case game.Correct:
			for l := uint8(0); l < game.AlphabetSize; l++ {
				m.cells.Clear(cell(l, i))
			}
			m.cells.Set(cell(letter, i))
		}
	}
}

// IsValidWord reports whether every letter of w is still feasible at its position.
func (m *Matrix) IsValidWord(w game.Word) bool {
	for i, letter := range w {
		if !m.cells.Test(cell(letter, i)) {
			return false
		}
	}
	return true
}

// Feasible returns how many cells are still set.
func (m *Matrix) Feasible() int {
	return int(m.cells.Count())
}
