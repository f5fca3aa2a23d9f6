// apps/go-solver/internal/game/word.go
//
// Word codec: converts between 6-letter uppercase text and fixed-length
// symbol sequences (ordinals 0–25).
//
// Notes:
//   - Encode never coerces input; lower case, whitespace and wrong lengths are
//     rejected with an *InputError that unwraps to ErrInvalidInput.
//   - Word is a value type, so copies never alias.

package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// WordLen is the number of symbols in every word.
	WordLen = 6
	// AlphabetSize is the number of distinct symbols (A–Z).
	AlphabetSize = 26
)

// ErrInvalidInput is returned for words or masks that are malformed.
var ErrInvalidInput = errors.New("game: invalid input")

// InputError describes which input was rejected and why.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidInput.Error(), e.Input, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(input, reason string) error {
	return &InputError{Input: input, Reason: reason}
}

// Word is a fixed-length sequence of letter ordinals (0 = 'A').
type Word [WordLen]uint8

// Encode converts text such as "ZEBRAS" into a Word.
func Encode(text string) (Word, error) {
	var w Word
	if len(text) != WordLen {
		return w, invalid(text, fmt.Sprintf("want %d letters, got %d", WordLen, len(text)))
	}
	for i := 0; i < WordLen; i++ {
		c := text[i]
		if c < 'A' || c > 'Z' {
			return w, invalid(text, fmt.Sprintf("position %d is not A-Z", i))
		}
		w[i] = c - 'A'
	}
	return w, nil
}

// MustEncode is Encode for literals known to be valid; it panics otherwise.
func MustEncode(text string) Word {
	w, err := Encode(text)
	if err != nil {
		panic(err)
	}
	return w
}

// Decode converts a Word back to its uppercase text.
func Decode(w Word) (string, error) {
	var b [WordLen]byte
	for i, s := range w {
		if s >= AlphabetSize {
			return "", invalid(fmt.Sprint(w[:]), fmt.Sprintf("symbol %d at position %d out of range", s, i))
		}
		b[i] = 'A' + s
	}
	return string(b[:]), nil
}

// String renders the word; out-of-range symbols print as '?'.
func (w Word) String() string {
	var b [WordLen]byte
	for i, s := range w {
		if s >= AlphabetSize {
			b[i] = '?'
			continue
		}
		b[i] = 'A' + s
	}
	return string(b[:])
}

// Contains reports whether letter occurs at any position of w.
func (w Word) Contains(letter uint8) bool {
	for _, s := range w {
		if s == letter {
			return true
		}
	}
	return false
}

// MarshalText encodes the word as its uppercase text.
func (w Word) MarshalText() ([]byte, error) {
	s, err := Decode(w)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText is Encode for encoding/json; input is upper-cased first.
func (w *Word) UnmarshalText(b []byte) error {
	v, err := Encode(strings.ToUpper(string(b)))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
