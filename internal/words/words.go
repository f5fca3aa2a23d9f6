// apps/go-solver/internal/words/words.go
//
// Word list management for the solver and the game server.
//
// Responsibilities:
//   - Load the six-letter word list from a file, or fall back to the embedded default.
//   - Normalize entries (trim, upper-case), drop comments, invalid words and repeats.
//   - Provide lookups (Contains) and seeded target sampling for benchmarks.
//
// Word list format:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Words must be 6 letters A–Z after upper-casing; anything else is dropped and counted.
//
// Environment variables (read by internal/config):
//   WORDS_FILE=/path/to/words.txt
//
// A List is immutable after Load and safe for concurrent readers.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrEmpty is returned when a list has no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is a loaded, de-duplicated word list in file order.
type List struct {
	words   []game.Word
	texts   []string
	set     mapset.Set // thread-safe; holds the upper-case text
	Source  string     // file path or "embedded"
	Dropped int        // lines rejected by the codec
}

// Load reads path, or the embedded default list when path is empty.
func Load(path string) (*List, error) {
	var (
		lines  []string
		err    error
		source = path
	)
	if path == "" {
		source = "embedded"
		lines, err = assets.WordList()
	} else {
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", source, err)
	}
	l, err := FromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", source, err)
	}
	l.Source = source
	log.Debug().Str("source", source).Int("words", l.Len()).Int("dropped", l.Dropped).Msg("word list loaded")
	return l, nil
}

// FromStrings builds a List from raw entries.
func FromStrings(lines []string) (*List, error) {
	l := &List{set: mapset.NewSet()}
	for _, s := range lines {
		s = strings.ToUpper(strings.TrimSpace(s))
		w, err := game.Encode(s)
		if err != nil {
			l.Dropped++
			continue
		}
		if !l.set.Add(s) {
			continue
		}
		l.words = append(l.words, w)
		l.texts = append(l.texts, s)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// readWordFile loads one word per line from a file, skipping blanks and comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Words returns the encoded list. Callers must not modify it.
func (l *List) Words() []game.Word { return l.words }

// Strings returns the upper-case text of every word. Callers must not modify it.
func (l *List) Strings() []string { return l.texts }

// Len reports the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word.
func (l *List) At(i int) game.Word { return l.words[i] }

// Contains reports whether text (any case) is in the list.
func (l *List) Contains(text string) bool {
	return l.set.Contains(strings.ToUpper(strings.TrimSpace(text)))
}

// Sample returns n distinct words chosen with a seeded generator, so the same
// seed always yields the same targets. n larger than the list returns every word.
func (l *List) Sample(n int, seed int64) []game.Word {
	if n > len(l.words) {
		n = len(l.words)
	}
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	idx := rng.Perm(len(l.words))
	out := make([]game.Word, n)
	for i := 0; i < n; i++ {
		out[i] = l.words[idx[i]]
	}
	return out
}
