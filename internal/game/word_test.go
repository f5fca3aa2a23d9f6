package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, text := range []string{"ZEBRAS", "AAAAAA", "ZZZZZZ", "PLANET", "BANANA"} {
		w, err := game.Encode(text)
		require.NoError(t, err, text)
		back, err := game.Decode(w)
		require.NoError(t, err, text)
		assert.Equal(t, text, back)
		assert.Equal(t, text, w.String())
	}
}

func TestEncode_Ordinals(t *testing.T) {
	w, err := game.Encode("AZBYCX")
	require.NoError(t, err)
	assert.Equal(t, game.Word{0, 25, 1, 24, 2, 23}, w)
}

func TestEncode_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"short":      "ZEBRA",
		"long":       "ZEBRASS",
		"empty":      "",
		"lowercase":  "zebras",
		"digit":      "ZEBR4S",
		"space":      "ZEB AS",
		"multi-byte": "ZEBRÄ",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := game.Encode(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, game.ErrInvalidInput)

			var ie *game.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, in, ie.Input)
		})
	}
}

func TestDecode_RejectsOutOfRangeSymbol(t *testing.T) {
	_, err := game.Decode(game.Word{0, 1, 2, 3, 4, 26})
	assert.ErrorIs(t, err, game.ErrInvalidInput)
	assert.Equal(t, "ABCDE?", game.Word{0, 1, 2, 3, 4, 26}.String())
}

func TestMustEncode_Panics(t *testing.T) {
	assert.Panics(t, func() { game.MustEncode("nope") })
	assert.NotPanics(t, func() { game.MustEncode("ZEBRAS") })
}

func TestParseMask(t *testing.T) {
	want := game.Mask{game.Correct, game.Present, game.Absent, game.Absent, game.Present, game.Correct}
	for _, in := range []string{"CPAAPC", "cpaapc", "210012", "GYAAYG", "🟩🟨⬛⬛🟨🟩"} {
		m, err := game.ParseMask(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, m, in)
	}
	assert.Equal(t, "CPAAPC", want.String())

	for _, bad := range []string{"", "CPA", "CPAAPCC", "CPAXPC"} {
		_, err := game.ParseMask(bad)
		assert.ErrorIs(t, err, game.ErrInvalidInput, bad)
	}
}

func TestMaskKey_UniqueAndBounded(t *testing.T) {
	seen := make(map[int]bool, game.MaskKeys)
	var m game.Mask
	var walk func(pos int)
	walk = func(pos int) {
		if pos == game.WordLen {
			k := m.Key()
			require.GreaterOrEqual(t, k, 0)
			require.Less(t, k, game.MaskKeys)
			require.False(t, seen[k], "duplicate key %d for %s", k, m)
			seen[k] = true
			return
		}
		for _, x := range []game.Mark{game.Absent, game.Present, game.Correct} {
			m[pos] = x
			walk(pos + 1)
		}
	}
	walk(0)
	assert.Len(t, seen, game.MaskKeys)
}
