package daily

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2026, 10, 19, 5, 0, 0, 0, loc) // 2026-10-18 19:00 UTC
	assert.Equal(t, "2026-10-18", DateKey(ts))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	later := day.Add(6 * time.Hour)

	a := WordIndex(day, "salt", 511)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 511)
	assert.Equal(t, a, WordIndex(later, "salt", 511), "same UTC day, same index")

	assert.Equal(t, 0, WordIndex(day, "salt", 0))
	assert.Equal(t, 0, WordIndex(day, "salt", 1))

	long := strings.Repeat("k", 100)
	b := WordIndex(day, long, 511)
	assert.Less(t, b, 511)
	assert.Equal(t, b, WordIndex(day, long, 511))

	// different days should not all collapse onto one index
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(day.AddDate(0, 0, d), "salt", 511)] = true
	}
	assert.Greater(t, len(seen), 1)
}
