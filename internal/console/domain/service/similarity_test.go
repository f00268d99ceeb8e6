package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("black leather wallet", "black leather wallet"))
}

func TestRatio_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
}

func TestRatio_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("", "wallet"))
	assert.Equal(t, 0.0, Ratio("wallet", ""))
}

func TestRatio_KnownScores(t *testing.T) {
	// Longest block "bcd" (3 runes), T = 8 -> 2*3/8.
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)

	// Blocks "ab" and trailing "  " (2 + 2), T = 11.
	assert.InDelta(t, 8.0/11.0, Ratio("abcde  ", "ab  "), 1e-9)

	// No common characters at all.
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
}

func TestRatio_Commutative(t *testing.T) {
	pairs := [][2]string{
		{"black wallet", "black leather wallet"},
		{"red umbrella", "blue car"},
		{"iphone 13 pro", "iphone 13"},
		{"", "something"},
	}
	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]),
			"Ratio(%q, %q) must be symmetric", p[0], p[1])
	}
}

func TestRatio_RuneAware(t *testing.T) {
	// Multibyte characters count as single positions.
	assert.Equal(t, 1.0, Ratio("héllo wörld", "héllo wörld"))
	assert.True(t, Ratio("héllo", "hállo") > 0.5)
}

func TestRatio_RangeBounds(t *testing.T) {
	inputs := []string{"", "a", "abc def", "completely different text", "abc abc abc"}
	for _, a := range inputs {
		for _, b := range inputs {
			score := Ratio(a, b)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestFindLongestMatch_PrefersEarliest(t *testing.T) {
	// "ab" and "cd" both have length 2; the block starting earliest in a wins.
	a := []rune("abxcd")
	b := []rune("abycd")
	i, j, k := findLongestMatch(a, b, 0, len(a), 0, len(b))
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, j)
	assert.Equal(t, 2, k)
}
