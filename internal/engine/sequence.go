package engine

import (
	"slices"
	"strings"
)

// Letters is a multiset of characters.
type Letters map[rune]int

// CountLetters returns the character multiset of s.
func CountLetters(s string) Letters {
	counts := make(Letters, len(s))
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// Combine returns the smallest letter pool from which every word can be
// spelled on its own: each character appears as many times as it does in the
// word that uses it most, and characters are emitted in ascending order.
//
//	Combine([]string{"bee", "bed"}) == "bdee"
func Combine(words []string) string {
	maxCounts := make(Letters)
	for _, w := range words {
		for r, n := range CountLetters(w) {
			if n > maxCounts[r] {
				maxCounts[r] = n
			}
		}
	}

	chars := make([]rune, 0, len(maxCounts))
	for r := range maxCounts {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	var b strings.Builder
	for _, r := range chars {
		b.WriteString(strings.Repeat(string(r), maxCounts[r]))
	}
	return b.String()
}
