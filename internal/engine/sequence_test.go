package engine

import (
	"slices"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"bee", "bed"}, "bdee"},
		{[]string{"cat", "car"}, "acrt"},
		{[]string{"cat"}, "act"},
		{[]string{"aa", "a", "aaa"}, "aaa"},
		{nil, ""},
	}

	for _, tc := range tests {
		if got := Combine(tc.words); got != tc.want {
			t.Errorf("Combine(%v) = %q, want %q", tc.words, got, tc.want)
		}
	}
}

func TestCombineSpellsEveryInput(t *testing.T) {
	sets := [][]string{
		{"hello", "world", "lemon"},
		{"apple", "paper", "ppp"},
		{"zebra", "bread", "dread"},
	}

	for _, words := range sets {
		pool := Combine(words)
		for _, w := range words {
			if !Spellable(w, pool) {
				t.Errorf("Spellable(%q, Combine(%v)=%q) = false, want true", w, words, pool)
			}
		}
		if !slices.IsSorted([]rune(pool)) {
			t.Errorf("Combine(%v) = %q, want sorted letters", words, pool)
		}
	}
}

func TestCountLetters(t *testing.T) {
	got := CountLetters("banana")
	want := Letters{'b': 1, 'a': 3, 'n': 2}

	if len(got) != len(want) {
		t.Fatalf("CountLetters(banana) = %v, want %v", got, want)
	}
	for r, n := range want {
		if got[r] != n {
			t.Errorf("CountLetters(banana)[%q] = %d, want %d", r, got[r], n)
		}
	}
}
