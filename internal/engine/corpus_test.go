package engine

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLoadCorpusFilters(t *testing.T) {
	src := "cat\r\nstar!\nnotes%\n\norchestra\nlisten\nart\ncat\n"

	c, err := LoadCorpus(strings.NewReader(src), 5)
	if err != nil {
		t.Fatalf("LoadCorpus() failed: %v", err)
	}

	want := []string{"cat", "star", "notes", "art", "cat"}
	if got := c.Words(); !slices.Equal(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if c.Contains("listen") {
		t.Error("Contains(listen) = true, want false for a six-letter word")
	}
	if !c.Contains("star") {
		t.Error("Contains(star) = false, want marker stripped")
	}
}

func TestDefaultCorpusInvariant(t *testing.T) {
	c, err := DefaultCorpus(DefaultMaxWordLength)
	if err != nil {
		t.Fatalf("DefaultCorpus() failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("DefaultCorpus() is empty")
	}

	for _, w := range c.Words() {
		if w == "" || utf8.RuneCountInString(w) > DefaultMaxWordLength {
			t.Errorf("corpus entry %q violates length filter", w)
		}
		if strings.ContainsAny(w, "!%") {
			t.Errorf("corpus entry %q still carries a marker", w)
		}
	}
}

func TestNewCorpusMatchesLoad(t *testing.T) {
	words := []string{"cat", "star!", "orchestra", "dog"}
	c := NewCorpus(words, 5)

	want := []string{"cat", "star", "dog"}
	if got := c.Words(); !slices.Equal(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if c.MaxWordLength() != 5 {
		t.Errorf("MaxWordLength() = %d, want 5", c.MaxWordLength())
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	c := NewCorpus([]string{"cat", "dog"}, 5)
	w := c.Words()
	w[0] = "zzz"

	if c.At(0) != "cat" {
		t.Errorf("At(0) = %q after mutating Words(), want cat", c.At(0))
	}
}

func TestOpenCorpusMissing(t *testing.T) {
	_, err := OpenCorpus(filepath.Join(t.TempDir(), "missing.txt"), 5)
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Errorf("OpenCorpus(missing) error = %v, want ErrCorpusUnavailable", err)
	}
}
