// Package engine implements the word-game rules: the dictionary corpus,
// random word selection, letter-pool building, answer validation, anagram
// lookup and scoring. Everything here is pure logic over an immutable corpus;
// persistence and presentation live in other packages.
package engine

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultMaxWordLength is the longest playable word kept from the dictionary.
const DefaultMaxWordLength = 5

// Markers used by the 12dicts lists to flag inflected and derived forms.
const markerChars = "!%"

//go:embed data/words.txt
var defaultWordList []byte

// Corpus is the filtered, ordered dictionary of playable words.
// It is immutable once built and safe to share by reference.
type Corpus struct {
	words  []string
	index  map[string]struct{}
	byKey  map[string][]string // anagram signature -> words in corpus order
	maxLen int
}

// LoadCorpus reads a line-delimited word list and keeps every entry whose
// cleaned length is at most maxLen. Source order and duplicates are preserved.
func LoadCorpus(r io.Reader, maxLen int) (*Corpus, error) {
	var words []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word, ok := cleanEntry(sc.Text(), maxLen)
		if !ok {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	return newCorpus(words, maxLen), nil
}

// OpenCorpus loads the word list stored at path.
func OpenCorpus(path string, maxLen int) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()

	return LoadCorpus(f, maxLen)
}

// DefaultCorpus loads the word list embedded in the binary.
func DefaultCorpus(maxLen int) (*Corpus, error) {
	return LoadCorpus(bytes.NewReader(defaultWordList), maxLen)
}

// NewCorpus builds a corpus from an in-memory word list, applying the same
// cleaning and length filter as LoadCorpus.
func NewCorpus(words []string, maxLen int) *Corpus {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if word, ok := cleanEntry(w, maxLen); ok {
			kept = append(kept, word)
		}
	}
	return newCorpus(kept, maxLen)
}

func newCorpus(words []string, maxLen int) *Corpus {
	c := &Corpus{
		words:  words,
		index:  make(map[string]struct{}, len(words)),
		byKey:  make(map[string][]string),
		maxLen: maxLen,
	}
	for _, w := range words {
		c.index[w] = struct{}{}
		key := signature(w)
		c.byKey[key] = append(c.byKey[key], w)
	}
	return c
}

// cleanEntry strips the line ending and dictionary markers from a raw entry.
// Blank entries and entries longer than maxLen are rejected.
func cleanEntry(line string, maxLen int) (string, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.ContainsAny(line, markerChars) {
		line = strings.Map(func(r rune) rune {
			if strings.ContainsRune(markerChars, r) {
				return -1
			}
			return r
		}, line)
	}
	if line == "" || utf8.RuneCountInString(line) > maxLen {
		return "", false
	}
	return line, true
}

// Len returns the number of entries, duplicates included.
func (c *Corpus) Len() int {
	return len(c.words)
}

// At returns the i-th entry in source order.
func (c *Corpus) At(i int) string {
	return c.words[i]
}

// Words returns a copy of the entries in source order.
func (c *Corpus) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Contains reports whether word is a corpus entry.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.index[word]
	return ok
}

// MaxWordLength returns the length filter the corpus was built with.
func (c *Corpus) MaxWordLength() int {
	return c.maxLen
}
