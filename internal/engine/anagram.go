package engine

import "slices"

// AnagramFinder looks up corpus words with exactly the same letters as a given word.
type AnagramFinder struct {
	corpus *Corpus
}

// NewAnagramFinder creates a finder backed by c.
func NewAnagramFinder(c *Corpus) *AnagramFinder {
	return &AnagramFinder{corpus: c}
}

// AnagramsOf returns every corpus entry whose sorted letters equal those of
// word, in corpus order. word itself is included when it is in the corpus.
func (f *AnagramFinder) AnagramsOf(word string) []string {
	matches := f.corpus.byKey[signature(word)]
	if len(matches) == 0 {
		return nil
	}
	return slices.Clone(matches)
}

// signature returns the letters of s in ascending order.
func signature(s string) string {
	runes := []rune(s)
	slices.Sort(runes)
	return string(runes)
}
