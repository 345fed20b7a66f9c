package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/icash/internal/state"
)

// DefaultMaxAttempts caps the random draws made before falling back to a scan.
const DefaultMaxAttempts = 1000

// Selector draws random words from a corpus.
type Selector struct {
	corpus      *Corpus
	rng         *rand.Rand
	maxAttempts int
}

// NewSelector creates a selector over c using rng for every draw.
func NewSelector(c *Corpus, rng *rand.Rand, maxAttempts int) *Selector {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Selector{
		corpus:      c,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// PickWord draws a word that is not yet in st.UsedWords, records it there and
// returns it. Random draws are tried first; once the attempt budget is spent
// the corpus is scanned from a random offset, so the call only fails when no
// unused word remains.
func (s *Selector) PickWord(st *state.GameState) (string, error) {
	size := s.corpus.Len()
	if size == 0 {
		return "", fmt.Errorf("%w: corpus is empty", ErrCorpusExhausted)
	}

	used := make(map[string]struct{}, len(st.UsedWords))
	for _, w := range st.UsedWords {
		used[w] = struct{}{}
	}

	for range s.maxAttempts {
		word := s.corpus.At(s.rng.Intn(size))
		if _, ok := used[word]; !ok {
			st.UsedWords = append(st.UsedWords, word)
			return word, nil
		}
	}

	start := s.rng.Intn(size)
	for i := range size {
		word := s.corpus.At((start + i) % size)
		if _, ok := used[word]; !ok {
			st.UsedWords = append(st.UsedWords, word)
			return word, nil
		}
	}

	return "", fmt.Errorf("%w: all %d words used", ErrCorpusExhausted, size)
}

// PickSetOfWords draws n pairwise-distinct words. Distinctness is checked
// within the returned set only; used words are not consulted.
func (s *Selector) PickSetOfWords(n int) ([]string, error) {
	size := s.corpus.Len()
	if n < 1 || size == 0 {
		return nil, fmt.Errorf("%w: cannot draw %d words from %d", ErrInsufficientCorpus, n, size)
	}

	set := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	add := func(word string) {
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		set = append(set, word)
	}

	for attempt := 0; len(set) < n && attempt < s.maxAttempts; attempt++ {
		add(s.corpus.At(s.rng.Intn(size)))
	}

	if len(set) < n {
		for _, i := range s.rng.Perm(size) {
			add(s.corpus.At(i))
			if len(set) == n {
				break
			}
		}
	}

	if len(set) < n {
		return nil, fmt.Errorf("%w: only %d distinct words, need %d", ErrInsufficientCorpus, len(set), n)
	}
	return set, nil
}
