// Package puzzle implements the game modes: a pool of letters merged from
// several random words, and single-word anagrams.
package puzzle

import (
	"fmt"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
)

// DefaultSetSize is the number of words merged into one letter pool.
const DefaultSetSize = 3

// Package-level variables for config
var (
	setSize = DefaultSetSize
)

// SetSetSize sets how many words are merged per combine puzzle.
// Values below 1 restore the default.
func SetSetSize(n int) {
	if n < 1 {
		n = DefaultSetSize
	}
	setSize = n
}

// Combine merges random words into one letter pool; every corpus word that
// can be spelled from the pool is an answer.
type Combine struct{}

func init() {
	registry.Register(Combine{})
	registry.Register(Anagram{})
}

// Mode returns state.ModeCombine.
func (Combine) Mode() state.Mode { return state.ModeCombine }

// Title returns the display name.
func (Combine) Title() string { return "Random Words" }

// Description returns a one-line summary.
func (Combine) Description() string {
	return fmt.Sprintf("Find every word hidden in letters merged from %d random words", setSize)
}

// Generate draws a word set and builds the pool from it. Drawn words are not
// recorded as used.
func (Combine) Generate(e *engine.Engine, _ *state.GameState) (registry.Puzzle, error) {
	words, err := e.Selector.PickSetOfWords(setSize)
	if err != nil {
		return registry.Puzzle{}, fmt.Errorf("puzzle: combine: %w", err)
	}

	pool := engine.Combine(words)
	return registry.Puzzle{
		CharSeq:    pool,
		ValidWords: e.Validator.ValidWordsFor(pool),
	}, nil
}
