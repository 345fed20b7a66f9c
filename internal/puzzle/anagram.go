package puzzle

import (
	"fmt"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
)

// Anagram shows one word; its anagrams in the corpus, the word included,
// are the answers.
type Anagram struct{}

// Mode returns state.ModeAnagram.
func (Anagram) Mode() state.Mode { return state.ModeAnagram }

// Title returns the display name.
func (Anagram) Title() string { return "Anagrams" }

// Description returns a one-line summary.
func (Anagram) Description() string {
	return "Find every word spelled with exactly the letters of the shown word"
}

// Generate draws an unused word and records it in st.UsedWords.
func (Anagram) Generate(e *engine.Engine, st *state.GameState) (registry.Puzzle, error) {
	word, err := e.Selector.PickWord(st)
	if err != nil {
		return registry.Puzzle{}, fmt.Errorf("puzzle: anagram: %w", err)
	}

	return registry.Puzzle{
		CharSeq:    word,
		ValidWords: e.Anagrams.AnagramsOf(word),
	}, nil
}
