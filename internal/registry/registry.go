// Package registry provides a global registry of puzzle generators.
// Generators register themselves in init() functions, allowing the session
// and the CLI to discover game modes without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/state"
)

// ErrUnknownMode is returned when no generator is registered for a mode.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Puzzle is a freshly drawn challenge: the letters shown to the player and
// every answer that will be accepted.
type Puzzle struct {
	CharSeq    string
	ValidWords []string
}

// Generator builds puzzles for one game mode.
// Generators hold no state of their own; randomness and the corpus come from
// the engine, and words that must not repeat are tracked in the game state.
type Generator interface {
	// Mode returns the mode this generator serves.
	Mode() state.Mode

	// Title returns a human-readable name for menus (e.g., "Random Words").
	Title() string

	// Description returns a one-line explanation of the mode.
	Description() string

	// Generate draws a new puzzle. It may record drawn words in st.UsedWords.
	Generate(e *engine.Engine, st *state.GameState) (Puzzle, error)
}

// Info contains metadata about a registered generator.
type Info struct {
	Mode        state.Mode
	Title       string
	Description string
}

var (
	generators = make(map[state.Mode]Generator)
	mu         sync.RWMutex
)

// Register adds a generator to the registry.
// Panics if a generator for the same mode is already registered.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[g.Mode()]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", g.Mode()))
	}
	generators[g.Mode()] = g
}

// List returns information about all registered generators, sorted by mode name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(generators))
	for _, g := range generators {
		result = append(result, Info{
			Mode:        g.Mode(),
			Title:       g.Title(),
			Description: g.Description(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode.String() < result[j].Mode.String()
	})

	return result
}

// Get returns the generator for mode.
func Get(mode state.Mode) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := generators[mode]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode.String())
	}
	return g, nil
}

// Lookup finds a generator by its display name ("combine", "anagram").
func Lookup(name string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	for mode, g := range generators {
		if mode.String() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, name)
}

// Exists checks if a generator is registered for mode.
func Exists(mode state.Mode) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[mode]
	return ok
}
