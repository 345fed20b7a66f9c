// Package state holds the mutable game-state record and its flat
// key=value persistence format.
package state

import (
	"errors"
	"fmt"
	"slices"
)

// MaxRetries is the wrong-guess budget of a fresh game.
const MaxRetries = 3

var (
	// ErrInvalidTransition is returned for a scene change outside the transition table.
	ErrInvalidTransition = errors.New("state: invalid scene transition")

	// ErrMalformedSaveRecord is returned when a save record cannot be decoded.
	ErrMalformedSaveRecord = errors.New("state: malformed save record")
)

// Scene is the current phase of a session.
type Scene string

const (
	SceneStart    Scene = "START"
	SceneModes    Scene = "MODES"
	SceneSetTimer Scene = "SET_TIMER"
	ScenePlay     Scene = "PLAY"
	SceneGameOver Scene = "GAME_OVER"
	// SceneSave is the quit prompt shown mid-game. It is written to the
	// record as-is but always resumes as ScenePlay.
	SceneSave Scene = "SAVE"
)

var scenes = []Scene{SceneStart, SceneModes, SceneSetTimer, ScenePlay, SceneGameOver, SceneSave}

// ParseScene returns the scene named s.
func ParseScene(s string) (Scene, error) {
	for _, sc := range scenes {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown scene %q", s)
}

// transitions lists the allowed next scenes for each scene.
var transitions = map[Scene][]Scene{
	SceneStart:    {SceneModes},
	SceneModes:    {SceneSetTimer},
	SceneSetTimer: {ScenePlay},
	ScenePlay:     {SceneGameOver, SceneSave},
	SceneGameOver: {SceneModes},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to Scene) bool {
	return slices.Contains(transitions[from], to)
}

// Mode is the selected puzzle type. The values are the names used in the
// save record.
type Mode string

const (
	ModeNone    Mode = ""
	ModeCombine Mode = "RANDOM_WORDS"
	ModeAnagram Mode = "ANAGRAMS"
)

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNone, ModeCombine, ModeAnagram:
		return Mode(s), nil
	}
	return ModeNone, fmt.Errorf("unknown mode %q", s)
}

// String returns a display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCombine:
		return "combine"
	case ModeAnagram:
		return "anagram"
	default:
		return "none"
	}
}

// GameState is the whole mutable state of a session.
type GameState struct {
	Scene     Scene
	Mode      Mode
	WithTimer *bool
	TimeLeft  *int // seconds
	CharSeq   string
	Retries   int
	Score     int

	// ValidWords are the answers still open for CharSeq. nil means no puzzle.
	ValidWords []string

	// UsedWords are all words ever drawn or accepted. Entries are never removed.
	UsedWords []string
}

// Default returns the state of a brand-new game.
func Default() *GameState {
	return &GameState{
		Scene:     SceneStart,
		Mode:      ModeNone,
		Retries:   MaxRetries,
		UsedWords: []string{},
	}
}

// Transition moves to scene to, rejecting changes outside the transition table.
func (s *GameState) Transition(to Scene) error {
	if !CanTransition(s.Scene, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Scene, to)
	}
	s.Scene = to
	return nil
}

// Timed reports whether a countdown is running for this state.
func (s *GameState) Timed() bool {
	return s.WithTimer != nil && *s.WithTimer && s.TimeLeft != nil
}

// Clone returns a deep copy of s.
func (s *GameState) Clone() *GameState {
	c := *s
	if s.WithTimer != nil {
		c.WithTimer = Bool(*s.WithTimer)
	}
	if s.TimeLeft != nil {
		c.TimeLeft = Int(*s.TimeLeft)
	}
	c.ValidWords = slices.Clone(s.ValidWords)
	c.UsedWords = slices.Clone(s.UsedWords)
	return &c
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }
