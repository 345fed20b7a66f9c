package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/game"
	_ "github.com/vovakirdan/icash/internal/puzzle"
	"github.com/vovakirdan/icash/internal/state"
	"github.com/vovakirdan/icash/internal/storage"
)

func newTestModel(t *testing.T) (Model, *state.Store, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	saves := state.NewStore(filepath.Join(dir, "save_file.txt"))
	scores, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { scores.Close() })

	e := engine.New(engine.NewCorpus([]string{"cat", "car", "art"}, 5), engine.WithSeed(1))
	g := game.New(e, state.Default(), game.Options{})

	m := NewModel(Options{
		Game:      g,
		Saves:     saves,
		Scores:    scores,
		SessionID: "test-session",
		Width:     80,
		Height:    24,
	})
	return m, saves, scores
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func typeWord(word string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)}
}

// toPlay walks from the title screen into an untimed game of the first mode.
func toPlay(t *testing.T, m Model) Model {
	t.Helper()
	m = press(t, m, keyEnter)
	if m.game.Scene() != state.SceneModes {
		t.Fatalf("Scene = %s after enter, want MODES", m.game.Scene())
	}
	m = press(t, m, keyEnter, keyEnter)
	if m.game.Scene() != state.ScenePlay {
		t.Fatalf("Scene = %s, want PLAY", m.game.Scene())
	}
	return m
}

func TestModelPlayAndGuess(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = toPlay(t, m)

	// Modes are sorted by name; "anagram" comes first.
	if m.game.State().Mode != state.ModeAnagram {
		t.Fatalf("Mode = %s, want %s", m.game.State().Mode, state.ModeAnagram)
	}

	word := m.game.State().CharSeq
	m = press(t, m, typeWord(word), keyEnter)

	if m.game.State().Score == 0 {
		t.Errorf("Score = 0 after guessing %q", word)
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q after submit, want empty", m.input.Value())
	}
}

func TestModelGameOverRecordsScore(t *testing.T) {
	m, _, scores := newTestModel(t)
	m = press(t, m, keyEnter, keyDown, keyEnter, keyEnter)
	if m.game.State().Mode != state.ModeCombine {
		t.Fatalf("Mode = %s, want %s", m.game.State().Mode, state.ModeCombine)
	}

	m = press(t, m, typeWord("cat"), keyEnter)
	for range state.MaxRetries {
		m = press(t, m, typeWord("zzz"), keyEnter)
	}
	if m.game.Scene() != state.SceneGameOver {
		t.Fatalf("Scene = %s, want GAME_OVER", m.game.Scene())
	}

	top, err := scores.TopScores("combine", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 5 || top[0].WordsFound != 1 || top[0].SessionID != "test-session" {
		t.Errorf("TopScores() = %+v, want one entry of 5 points", top)
	}

	// Restart goes back to mode selection without recording twice.
	m = press(t, m, keyEnter)
	if m.game.Scene() != state.SceneModes {
		t.Errorf("Scene = %s after restart, want MODES", m.game.Scene())
	}
	if top, _ := scores.TopScores("combine", 10); len(top) != 1 {
		t.Errorf("TopScores() has %d entries, want 1", len(top))
	}
}

func TestModelQuitKeepsProgress(t *testing.T) {
	m, saves, _ := newTestModel(t)
	m = toPlay(t, m)
	m = press(t, m, typeWord(m.game.State().CharSeq), keyEnter)

	m = press(t, m, keyEsc)
	if m.game.Scene() != state.SceneSave {
		t.Fatalf("Scene = %s after esc, want SAVE", m.game.Scene())
	}

	next, cmd := m.Update(typeWord("y"))
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Fatal("answering y did not quit")
	}

	st, err := saves.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if st.Scene != state.ScenePlay || st.Score == 0 {
		t.Errorf("saved state = %+v, want resumable PLAY state with score", st)
	}
}

func TestModelQuitDiscardsProgress(t *testing.T) {
	m, saves, _ := newTestModel(t)
	m = toPlay(t, m)
	m = press(t, m, keyEsc, typeWord("n"))

	st, err := saves.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if st.Scene != state.SceneStart || st.Mode != state.ModeNone {
		t.Errorf("saved state = %+v, want defaults", st)
	}
}

func TestModelTickExpiresTimedGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	cycle := tea.KeyMsg{Type: tea.KeyRight}
	m = press(t, m, keyEnter, keyEnter, cycle, keyEnter)
	if !m.game.State().Timed() {
		t.Fatal("game is not timed after choosing 1 MIN.")
	}

	for range 60 {
		next, cmd := m.Update(TickMsg{})
		m = next.(Model)
		if cmd == nil {
			t.Fatal("tick did not schedule the next tick")
		}
	}
	if m.game.Scene() != state.SceneGameOver {
		t.Errorf("Scene = %s after 60 ticks, want GAME_OVER", m.game.Scene())
	}
}

func TestViewRendersEveryScene(t *testing.T) {
	m, _, _ := newTestModel(t)
	if m.View() == "" {
		t.Error("View() of START is empty")
	}
	m = toPlay(t, m)
	if m.View() == "" {
		t.Error("View() of PLAY is empty")
	}
	m = press(t, m, keyEsc)
	if m.View() == "" {
		t.Error("View() of SAVE is empty")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 2, "abc"},
		{"", 4, "  "},
	}

	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
