package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/icash/internal/engine"
	_ "github.com/vovakirdan/icash/internal/puzzle"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
)

// newTestGame returns a game in the PLAY scene. The combine corpus always
// yields the pool "acrt" with answers cat, car and art.
func newTestGame(t *testing.T, mode state.Mode, words []string, timerSteps int) *Game {
	t.Helper()

	e := engine.New(engine.NewCorpus(words, 5), engine.WithSeed(1))
	g := New(e, state.Default(), Options{})

	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := g.SelectMode(mode); err != nil {
		t.Fatalf("SelectMode(%s) failed: %v", mode, err)
	}
	for range timerSteps {
		g.CycleTimer()
	}
	if err := g.ConfirmTimer(); err != nil {
		t.Fatalf("ConfirmTimer() failed: %v", err)
	}
	return g
}

var combineWords = []string{"cat", "car", "art"}

func TestSessionSetup(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)
	st := g.State()

	if st.Scene != state.ScenePlay {
		t.Fatalf("Scene = %s, want PLAY", st.Scene)
	}
	if st.Timed() {
		t.Error("NO TIME game reports a running timer")
	}
	if st.WithTimer == nil || *st.WithTimer {
		t.Errorf("WithTimer = %v, want false", st.WithTimer)
	}
	if st.CharSeq != "acrt" {
		t.Errorf("CharSeq = %q, want acrt", st.CharSeq)
	}
	if !slices.Equal(st.ValidWords, combineWords) {
		t.Errorf("ValidWords = %v, want %v", st.ValidWords, combineWords)
	}
}

func TestTimerCycle(t *testing.T) {
	e := engine.New(engine.NewCorpus(combineWords, 5), engine.WithSeed(1))
	g := New(e, state.Default(), Options{})

	want := []string{"NO TIME", "1 MIN.", "3 MIN.", "5 MIN.", "7 MIN.", "10 MIN.", "NO TIME"}
	for i, label := range want {
		if got := g.TimerLabel(); got != label {
			t.Errorf("TimerLabel() after %d cycles = %q, want %q", i, got, label)
		}
		g.CycleTimer()
	}
}

func TestGuess(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)

	res, err := g.Guess("   ")
	if err != nil || !res.Ignored {
		t.Errorf("Guess(blank) = %+v, %v, want ignored", res, err)
	}
	if g.State().Retries != state.MaxRetries {
		t.Errorf("blank guess cost a retry")
	}

	res, err = g.Guess(" CAT ")
	if err != nil {
		t.Fatalf("Guess(cat) failed: %v", err)
	}
	if !res.Accepted || res.Points != 5 {
		t.Errorf("Guess(cat) = %+v, want accepted for 5 points", res)
	}
	st := g.State()
	if st.Score != 5 {
		t.Errorf("Score = %d, want 5", st.Score)
	}
	if slices.Contains(st.ValidWords, "cat") {
		t.Errorf("ValidWords = %v, cat should be removed", st.ValidWords)
	}
	if !slices.Contains(st.UsedWords, "cat") {
		t.Errorf("UsedWords = %v, want cat recorded", st.UsedWords)
	}

	// A found word no longer counts.
	res, _ = g.Guess("cat")
	if res.Accepted {
		t.Error("Guess(cat) accepted twice")
	}
	if st.Retries != state.MaxRetries-1 {
		t.Errorf("Retries = %d, want %d", st.Retries, state.MaxRetries-1)
	}
	if g.WordsFound() != 1 {
		t.Errorf("WordsFound() = %d, want 1", g.WordsFound())
	}
}

func TestGuessRefreshesPuzzle(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)

	var last GuessResult
	for _, w := range combineWords {
		res, err := g.Guess(w)
		if err != nil {
			t.Fatalf("Guess(%s) failed: %v", w, err)
		}
		last = res
	}

	if !last.NewPuzzle {
		t.Errorf("last Guess() = %+v, want a new puzzle", last)
	}
	st := g.State()
	if st.Scene != state.ScenePlay || len(st.ValidWords) != 3 {
		t.Errorf("after refresh scene=%s valid=%v, want PLAY with 3 answers", st.Scene, st.ValidWords)
	}
	if st.Score != 5+5+3 {
		t.Errorf("Score = %d, want 13", st.Score)
	}
}

func TestOutOfRetries(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)

	for i := range state.MaxRetries {
		res, err := g.Guess("zzz")
		if err != nil {
			t.Fatalf("Guess(zzz) failed: %v", err)
		}
		if res.GameOver != (i == state.MaxRetries-1) {
			t.Errorf("wrong guess #%d GameOver = %v", i+1, res.GameOver)
		}
	}

	if g.Scene() != state.SceneGameOver {
		t.Fatalf("Scene = %s, want GAME_OVER", g.Scene())
	}
	if _, err := g.Guess("cat"); !errors.Is(err, ErrWrongScene) {
		t.Errorf("Guess() after game over error = %v, want ErrWrongScene", err)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, state.ModeAnagram, []string{"notes", "stone", "onset"}, 1)
	shown := g.State().CharSeq

	g.Guess("stone")
	for range state.MaxRetries {
		g.Guess("zzz")
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	st := g.State()
	if st.Scene != state.SceneModes {
		t.Errorf("Scene = %s, want MODES", st.Scene)
	}
	if st.Retries != state.MaxRetries || st.Score != 0 || st.TimeLeft != nil || st.ValidWords != nil {
		t.Errorf("Restart() left progress behind: %+v", st)
	}
	if !slices.Contains(st.UsedWords, shown) {
		t.Errorf("UsedWords = %v, want drawn word %q kept", st.UsedWords, shown)
	}
	if g.WordsFound() != 0 {
		t.Errorf("WordsFound() = %d, want 0", g.WordsFound())
	}

	if err := g.Restart(); !errors.Is(err, state.ErrInvalidTransition) {
		t.Errorf("Restart() from MODES error = %v, want ErrInvalidTransition", err)
	}
}

func TestTickCountdown(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 1)

	if left := *g.State().TimeLeft; left != 60 {
		t.Fatalf("TimeLeft = %d, want 60", left)
	}

	for i := 1; i < 60; i++ {
		if g.Tick() {
			t.Fatalf("Tick() #%d reported expiry early", i)
		}
	}
	if !g.Tick() {
		t.Error("Tick() #60 did not report expiry")
	}
	if g.Scene() != state.SceneGameOver {
		t.Errorf("Scene = %s, want GAME_OVER", g.Scene())
	}
	if g.Tick() {
		t.Error("Tick() after game over reported expiry again")
	}
}

func TestTickUntimed(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)
	if g.Tick() {
		t.Error("Tick() expired an untimed game")
	}
	if g.State().TimeLeft != nil {
		t.Errorf("TimeLeft = %v, want nil", *g.State().TimeLeft)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, state.ModeCombine, combineWords, 0)
	g.Guess("car")

	if got := g.RequestQuit(); got != QuitAskToSave {
		t.Fatalf("RequestQuit() from PLAY = %v, want QuitAskToSave", got)
	}
	if g.Scene() != state.SceneSave {
		t.Errorf("Scene = %s, want SAVE", g.Scene())
	}

	kept := g.ResolveQuit(true)
	if kept.Score != 5 || kept.Scene != state.SceneSave {
		t.Errorf("ResolveQuit(true) = %+v, want live state", kept)
	}

	dropped := g.ResolveQuit(false)
	if dropped.Score != 0 || dropped.Scene != state.SceneStart {
		t.Errorf("ResolveQuit(false) = %+v, want defaults", dropped)
	}
}

func TestQuitOutsidePlay(t *testing.T) {
	e := engine.New(engine.NewCorpus(combineWords, 5), engine.WithSeed(1))
	g := New(e, state.Default(), Options{})
	g.Start()

	if got := g.RequestQuit(); got != QuitResetRecord {
		t.Errorf("RequestQuit() from MODES = %v, want QuitResetRecord", got)
	}
	if st := g.ResolveQuit(true); st.Scene != state.SceneStart {
		t.Errorf("ResolveQuit(true) outside SAVE = %+v, want defaults", st)
	}
}

func TestAnagramCorpusExhausted(t *testing.T) {
	g := newTestGame(t, state.ModeAnagram, []string{"cat"}, 0)

	res, err := g.Guess("cat")
	if !errors.Is(err, engine.ErrCorpusExhausted) {
		t.Errorf("Guess(cat) error = %v, want ErrCorpusExhausted", err)
	}
	if !res.Accepted || !res.GameOver {
		t.Errorf("Guess(cat) = %+v, want accepted and game over", res)
	}
	if g.Scene() != state.SceneGameOver {
		t.Errorf("Scene = %s, want GAME_OVER", g.Scene())
	}
}

func TestSelectModeErrors(t *testing.T) {
	e := engine.New(engine.NewCorpus(combineWords, 5), engine.WithSeed(1))
	g := New(e, state.Default(), Options{})

	if err := g.SelectMode(state.ModeCombine); !errors.Is(err, ErrWrongScene) {
		t.Errorf("SelectMode() from START error = %v, want ErrWrongScene", err)
	}

	g.Start()
	if err := g.SelectMode(state.ModeNone); !errors.Is(err, registry.ErrUnknownMode) {
		t.Errorf("SelectMode(none) error = %v, want ErrUnknownMode", err)
	}
	if err := g.ConfirmTimer(); !errors.Is(err, ErrWrongScene) {
		t.Errorf("ConfirmTimer() from MODES error = %v, want ErrWrongScene", err)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{125, "2:05"},
		{600, "10:00"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.seconds); got != tc.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
