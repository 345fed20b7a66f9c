// Package game drives a play session: scene changes, puzzle draws, guesses,
// retries, the countdown and the quit/save decision. It holds no UI code;
// the platform layer forwards player intents to it and renders its state.
package game

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
)

// ErrWrongScene is returned when an action is not available in the current scene.
var ErrWrongScene = errors.New("game: action not allowed in this scene")

// DefaultTimerMinutes are the countdown choices; 0 is "NO TIME".
var DefaultTimerMinutes = []int{0, 1, 3, 5, 7, 10}

// Options configures a Game.
type Options struct {
	TimerMinutes []int
	Logger       *log.Logger
}

// Game is one play session over a shared engine.
type Game struct {
	engine *engine.Engine
	state  *state.GameState
	logger *log.Logger

	timerMinutes []int
	timerCursor  int
	wordsFound   int
}

// GuessResult describes the outcome of one submitted guess.
type GuessResult struct {
	Word      string
	Ignored   bool // Empty input, nothing changed
	Accepted  bool
	Points    int
	NewPuzzle bool // All answers found, a new puzzle was drawn
	GameOver  bool
}

// QuitAction tells the caller what a quit request requires.
type QuitAction int

const (
	// QuitResetRecord means the session ends and the record is reset to defaults.
	QuitResetRecord QuitAction = iota
	// QuitAskToSave means the player must choose whether to keep progress.
	QuitAskToSave
)

// New creates a session operating on st.
func New(e *engine.Engine, st *state.GameState, opts Options) *Game {
	timers := opts.TimerMinutes
	if len(timers) == 0 {
		timers = DefaultTimerMinutes
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		engine:       e,
		state:        st,
		logger:       logger,
		timerMinutes: slices.Clone(timers),
	}
}

// State returns the live state. Callers must not modify it.
func (g *Game) State() *state.GameState {
	return g.state
}

// Scene returns the current scene.
func (g *Game) Scene() state.Scene {
	return g.state.Scene
}

// WordsFound returns the number of answers accepted in this session.
func (g *Game) WordsFound() int {
	return g.wordsFound
}

// Start leaves the title screen.
func (g *Game) Start() error {
	return g.state.Transition(state.SceneModes)
}

// Modes lists the selectable game modes.
func (g *Game) Modes() []registry.Info {
	return registry.List()
}

// SelectMode picks the puzzle type and moves on to the timer choice.
func (g *Game) SelectMode(mode state.Mode) error {
	if g.state.Scene != state.SceneModes {
		return fmt.Errorf("%w: select mode in %s", ErrWrongScene, g.state.Scene)
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("game: %w %q", registry.ErrUnknownMode, mode.String())
	}

	g.state.Mode = mode
	g.timerCursor = 0
	g.logger.Debug("mode selected", "mode", mode)
	return g.state.Transition(state.SceneSetTimer)
}

// TimerLabel returns the currently highlighted timer choice.
func (g *Game) TimerLabel() string {
	return TimerLabel(g.timerMinutes[g.timerCursor])
}

// CycleTimer highlights the next timer choice, wrapping around.
func (g *Game) CycleTimer() {
	g.timerCursor = (g.timerCursor + 1) % len(g.timerMinutes)
}

// ConfirmTimer applies the highlighted timer choice, draws the first puzzle
// and starts play. If no puzzle can be drawn the game ends immediately.
func (g *Game) ConfirmTimer() error {
	if g.state.Scene != state.SceneSetTimer {
		return fmt.Errorf("%w: confirm timer in %s", ErrWrongScene, g.state.Scene)
	}

	minutes := g.timerMinutes[g.timerCursor]
	if minutes == 0 {
		g.state.WithTimer = state.Bool(false)
		g.state.TimeLeft = nil
	} else {
		g.state.WithTimer = state.Bool(true)
		g.state.TimeLeft = state.Int(60 * minutes)
	}

	if err := g.state.Transition(state.ScenePlay); err != nil {
		return err
	}
	if err := g.newPuzzle(); err != nil {
		g.endGame("no puzzle")
		return err
	}

	g.logger.Info("game started", "mode", g.state.Mode, "timer", TimerLabel(minutes))
	return nil
}

// Guess submits the player's word.
func (g *Game) Guess(text string) (GuessResult, error) {
	if g.state.Scene != state.ScenePlay {
		return GuessResult{}, fmt.Errorf("%w: guess in %s", ErrWrongScene, g.state.Scene)
	}

	word := strings.ToLower(strings.TrimSpace(text))
	res := GuessResult{Word: word}
	if word == "" {
		res.Ignored = true
		return res, nil
	}

	idx := slices.Index(g.state.ValidWords, word)
	if idx < 0 {
		if g.state.Retries > 0 {
			g.state.Retries--
		}
		g.logger.Debug("guess rejected", "word", word, "retries", g.state.Retries)
		if g.state.Retries == 0 {
			g.endGame("out of retries")
			res.GameOver = true
		}
		return res, nil
	}

	points, err := engine.Score(word)
	if err != nil {
		return res, fmt.Errorf("game: %w", err)
	}

	g.state.Score += points
	g.state.ValidWords = slices.Delete(g.state.ValidWords, idx, idx+1)
	g.state.UsedWords = append(g.state.UsedWords, word)
	g.wordsFound++
	res.Accepted = true
	res.Points = points
	g.logger.Debug("guess accepted", "word", word, "points", points, "score", g.state.Score)

	if len(g.state.ValidWords) == 0 {
		if err := g.newPuzzle(); err != nil {
			g.endGame("no puzzle")
			res.GameOver = true
			return res, err
		}
		res.NewPuzzle = true
	}

	return res, nil
}

// Tick advances a timed game by one second. It reports whether time ran out.
func (g *Game) Tick() bool {
	if g.state.Scene != state.ScenePlay || !g.state.Timed() {
		return false
	}

	left := *g.state.TimeLeft
	if left > 0 {
		left--
	}
	g.state.TimeLeft = state.Int(left)

	if left == 0 {
		g.endGame("time up")
		return true
	}
	return false
}

// RequestQuit handles a close request. From play the player is asked whether
// to keep progress; from any other scene the record is simply reset.
func (g *Game) RequestQuit() QuitAction {
	if g.state.Scene == state.ScenePlay {
		if err := g.state.Transition(state.SceneSave); err == nil {
			return QuitAskToSave
		}
	}
	return QuitResetRecord
}

// ResolveQuit returns the state to write on exit: the live state when the
// player keeps progress from the save prompt, the default state otherwise.
func (g *Game) ResolveQuit(keep bool) *state.GameState {
	if keep && g.state.Scene == state.SceneSave {
		g.logger.Info("keeping progress", "score", g.state.Score, "words_left", len(g.state.ValidWords))
		return g.state
	}
	return state.Default()
}

// Restart leaves the game-over screen for a new game. Score, retries, timer
// and puzzle are reset; used words are kept so they are not drawn again.
func (g *Game) Restart() error {
	if err := g.state.Transition(state.SceneModes); err != nil {
		return err
	}

	g.state.Mode = state.ModeNone
	g.state.WithTimer = nil
	g.state.TimeLeft = nil
	g.state.CharSeq = ""
	g.state.Retries = state.MaxRetries
	g.state.Score = 0
	g.state.ValidWords = nil
	g.wordsFound = 0
	return nil
}

// newPuzzle replaces the puzzle using the generator of the current mode.
// The state is only changed when generation succeeds.
func (g *Game) newPuzzle() error {
	gen, err := registry.Get(g.state.Mode)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	p, err := gen.Generate(g.engine, g.state)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.state.CharSeq = p.CharSeq
	g.state.ValidWords = p.ValidWords
	g.logger.Debug("new puzzle", "mode", g.state.Mode, "letters", p.CharSeq, "answers", len(p.ValidWords))
	return nil
}

func (g *Game) endGame(reason string) {
	if err := g.state.Transition(state.SceneGameOver); err != nil {
		g.logger.Error("cannot end game", "error", err)
		return
	}
	g.logger.Info("game over", "reason", reason, "mode", g.state.Mode, "score", g.state.Score, "words", g.wordsFound)
}

// TimerLabel formats a timer choice the way the selector shows it.
func TimerLabel(minutes int) string {
	if minutes == 0 {
		return "NO TIME"
	}
	return fmt.Sprintf("%d MIN.", minutes)
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
