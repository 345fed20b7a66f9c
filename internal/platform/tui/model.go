package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/icash/internal/game"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
	"github.com/vovakirdan/icash/internal/storage"
)

// Options wires a Model to its session and persistence.
type Options struct {
	Game      *game.Game
	Saves     *state.Store   // Game-state record; required
	Scores    *storage.Store // High scores; nil disables score recording
	SessionID string
	Width     int
	Height    int
	Logger    *log.Logger
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game      *game.Game
	saves     *state.Store
	scores    *storage.Store
	sessionID string
	logger    *log.Logger

	modes  []registry.Info
	cursor int
	input  textinput.Model
	keys   KeyMap
	help   help.Model

	width  int
	height int

	message    string // Feedback for the last action
	highScore  int
	scoreSaved bool // Whether the score of the current game over was recorded
	quitting   bool
	err        error
}

// NewModel creates a model for the session in opts.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "type a word"
	ti.CharLimit = 32
	ti.Width = 20
	ti.Prompt = "> "

	m := Model{
		game:      opts.Game,
		saves:     opts.Saves,
		scores:    opts.Scores,
		sessionID: opts.SessionID,
		logger:    logger,
		modes:     opts.Game.Modes(),
		input:     ti,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     opts.Width,
		height:    opts.Height,
	}

	// A resumed game goes straight back to typing.
	if m.game.Scene() == state.ScenePlay {
		m.input.Focus()
	}
	return m
}

// Init starts the countdown ticker and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(time.Second), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey dispatches keyboard input by scene.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scene := m.game.Scene()

	if key.Matches(msg, m.keys.Quit) {
		if scene == state.SceneSave {
			return m.finish(false)
		}
		return m.requestQuit()
	}

	switch scene {
	case state.SceneStart:
		if key.Matches(msg, m.keys.Select) {
			m.apply(m.game.Start())
		}

	case state.SceneModes:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.modes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.modes) > 0 {
				m.apply(m.game.SelectMode(m.modes[m.cursor].Mode))
			}
		}

	case state.SceneSetTimer:
		switch {
		case key.Matches(msg, m.keys.Cycle):
			m.game.CycleTimer()
		case key.Matches(msg, m.keys.Select):
			return m.startPlay()
		}

	case state.ScenePlay:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitGuess()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case state.SceneGameOver:
		if key.Matches(msg, m.keys.Restart) {
			m.apply(m.game.Restart())
			m.scoreSaved = false
			m.message = ""
		}

	case state.SceneSave:
		switch {
		case key.Matches(msg, m.keys.Yes):
			return m.finish(true)
		case key.Matches(msg, m.keys.No):
			return m.finish(false)
		}
	}

	return m, nil
}

// startPlay confirms the timer choice and focuses the guess input.
func (m Model) startPlay() (tea.Model, tea.Cmd) {
	if err := m.game.ConfirmTimer(); err != nil {
		m.logger.Error("cannot start game", "error", err)
		m.message = "No puzzle left to play."
		m.recordScore()
		return m, nil
	}

	m.message = ""
	m.input.Reset()
	return m, m.input.Focus()
}

// submitGuess sends the typed word to the session.
func (m Model) submitGuess() (tea.Model, tea.Cmd) {
	res, err := m.game.Guess(m.input.Value())
	m.input.Reset()
	if err != nil {
		m.logger.Error("guess failed", "error", err)
	}

	st := m.game.State()
	switch {
	case res.Ignored:
		return m, nil
	case res.Accepted && res.NewPuzzle:
		m.message = fmt.Sprintf("+%d for %q. All found, new letters!", res.Points, res.Word)
	case res.Accepted && res.GameOver:
		m.message = fmt.Sprintf("+%d for %q. The dictionary ran dry.", res.Points, res.Word)
	case res.Accepted:
		m.message = fmt.Sprintf("+%d for %q", res.Points, res.Word)
	case res.GameOver:
		m.message = fmt.Sprintf("%q is not an answer. No retries left.", res.Word)
	default:
		m.message = fmt.Sprintf("%q is not an answer. %d retries left.", res.Word, st.Retries)
	}

	if res.GameOver {
		m.input.Blur()
		m.recordScore()
	}
	return m, nil
}

// handleTick advances the countdown and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Tick() {
		m.message = "Time is up!"
		m.input.Blur()
		m.recordScore()
	}
	return m, tickCmd(time.Second)
}

// requestQuit asks the session how to close: from play the player chooses
// whether to keep progress, anywhere else the record is reset.
func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.game.RequestQuit() == game.QuitAskToSave {
		m.input.Blur()
		return m, nil
	}
	return m.finish(false)
}

// finish writes the record chosen by the player and exits.
func (m Model) finish(keep bool) (tea.Model, tea.Cmd) {
	if err := m.saves.Save(m.game.ResolveQuit(keep)); err != nil {
		m.logger.Error("cannot write save record", "error", err)
		m.err = err
	}
	m.quitting = true
	return m, tea.Quit
}

// recordScore stores the finished game once.
func (m *Model) recordScore() {
	if m.scoreSaved || m.game.Scene() != state.SceneGameOver {
		return
	}
	m.scoreSaved = true

	st := m.game.State()
	if m.scores == nil || st.Mode == state.ModeNone {
		return
	}

	mode := st.Mode.String()
	if high, err := m.scores.HighScore(mode); err == nil {
		m.highScore = max(high, st.Score)
	}
	if st.Score == 0 {
		return
	}

	_, err := m.scores.SaveScore(storage.ScoreEntry{
		SessionID:  m.sessionID,
		Mode:       mode,
		Score:      st.Score,
		Timed:      st.Timed(),
		WordsFound: m.game.WordsFound(),
	})
	if err != nil {
		m.logger.Error("cannot save score", "error", err)
	}
}

// apply records an action error for display.
func (m *Model) apply(err error) {
	if err != nil {
		m.logger.Warn("action rejected", "scene", m.game.Scene(), "error", err)
		m.message = err.Error()
		return
	}
	m.message = ""
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the session in opts.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
