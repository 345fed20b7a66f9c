package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icash/internal/config"
	"github.com/vovakirdan/icash/internal/game"
	"github.com/vovakirdan/icash/internal/platform/tui"
	"github.com/vovakirdan/icash/internal/state"
	"github.com/vovakirdan/icash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game. A saved game is resumed where it was left.

Controls:
  Up/Down    - Choose a mode
  Left/Right - Change the timer
  Enter      - Select / submit a word
  N          - New game (after game over)
  Esc/Ctrl+C - Quit (asks whether to keep an unfinished game)

Examples:
  icash play
  icash play --seed 42
  icash play --words ./my-words.txt --log-file /tmp/icash.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs must not reach the terminal while the TUI owns it.
	if cfg.Log.File == "" {
		logger = discardLogger()
	} else {
		l, err := newLogger(io.Discard, cfg.Log)
		if err != nil {
			return err
		}
		logger = l
	}

	e, err := openEngine()
	if err != nil {
		return err
	}

	savePath, err := config.ExpandPath(cfg.Save.Path)
	if err != nil {
		return err
	}
	saves := state.NewStore(savePath,
		state.WithStrictBool(cfg.Save.StrictBool),
		state.WithLogger(logger),
	)

	st, err := saves.Load()
	if err != nil {
		if !errors.Is(err, state.ErrMalformedSaveRecord) {
			return err
		}
		// Load already fell back to a fresh game.
		logger.Warn("starting a new game", "error", err)
	}

	// Scores are optional; the game runs without them.
	var scores *storage.Store
	if dbPath, err := config.ExpandPath(cfg.Scores.DB); err == nil {
		scores, err = storage.Open(dbPath)
		if err != nil {
			logger.Warn("high scores disabled", "error", err)
			scores = nil
		}
	}
	if scores != nil {
		defer scores.Close()
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sessionID := storage.NewSessionID()
	logger.Info("session started", "session", sessionID, "scene", st.Scene, "mode", st.Mode)

	g := game.New(e, st, game.Options{
		TimerMinutes: cfg.Game.TimerMinutes,
		Logger:       logger,
	})

	return tui.Run(tui.Options{
		Game:      g,
		Saves:     saves,
		Scores:    scores,
		SessionID: sessionID,
		Width:     width,
		Height:    height,
		Logger:    logger,
	})
}
