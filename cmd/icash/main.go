// icash is a terminal word game: find every word hidden in a pool of letters.
//
// Usage:
//
//	icash play                   - Play in the terminal
//	icash modes                  - List game modes
//	icash combine <word>...      - Build the letter pool of a word set
//	icash check <word> <pool>    - Check a guess against a pool
//	icash anagrams <word>        - List anagrams of a word
//	icash score <word>...        - Score words
//	icash puzzle --mode <mode>   - Draw a puzzle and print its answers
//	icash scores [mode]          - Show high scores
//	icash state show|reset       - Inspect or reset the saved game
//
// Global flags:
//
//	--config <path>     - YAML config file
//	--seed <value>      - RNG seed for reproducible draws
//	--words <path>      - Word list (default: embedded)
//	--save <path>       - Save record (default: ~/.icash/save_file.txt)
//	--db <path>         - Scores database (default: ~/.icash/scores.db)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icash/internal/config"
	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/puzzle" // registers the game modes
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagWords    string
	flagSave     string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// Loaded by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icash",
	Short: "ICA$H - find the words hidden in the letters",
	Long: `ICA$H is a terminal word game. Each puzzle shows a pool of letters;
find every dictionary word that can be spelled from it before you run out
of retries or time.

Available commands:
  play      - Play in the terminal
  modes     - List game modes
  combine   - Build the letter pool of a word set
  check     - Check a guess against a pool
  anagrams  - List anagrams of a word
  score     - Score words
  puzzle    - Draw a puzzle and print its answers
  scores    - View high scores
  state     - Inspect or reset the saved game

Examples:
  icash play
  icash check cat acrt
  icash puzzle --mode anagram --seed 42
  icash scores combine`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagWords, "words", "", "Path to word list (default: embedded list)")
	pf.StringVar(&flagSave, "save", "", "Path to save record")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(anagramsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stateCmd)
}

// setup loads configuration (.env, YAML, environment, flags in that order of
// precedence, lowest first) and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded, os.Getenv); err != nil {
		return err
	}
	applyFlags(&loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	puzzle.SetSetSize(cfg.Game.SetSize)

	// Commands log to stderr; play replaces the logger so the TUI stays clean.
	l, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func applyFlags(c *config.Config) {
	if flagWords != "" {
		c.Corpus.Path = flagWords
	}
	if flagSave != "" {
		c.Save.Path = flagSave
	}
	if flagDBPath != "" {
		c.Scores.DB = flagDBPath
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		c.Log.File = flagLogFile
	}
}

// newLogger builds the process logger. A configured log file wins over w.
func newLogger(w io.Writer, lc config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", lc.Level, err)
	}

	if lc.File != "" {
		path, err := config.ExpandPath(lc.File)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "icash",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}

// openEngine loads the configured corpus and builds the engine over it.
func openEngine() (*engine.Engine, error) {
	var (
		corpus *engine.Corpus
		err    error
	)
	if cfg.Corpus.Path == "" {
		corpus, err = engine.DefaultCorpus(cfg.Corpus.MaxWordLength)
	} else {
		path, perr := config.ExpandPath(cfg.Corpus.Path)
		if perr != nil {
			return nil, perr
		}
		corpus, err = engine.OpenCorpus(path, cfg.Corpus.MaxWordLength)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("corpus loaded", "words", corpus.Len(), "path", cfg.Corpus.Path, "max_len", cfg.Corpus.MaxWordLength)
	return engine.New(corpus,
		engine.WithSeed(flagSeed),
		engine.WithMaxAttempts(cfg.Game.MaxDrawAttempts),
	), nil
}

// discardLogger is used while the TUI owns the terminal and no log file is set.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
