package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icash/internal/config"
	"github.com/vovakirdan/icash/internal/platform/tui"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best scores per game mode. Without a mode every mode is
listed.

Examples:
  icash scores
  icash scores combine --limit 20
  icash scores --interactive
  icash scores anagram --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the given mode")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	var modes []registry.Info
	if len(args) == 1 {
		gen, err := registry.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'icash modes')", err)
		}
		modes = []registry.Info{{Mode: gen.Mode(), Title: gen.Title()}}
	} else {
		modes = registry.List()
	}

	dbPath, err := config.ExpandPath(cfg.Scores.DB)
	if err != nil {
		return err
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			return errors.New("--clear needs a mode")
		}
		if err := store.ClearScores(modes[0].Mode.String()); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", modes[0].Mode)
		fmt.Fprintf(cmd.OutOrStdout(), "Scores for %s cleared.\n", modes[0].Title)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		start := ""
		if len(args) == 1 {
			start = modes[0].Mode.String()
		}
		return tui.RunScoreboard(store, start, width, height)
	}

	for i, m := range modes {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := printModeScores(cmd, store, m); err != nil {
			return err
		}
	}
	return nil
}

func printModeScores(cmd *cobra.Command, store *storage.Store, info registry.Info) error {
	out := cmd.OutOrStdout()
	mode := info.Mode.String()

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Words", "Timer", "When")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, e := range scores {
		timer := "-"
		if e.Timed {
			timer = "yes"
		}
		fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-5s  %s\n",
			i+1, humanize.Comma(int64(e.Score)), e.WordsFound, timer, humanize.Time(e.CreatedAt))
	}

	stats, err := store.GetModeStats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s  Games: %s  Average: %.1f  Words found: %s\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.GamesCount)),
		stats.AvgScore,
		humanize.Comma(int64(stats.TotalWords)),
	)
	return nil
}
