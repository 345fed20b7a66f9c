package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icash/internal/config"
	"github.com/vovakirdan/icash/internal/game"
	"github.com/vovakirdan/icash/internal/state"
)

var flagRaw bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the saved game",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved game",
	Long: `Prints the saved game record. A missing record is created with a new
game, exactly as 'icash play' would.`,
	Args: cobra.NoArgs,
	RunE: runStateShow,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the saved game with a new one",
	Args:  cobra.NoArgs,
	RunE:  runStateReset,
}

func init() {
	stateShowCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the decoded struct")
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}

func openSaves() (*state.Store, error) {
	path, err := config.ExpandPath(cfg.Save.Path)
	if err != nil {
		return nil, err
	}
	return state.NewStore(path,
		state.WithStrictBool(cfg.Save.StrictBool),
		state.WithLogger(logger),
	), nil
}

func runStateShow(cmd *cobra.Command, args []string) error {
	saves, err := openSaves()
	if err != nil {
		return err
	}
	st, err := saves.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagRaw {
		fmt.Fprintf(out, "%# v\n", pretty.Formatter(st))
		return nil
	}

	fmt.Fprintf(out, "record:  %s\n", saves.Path())
	fmt.Fprintf(out, "scene:   %s\n", st.Scene)
	fmt.Fprintf(out, "mode:    %s\n", st.Mode)
	switch {
	case st.Timed():
		fmt.Fprintf(out, "timer:   %s left\n", game.FormatTime(*st.TimeLeft))
	case st.WithTimer != nil:
		fmt.Fprintln(out, "timer:   off")
	}
	if st.CharSeq != "" {
		fmt.Fprintf(out, "letters: %s\n", strings.ToUpper(st.CharSeq))
	}
	fmt.Fprintf(out, "score:   %s\n", humanize.Comma(int64(st.Score)))
	fmt.Fprintf(out, "retries: %d of %d\n", st.Retries, state.MaxRetries)
	if st.ValidWords != nil {
		fmt.Fprintf(out, "to find: %s\n", humanize.Comma(int64(len(st.ValidWords))))
	}
	fmt.Fprintf(out, "used:    %s words\n", humanize.Comma(int64(len(st.UsedWords))))
	return nil
}

func runStateReset(cmd *cobra.Command, args []string) error {
	saves, err := openSaves()
	if err != nil {
		return err
	}
	if err := saves.Reset(); err != nil {
		return err
	}
	logger.Info("saved game reset", "path", saves.Path())
	return nil
}
