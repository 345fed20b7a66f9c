package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icash/internal/engine"
	"github.com/vovakirdan/icash/internal/registry"
	"github.com/vovakirdan/icash/internal/state"
)

var combineCmd = &cobra.Command{
	Use:   "combine <word>...",
	Short: "Build the letter pool of a word set",
	Long: `Prints the smallest pool of letters from which each given word can be
spelled, and every dictionary word that fits it.

Examples:
  icash combine bee bed
  icash combine cat car --words ./words.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

var checkCmd = &cobra.Command{
	Use:   "check <word> <pool>",
	Short: "Check a guess against a pool",
	Long: `Reports whether a word is a valid answer for a pool of letters: it must
be spellable from the pool and be in the dictionary.

Examples:
  icash check cat acrt`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

var anagramsCmd = &cobra.Command{
	Use:   "anagrams <word>",
	Short: "List anagrams of a word",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnagrams,
}

var scoreCmd = &cobra.Command{
	Use:   "score <word>...",
	Short: "Score words",
	Long: `Prints the points each word is worth.

Letter values:
  a e i o n r t l s u = 1   d g = 2   b c m p = 3
  f h v w y = 4   k = 5   j x = 8   q z = 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

var flagPuzzleMode string

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Draw a puzzle and print its answers",
	Long: `Draws one puzzle of the given mode, exactly as a game would, and prints
the letters with every accepted answer. The saved game is not touched.

Examples:
  icash puzzle --mode combine
  icash puzzle --mode anagram --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPuzzle,
}

func init() {
	puzzleCmd.Flags().StringVarP(&flagPuzzleMode, "mode", "m", "combine", "Game mode (see 'icash modes')")
}

func runCombine(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}

	pool := engine.Combine(args)
	fmt.Fprintf(cmd.OutOrStdout(), "pool:  %s\n", pool)
	printWords(cmd, "valid", e.Validator.ValidWordsFor(pool))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}

	word, pool := strings.ToLower(args[0]), strings.ToLower(args[1])
	out := cmd.OutOrStdout()
	switch {
	case e.Validator.Check(word, pool):
		points, err := engine.Score(word)
		if err != nil {
			fmt.Fprintf(out, "%s: valid\n", word)
			return nil
		}
		fmt.Fprintf(out, "%s: valid (%d points)\n", word, points)
	case !engine.Spellable(word, pool):
		fmt.Fprintf(out, "%s: cannot be spelled from %q\n", word, pool)
	default:
		fmt.Fprintf(out, "%s: not in the dictionary\n", word)
	}
	return nil
}

func runAnagrams(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}

	printWords(cmd, "anagrams", e.Anagrams.AnagramsOf(strings.ToLower(args[0])))
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	total := 0
	for _, w := range args {
		points, err := engine.Score(strings.ToLower(w))
		if err != nil {
			return err
		}
		total += points
		fmt.Fprintf(out, "  %-12s %3d\n", w, points)
	}
	if len(args) > 1 {
		fmt.Fprintf(out, "  %-12s %3d\n", "total", total)
	}
	return nil
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	gen, err := registry.Lookup(flagPuzzleMode)
	if err != nil {
		return fmt.Errorf("%w (run 'icash modes')", err)
	}

	e, err := openEngine()
	if err != nil {
		return err
	}

	p, err := gen.Generate(e, state.Default())
	if err != nil {
		return err
	}

	logger.Debug("puzzle drawn", "mode", flagPuzzleMode, "letters", p.CharSeq, "answers", len(p.ValidWords))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", gen.Title(), strings.ToUpper(p.CharSeq))
	printWords(cmd, "answers", p.ValidWords)
	return nil
}

func printWords(cmd *cobra.Command, label string, words []string) {
	out := cmd.OutOrStdout()
	if len(words) == 0 {
		fmt.Fprintf(out, "%s: none\n", label)
		return
	}
	fmt.Fprintf(out, "%s (%d): %s\n", label, len(words), strings.Join(words, " "))
}
