package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icash/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes",
	Long:  `Shows every game mode that can be played or drawn with 'icash puzzle'.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, m := range modes {
		maxNameLen = max(maxNameLen, len(m.Mode.String()))
	}

	// Print header
	fmt.Printf("  %-*s  %-14s  %s\n", maxNameLen, "Name", "Title", "Description")
	fmt.Printf("  %-*s  %-14s  %s\n", maxNameLen, "----", "-----", "-----------")

	for _, m := range modes {
		fmt.Printf("  %-*s  %-14s  %s\n", maxNameLen, m.Mode.String(), m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'icash puzzle --mode <name>' to draw one.")
}
