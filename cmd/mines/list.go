package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board presets",
	Long:  `Shows the board presets from the loaded configuration.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		marker := ""
		if g.ID == appConfig.DefaultPreset {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-*s  %s%s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a board, or 'mines play custom --rows R --cols C --bombs B'.")
}
