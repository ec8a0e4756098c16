package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times",
	Long: `Without a preset, summarize every preset that has been played.
With a preset, list its fastest wins and overall statistics.

Examples:
  mines scores
  mines scores expert
  mines scores beginner --recent
  mines scores beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show latest rounds instead of best times")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the round history of the preset")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a preset")
		}
		if flagRecent {
			return printRecent(store, "")
		}
		return printSummary(store)
	}

	presetID := args[0]
	info, ok := registry.Info(presetID)
	if !ok {
		return fmt.Errorf("unknown preset %q, run 'mines list' to see available boards", presetID)
	}

	if flagClear {
		if err := store.ClearRounds(presetID); err != nil {
			return err
		}
		logger.Info("round history cleared", "preset", presetID)
		return nil
	}

	if flagRecent {
		return printRecent(store, presetID)
	}

	rounds, err := store.BestTimes(presetID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s (%s)\n", info.Title, info.Description)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first best time!\n", presetID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")
		for i, r := range rounds {
			fmt.Printf("  %-4d  %-10s  %s\n", i+1, tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.Stats(presetID)
	if err != nil {
		return err
	}
	if stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d (%.0f%%)", stats.Played, stats.Won, stats.WinRate()*100)
		if stats.Won > 0 {
			fmt.Printf("  Average win: %s", tui.FormatDuration(stats.AvgTime))
		}
		fmt.Println()
	}
	return nil
}

// printSummary lists one line per registered preset.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-14s  %-7s  %-5s  %-10s  %s\n", "Preset", "Played", "Won", "Best", "Last played")
	fmt.Printf("  %-14s  %-7s  %-5s  %-10s  %s\n", "------", "------", "---", "----", "-----------")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-14s  %-7d  %-5d  %-10s  %s\n", g.ID, 0, 0, "--", "never")
			continue
		}
		best := "--"
		if s.BestTime > 0 {
			best = tui.FormatDuration(s.BestTime)
		}
		fmt.Printf("  %-14s  %-7d  %-5d  %-10s  %s\n", g.ID, s.Played, s.Won, best, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRecent lists the latest rounds, of every preset when presetID is empty.
func printRecent(store *storage.Store, presetID string) error {
	rounds, err := store.RecentRounds(presetID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-5s  %-10s  %-8s  %s\n", "Date", "Preset", "Board", "Time", "Revealed", "Outcome")
	for _, r := range rounds {
		board := fmt.Sprintf("%dx%d", r.Rows, r.Cols)
		fmt.Printf("  %-16s  %-12s  %-5s  %-10s  %-8d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Preset, board, tui.FormatDuration(r.Duration), r.Revealed, r.Outcome)
	}
	return nil
}
