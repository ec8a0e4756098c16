// mines is a terminal minesweeper with presets, best times and SSH play.
//
// Usage:
//
//	mines list              - List board presets
//	mines play [preset]     - Play a board (default preset from config)
//	mines menu              - Start menu to pick boards interactively
//	mines serve             - Start SSH server for remote play
//	mines scores [preset]   - Show best times and stats
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible boards
//	--db <path>       - Set database path (default: ~/.mines/scores.db)
//	--config <path>   - Use a specific minesweeper.yaml
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

// appConfig is loaded before any subcommand runs.
var appConfig config.Config

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mines",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal minesweeper with configurable board presets,
mouse support, a best-times scoreboard and an SSH server for remote play.

Available commands:
  list     - Show all board presets
  play     - Play a board directly
  menu     - Interactive preset picker
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  mines list
  mines play beginner
  mines play custom --rows 20 --cols 40 --bombs 120
  mines menu
  mines serve --ssh :2222
  mines scores expert`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to minesweeper.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the configuration and registers its presets.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	minesweeper.RegisterPresets(cfg)
	logger.Debug("config loaded", "presets", len(cfg.Presets), "default", cfg.DefaultPreset)
	return nil
}
