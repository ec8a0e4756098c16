package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagRows  int
	flagCols  int
	flagBombs int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing the given preset, or the configured default.

Controls:
  Arrows/hjkl    - Move cursor
  Space/Enter    - Reveal cell
  F              - Toggle flag
  E              - Highlight covered empty cells for a moment
  Left click     - Reveal cell
  Right click    - Toggle flag
  R              - New board
  Esc/B, Q       - Quit

The "custom" preset takes its size from --rows, --cols and --bombs;
setting any of them without a preset implies "custom".

Examples:
  mines play
  mines play beginner
  mines play expert --seed 42
  mines play custom --rows 10 --cols 20 --bombs 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Rows of a custom board")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Columns of a custom board")
	playCmd.Flags().IntVar(&flagBombs, "bombs", 0, "Bombs on a custom board")
}

func runPlay(cmd *cobra.Command, args []string) error {
	presetID := appConfig.DefaultPreset
	if len(args) == 1 {
		presetID = args[0]
	}
	if len(args) == 0 && (cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols") || cmd.Flags().Changed("bombs")) {
		presetID = config.CustomPresetID
	}

	if presetID == config.CustomPresetID {
		p, err := minesweeper.CustomPreset(flagRows, flagCols, flagBombs)
		if err != nil {
			return fmt.Errorf("custom board: %w", err)
		}
		minesweeper.Register(p, appConfig.Hint.Duration)
	}

	if !registry.Exists(presetID) {
		return fmt.Errorf("unknown preset %q, run 'mines list' to see available boards", presetID)
	}

	game, err := registry.Create(presetID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
