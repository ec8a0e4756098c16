package minesweeper

import (
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// RegisterPresets adds every configured board preset to the registry,
// in configuration order.
func RegisterPresets(cfg config.Config) {
	for _, p := range cfg.Presets {
		Register(p, cfg.Hint.Duration)
	}
}

// Register adds a single preset to the registry.
func Register(p config.Preset, hint time.Duration) {
	registry.Register(registry.GameInfo{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.String(),
	}, func() registry.Game {
		return New(p, hint)
	})
}

// CustomPreset builds the ad-hoc preset used by "play custom".
func CustomPreset(rows, cols, bombs int) (config.Preset, error) {
	p := config.Preset{
		ID:    config.CustomPresetID,
		Title: "Custom",
		Rows:  rows,
		Cols:  cols,
		Bombs: bombs,
	}
	if err := p.Validate(); err != nil {
		return config.Preset{}, err
	}
	return p, nil
}
