// Package config provides YAML-based configuration for board presets and
// the hint timer, with an embedded default.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CustomPresetID names the board built from command-line dimensions.
const CustomPresetID = "custom"

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full minesweeper configuration.
type Config struct {
	DefaultPreset string     `yaml:"default_preset"`
	Hint          HintConfig `yaml:"hint"`
	Presets       []Preset   `yaml:"presets"`
}

// HintConfig controls the empty-area hint.
type HintConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// Preset is a named board size.
type Preset struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Bombs int    `yaml:"bombs"`
}

// Preset returns the preset with the given ID.
func (c Config) Preset(id string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Validate checks presets, the default preset and the hint duration.
func (c Config) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("%w: no presets", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("%w: preset #%d has no id", ErrInvalidConfig, i+1)
		}
		if p.ID == CustomPresetID {
			return fmt.Errorf("%w: preset id %q is reserved", ErrInvalidConfig, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true

		if err := p.Validate(); err != nil {
			return err
		}
	}

	if c.DefaultPreset != "" && !seen[c.DefaultPreset] {
		return fmt.Errorf("%w: default preset %q not defined", ErrInvalidConfig, c.DefaultPreset)
	}
	if c.Hint.Duration < 0 {
		return fmt.Errorf("%w: negative hint duration %v", ErrInvalidConfig, c.Hint.Duration)
	}
	return nil
}

// Validate checks the board dimensions and bomb count.
func (p Preset) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("%w: preset %q has dimensions %dx%d", ErrInvalidConfig, p.ID, p.Rows, p.Cols)
	}
	if p.Bombs < 0 || p.Bombs > p.Rows*p.Cols {
		return fmt.Errorf("%w: preset %q has %d bombs on %d cells", ErrInvalidConfig, p.ID, p.Bombs, p.Rows*p.Cols)
	}
	return nil
}

// String returns "rows×cols, N bombs".
func (p Preset) String() string {
	return fmt.Sprintf("%d×%d, %d bombs", p.Rows, p.Cols, p.Bombs)
}
