package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// DefaultHintDuration is how long the empty-area hint stays visible.
const DefaultHintDuration = 3 * time.Second

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/minesweeper.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: "expert",
		Hint: HintConfig{
			Duration: DefaultHintDuration,
		},
		Presets: []Preset{
			{ID: "beginner", Title: "Beginner", Rows: 9, Cols: 9, Bombs: 10},
			{ID: "intermediate", Title: "Intermediate", Rows: 16, Cols: 16, Bombs: 40},
			{ID: "expert", Title: "Expert", Rows: 16, Cols: 30, Bombs: 99},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
