package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore chdir failed: %v", err)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

const smallConfig = `
default_preset: tiny
hint:
  duration: 500ms
presets:
  - id: tiny
    title: Tiny
    rows: 2
    cols: 3
    bombs: 1
`

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded default differs from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	writeFile(t, path, smallConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DefaultPreset != "tiny" {
		t.Errorf("DefaultPreset = %q, want tiny", cfg.DefaultPreset)
	}
	if cfg.Hint.Duration != 500*time.Millisecond {
		t.Errorf("Hint.Duration = %v, want 500ms", cfg.Hint.Duration)
	}
	p, ok := cfg.Preset("tiny")
	if !ok {
		t.Fatal("preset tiny not found")
	}
	if p.Rows != 2 || p.Cols != 3 || p.Bombs != 1 {
		t.Errorf("unexpected preset: %+v", p)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "presets: [")
	if _, err := Load(broken); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "presets:\n  - id: x\n    rows: 2\n    cols: 2\n    bombs: 5\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultPreset != "expert" {
		t.Errorf("expected embedded default, got preset %q", cfg.DefaultPreset)
	}

	// Local ./configs file wins over the embedded default.
	writeFile(t, filepath.Join(work, "configs", fileName), smallConfig)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultPreset != "tiny" {
		t.Errorf("expected local config, got preset %q", cfg.DefaultPreset)
	}

	// User config wins over the local file.
	writeFile(t, filepath.Join(home, ".mines", "configs", fileName),
		"presets:\n  - id: home\n    rows: 4\n    cols: 4\n    bombs: 2\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultPreset != "home" {
		t.Errorf("expected user config, got preset %q", cfg.DefaultPreset)
	}
	if cfg.Hint.Duration != DefaultHintDuration {
		t.Errorf("missing hint duration should default to %v, got %v", DefaultHintDuration, cfg.Hint.Duration)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(home, ".mines", "configs", fileName), "presets: [")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultPreset != "expert" {
		t.Errorf("broken user config should fall back to default, got %q", cfg.DefaultPreset)
	}
}

func TestValidate(t *testing.T) {
	base := DefaultConfig

	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"no presets", func(c *Config) { c.Presets = nil }, false},
		{"empty id", func(c *Config) { c.Presets[0].ID = "" }, false},
		{"reserved id", func(c *Config) { c.Presets[0].ID = CustomPresetID }, false},
		{"duplicate id", func(c *Config) { c.Presets[1].ID = c.Presets[0].ID }, false},
		{"zero rows", func(c *Config) { c.Presets[0].Rows = 0 }, false},
		{"too many bombs", func(c *Config) { c.Presets[0].Bombs = 82 }, false},
		{"full board", func(c *Config) { c.Presets[0].Bombs = 81 }, true},
		{"unknown default", func(c *Config) { c.DefaultPreset = "nope" }, false},
		{"negative hint", func(c *Config) { c.Hint.Duration = -time.Second }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPresetString(t *testing.T) {
	p := Preset{ID: "expert", Rows: 16, Cols: 30, Bombs: 99}
	if got, want := p.String(), "16×30, 99 bombs"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
