package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ushitora-anqou/aqpico/surface"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nothing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Missing file must give the defaults: got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
trace = true
tick_ms = 20

[menu]
font_size = 2
highlight = [0, 0, 128]

[pong]
ball_speed = 2
paddle_fraction = 0.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := Default()
	expected.Trace = true
	expected.TickMS = 20
	expected.Menu.FontSize = 2
	expected.Menu.Highlight = RGB{0, 0, 128}
	expected.Pong.BallSpeed = 2
	expected.Pong.PaddleFraction = 0.5
	if cfg != expected {
		t.Fatalf("Invalid config: expected %+v, got %+v", expected, cfg)
	}
	if got := cfg.Menu.Highlight.RGBA(); got != surface.RGB(0, 0, 128) {
		t.Fatalf("Invalid colour: %v", got)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		content string
		message string
	}{
		{"tick_ms = 0", "tick_ms"},
		{"[menu]\nfont_size = 0", "menu.font_size"},
		{"[pong]\nball_speed = 100", "pong.ball_speed"},
		{"[pong]\npaddle_fraction = 0.0", "pong.paddle_fraction"},
		{"[pong]\nbounce = 1", "unknown key"},
		{"tick_ms = ", "config"},
	}
	for _, tc := range tests {
		_, err := Load(writeFile(t, tc.content))
		if err == nil {
			t.Fatalf("Load accepted %q", tc.content)
		}
		if !strings.Contains(err.Error(), tc.message) {
			t.Fatalf("Invalid error for %q: expected it to mention %q, got %v", tc.content, tc.message, err)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Scale = 2
	cfg.Pong.Prompt = RGB{1, 2, 3}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Fatalf("Invalid config: expected %+v, got %+v", cfg, got)
	}
}
