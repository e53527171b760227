// Package config loads the device settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/surface"
)

// RGB is a colour written as [r, g, b] in the file.
type RGB [3]uint8

func (c RGB) RGBA() color.RGBA {
	return surface.RGB(c[0], c[1], c[2])
}

type MenuConfig struct {
	FontSize       int `toml:"font_size"`
	ScrollTimeout  int `toml:"scroll_timeout"`
	ScrollbarWidth int `toml:"scrollbar_width"`

	Background          RGB `toml:"background"`
	Foreground          RGB `toml:"foreground"`
	Highlight           RGB `toml:"highlight"`
	HighlightForeground RGB `toml:"highlight_foreground"`
	Scrollbar           RGB `toml:"scrollbar"`
	ScrollbarBackground RGB `toml:"scrollbar_background"`
}

type PongConfig struct {
	BallRadius     int     `toml:"ball_radius"`
	BallSpeed      int     `toml:"ball_speed"`
	PaddleFraction float64 `toml:"paddle_fraction"`
	MoveDelta      int     `toml:"move_delta"`

	Background RGB `toml:"background"`
	Foreground RGB `toml:"foreground"`
	Prompt     RGB `toml:"prompt"`
}

type Config struct {
	Trace bool `toml:"trace"`
	// TickMS is the length of one tick in milliseconds.
	TickMS int `toml:"tick_ms"`
	// Scale is the window size relative to the device screen.
	Scale int `toml:"scale"`

	Menu MenuConfig `toml:"menu"`
	Pong PongConfig `toml:"pong"`
}

func Default() Config {
	return Config{
		TickMS: int(constant.TICK_INTERVAL.Milliseconds()),
		Scale:  constant.WINDOW_SCALE,
		Menu: MenuConfig{
			FontSize:            3,
			ScrollTimeout:       50,
			ScrollbarWidth:      4,
			Background:          RGB{0, 0, 0},
			Foreground:          RGB{255, 255, 255},
			Highlight:           RGB{30, 30, 30},
			HighlightForeground: RGB{255, 255, 255},
			Scrollbar:           RGB{255, 0, 0},
			ScrollbarBackground: RGB{30, 30, 30},
		},
		Pong: PongConfig{
			BallRadius:     5,
			BallSpeed:      1,
			PaddleFraction: 0.37,
			MoveDelta:      4,
			Background:     RGB{0, 0, 0},
			Foreground:     RGB{255, 255, 255},
			Prompt:         RGB{0, 255, 0},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/aqpico/config.toml or its platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		h, _ := os.UserHomeDir()
		dir = filepath.Join(h, ".config")
	}
	return filepath.Join(dir, "aqpico", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the device cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.TickMS < 1 || c.TickMS > 1000:
		return fmt.Errorf("tick_ms must be in [1, 1000], got %d", c.TickMS)
	case c.Scale < 1 || c.Scale > 16:
		return fmt.Errorf("scale must be in [1, 16], got %d", c.Scale)
	case c.Menu.FontSize < 1 || c.Menu.FontSize > 8:
		return fmt.Errorf("menu.font_size must be in [1, 8], got %d", c.Menu.FontSize)
	case c.Menu.ScrollTimeout < 0:
		return fmt.Errorf("menu.scroll_timeout must not be negative, got %d", c.Menu.ScrollTimeout)
	case c.Menu.ScrollbarWidth < 0 || c.Menu.ScrollbarWidth > constant.LCD_WIDTH/4:
		return fmt.Errorf("menu.scrollbar_width must be in [0, %d], got %d", constant.LCD_WIDTH/4, c.Menu.ScrollbarWidth)
	case c.Pong.BallRadius < 1 || c.Pong.BallRadius > constant.LCD_HEIGHT/4:
		return fmt.Errorf("pong.ball_radius must be in [1, %d], got %d", constant.LCD_HEIGHT/4, c.Pong.BallRadius)
	case c.Pong.BallSpeed < 1 || c.Pong.BallSpeed > 10:
		return fmt.Errorf("pong.ball_speed must be in [1, 10], got %d", c.Pong.BallSpeed)
	case c.Pong.PaddleFraction <= 0 || c.Pong.PaddleFraction > 0.8:
		return fmt.Errorf("pong.paddle_fraction must be in (0, 0.8], got %g", c.Pong.PaddleFraction)
	case c.Pong.MoveDelta < 1 || c.Pong.MoveDelta > 20:
		return fmt.Errorf("pong.move_delta must be in [1, 20], got %d", c.Pong.MoveDelta)
	}
	return nil
}

// Save writes the configuration to path, creating its directory.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
