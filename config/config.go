// Package config loads the studio shell configuration from TOML.
//
// Example file:
//
//	[canvas]
//	width = 800
//	height = 600
//	background = "#ffffffff"
//
//	[export]
//	format = "png"
//
//	[log]
//	level = "info"
//
// Missing keys keep their Default values. Unknown keys are an error so that
// typos do not pass silently.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/imageio"
)

// Configuration errors.
var (
	// ErrInvalidCanvas is returned when the canvas size is not positive.
	ErrInvalidCanvas = errors.New("config: canvas width and height must be positive")

	// ErrUnknownKey is returned when the file contains keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the shell configuration.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Export Export `toml:"export"`
	Log    Log    `toml:"log"`
}

// Canvas holds the defaults for new documents.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Background is the hex color the framebuffer is cleared to.
	Background string `toml:"background"`
}

// Export holds output settings.
type Export struct {
	// Format is used when the output path has no recognized extension.
	Format string `toml:"format"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Default returns the built-in configuration: an 800x600 transparent
// canvas, PNG export, info logging.
func Default() *Config {
	return &Config{
		Canvas: Canvas{Width: 800, Height: 600, Background: "#00000000"},
		Export: Export{Format: "png"},
		Log:    Log{Level: "info"},
	}
}

// Load reads the TOML file at path on top of Default and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidCanvas, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := studio.Hex(c.Canvas.Background); err != nil {
		return fmt.Errorf("config: canvas.background: %w", err)
	}
	if _, err := imageio.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("config: export.format: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Background returns the parsed canvas background color.
// It returns transparent black if the color is invalid; call Validate first.
func (c *Config) Background() studio.Color {
	col, err := studio.Hex(c.Canvas.Background)
	if err != nil {
		return studio.Transparent
	}
	return col
}

// ExportFormat returns the parsed export format, PNG if invalid.
func (c *Config) ExportFormat() imageio.Format {
	f, err := imageio.ParseFormat(c.Export.Format)
	if err != nil {
		return imageio.PNG
	}
	return f
}

// SlogLevel converts the configured level name to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}
