// Package config loads prettyfmt settings from TOML files.
//
// A configuration file looks like this:
//
//	width = 100
//	color = "auto"   # or "always", "never"
//	indent = 0
//
//	[theme]
//	keyword = "bold blue"
//	string  = "#98c379"
//	punct   = ""
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/internal/theme"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of prettyfmt.
type Config struct {
	Width  int               `toml:"width"`
	Color  string            `toml:"color"`
	Indent int               `toml:"indent"`
	Theme  map[string]string `toml:"theme"`
}

// Default returns the settings used without a configuration file.
func Default() *Config {
	return &Config{
		Width: pretty.DefaultWidth,
		Color: ColorAuto,
		Theme: map[string]string{},
	}
}

// Parse reads a configuration from TOML text. Settings not contained in data
// keep their default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown setting %q", undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a configuration file. If path is empty, the default location
// is tried; a missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/prettyfmt/config.toml, falling back
// to ~/.config. It returns "" if no home directory can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "prettyfmt", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prettyfmt", "config.toml")
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: color must be one of auto, always, never; is %q", c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width must not be negative; is %d", c.Width)
	}
	if c.Indent < 0 {
		return fmt.Errorf("config: indent must not be negative; is %d", c.Indent)
	}
	for class := range c.Theme {
		if err := (&theme.Theme{}).Set(class, nil); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// UseColor decides whether to emit colors, given whether the output is a
// terminal.
func (c *Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return terminal
}

// Render returns the rendering parameters for the pretty package.
func (c *Config) Render(terminal bool) *pretty.Config {
	return &pretty.Config{
		Width:  c.Width,
		Color:  c.UseColor(terminal),
		Indent: c.Indent,
		Column: c.Indent,
	}
}
