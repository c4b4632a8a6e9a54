package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/tp/internal/palette"
	"github.com/studiowebux/tp/internal/prompter"
)

const (
	DefaultFontScale  = 2
	DefaultTextColor  = "white"
	DefaultBackground = "black"
	DefaultPadding    = 10
	DefaultSpeed      = 2.0

	// MaxPadding keeps at least a fifth of the width for text
	MaxPadding = 40
)

// Config is the on-disk configuration file
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Scroll  ScrollConfig  `yaml:"scroll"`
}

// DisplayConfig holds rendering settings
type DisplayConfig struct {
	// FontScale: 1=small (4x4), 2=medium (8x4), 3=large (8x8)
	FontScale         int    `yaml:"font_scale"`
	TextColor         string `yaml:"text_color"`
	BackgroundColor   string `yaml:"background_color"`
	HorizontalPadding int    `yaml:"horizontal_padding"`
}

// ScrollConfig holds playback settings
type ScrollConfig struct {
	Speed float64 `yaml:"speed"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FontScale:         DefaultFontScale,
			TextColor:         DefaultTextColor,
			BackgroundColor:   DefaultBackground,
			HorizontalPadding: DefaultPadding,
		},
		Scroll: ScrollConfig{
			Speed: DefaultSpeed,
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Overrides carries command-line values; nil fields leave the file value alone
type Overrides struct {
	FontScale  *int
	TextColor  *string
	Background *string
	Padding    *int
	Speed      *float64
}

// Merge returns a copy of cfg with the overrides applied
func (c *Config) Merge(o Overrides) *Config {
	out := *c
	if o.FontScale != nil {
		out.Display.FontScale = *o.FontScale
	}
	if o.TextColor != nil {
		out.Display.TextColor = *o.TextColor
	}
	if o.Background != nil {
		out.Display.BackgroundColor = *o.Background
	}
	if o.Padding != nil {
		out.Display.HorizontalPadding = *o.Padding
	}
	if o.Speed != nil {
		out.Scroll.Speed = *o.Speed
	}
	return &out
}

// DisplaySettings is the validated form the prompter and renderer consume
type DisplaySettings struct {
	Scale          prompter.Scale
	TextColor      lipgloss.Color
	Background     lipgloss.Color
	PaddingPercent int
	Speed          float64
}

// Clamp resolves colors and forces every value into its supported range
func (c *Config) Clamp() DisplaySettings {
	return DisplaySettings{
		Scale:          prompter.ClampScale(c.Display.FontScale),
		TextColor:      palette.Parse(c.Display.TextColor),
		Background:     palette.Parse(c.Display.BackgroundColor),
		PaddingPercent: min(max(c.Display.HorizontalPadding, 0), MaxPadding),
		Speed:          prompter.ClampSpeed(c.Scroll.Speed),
	}
}

// Warnings lists values Clamp had to change or could not resolve
func (c *Config) Warnings() []string {
	var warnings []string

	if s := c.Display.FontScale; s < 1 || s > 3 {
		warnings = append(warnings, fmt.Sprintf("font scale %d out of range 1-3, using %d", s, prompter.ClampScale(s)))
	}
	if _, ok := palette.Lookup(c.Display.TextColor); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown text color %q, using white", c.Display.TextColor))
	}
	if _, ok := palette.Lookup(c.Display.BackgroundColor); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown background color %q, using white", c.Display.BackgroundColor))
	}
	if p := c.Display.HorizontalPadding; p < 0 || p > MaxPadding {
		warnings = append(warnings, fmt.Sprintf("padding %d%% out of range 0-%d", p, MaxPadding))
	}
	if s := c.Scroll.Speed; s < prompter.MinSpeed || s > prompter.MaxSpeed {
		warnings = append(warnings, fmt.Sprintf("speed %.1f out of range %.1f-%.1f", s, prompter.MinSpeed, prompter.MaxSpeed))
	}

	return warnings
}
