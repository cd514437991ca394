package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/parser"
)

// Config holds user defaults. Nothing is ever written back to disk.
type Config struct {
	Text             string          `yaml:"text"`
	Background       string          `yaml:"background"`
	Size             string          `yaml:"size"`
	TextFormat       string          `yaml:"text_format"`
	BackgroundFormat string          `yaml:"background_format"`
	Animations       AnimationConfig `yaml:"animations"`
	Log              LogConfig       `yaml:"log"`
}

// AnimationConfig controls the banner shimmer
type AnimationConfig struct {
	Enabled      bool `yaml:"enabled"`
	ReduceMotion bool `yaml:"reduce_motion"`
	SpeedMs      int  `yaml:"speed_ms"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level      string `yaml:"level"`
	OutputPath string `yaml:"output_path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration: white text on black, large text, hex display
func Default() *Config {
	return &Config{
		Text:             "#ffffff",
		Background:       "#000000",
		Size:             "large",
		TextFormat:       "hex",
		BackgroundFormat: "hex",
		Animations: AnimationConfig{
			Enabled: true,
			SpeedMs: 100,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     14,
		},
	}
}

// Dir returns ~/.contrast
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".contrast"), nil
}

// DefaultPath returns ~/.contrast/config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every value can be used as-is
func (c *Config) Validate() error {
	if _, _, err := parser.ParseAny(c.Text); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if _, _, err := parser.ParseAny(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := color.ParseTextSize(c.Size); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if _, err := parser.ParseFormat(c.TextFormat); err != nil {
		return fmt.Errorf("text_format: %w", err)
	}
	if _, err := parser.ParseFormat(c.BackgroundFormat); err != nil {
		return fmt.Errorf("background_format: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Animations.SpeedMs < 0 {
		return fmt.Errorf("animations.speed_ms must not be negative")
	}
	return nil
}

// Colors returns the parsed default text and background colors
func (c *Config) Colors() (text, background color.RGB, err error) {
	if text, _, err = parser.ParseAny(c.Text); err != nil {
		return color.Black, color.Black, err
	}
	if background, _, err = parser.ParseAny(c.Background); err != nil {
		return color.Black, color.Black, err
	}
	return text, background, nil
}

// TextSize returns the parsed text size, falling back to large
func (c *Config) TextSize() color.TextSize {
	size, _ := color.ParseTextSize(c.Size)
	return size
}

// Formats returns the parsed display formats, falling back to hex
func (c *Config) Formats() (text, background parser.Format) {
	text, _ = parser.ParseFormat(c.TextFormat)
	background, _ = parser.ParseFormat(c.BackgroundFormat)
	return text, background
}
