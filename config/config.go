// Package config loads driver settings from YAML.
//
// Defaults mirror the parameter package; a file overlays only the keys it
// sets. Every loaded config is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/session"
)

// MaxFileSize caps config files read from disk
const MaxFileSize = 64 * 1024

var ErrFileTooLarge = errors.New("config file too large")

var validate = validator.New()

// Config is the top-level driver configuration
type Config struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Seed       uint64           `yaml:"seed"` // 0 = time-based
	Generation GenerationConfig `yaml:"generation"`
	Play       PlayConfig       `yaml:"play"`
	Log        LogConfig        `yaml:"log"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

type GenerationConfig struct {
	MaxAttempts int     `yaml:"max_attempts" validate:"gte=1,lte=100"`
	Margin      float64 `yaml:"margin" validate:"gte=0"`
}

type PlayConfig struct {
	HitRadius  float64     `yaml:"hit_radius" validate:"gt=0"`
	StartStage int         `yaml:"start_stage" validate:"gte=1"`
	Items      ItemsConfig `yaml:"items"`
}

type ItemsConfig struct {
	Hint    int `yaml:"hint" validate:"gte=0"`
	Expose  int `yaml:"expose" validate:"gte=0"`
	Drill   int `yaml:"drill" validate:"gte=0"`
	Shuffle int `yaml:"shuffle" validate:"gte=0"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:  parameter.DefaultViewportWidth,
			Height: parameter.DefaultViewportHeight,
		},
		Generation: GenerationConfig{
			MaxAttempts: parameter.GenerationMaxAttempts,
			Margin:      parameter.PlateMargin,
		},
		Play: PlayConfig{
			HitRadius:  parameter.HitRadius,
			StartStage: parameter.StartingStage,
			Items: ItemsConfig{
				Hint:    parameter.StartingItems,
				Expose:  parameter.StartingItems,
				Drill:   parameter.StartingItems,
				Shuffle: parameter.StartingItems,
			},
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > MaxFileSize {
		return cfg, fmt.Errorf("%s is %d bytes: %w", path, info.Size(), ErrFileTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GeneratorOptions maps the config onto generator options
func (c Config) GeneratorOptions() *generator.Options {
	return &generator.Options{
		MaxAttempts: c.Generation.MaxAttempts,
		Margin:      c.Generation.Margin,
		Seed:        c.Seed,
	}
}

// SessionConfig maps the config onto a session setup
func (c Config) SessionConfig() session.Config {
	return session.Config{
		Width:      c.Viewport.Width,
		Height:     c.Viewport.Height,
		HitRadius:  c.Play.HitRadius,
		StartStage: c.Play.StartStage,
		Items: session.Inventory{
			session.ItemHint:    c.Play.Items.Hint,
			session.ItemExpose:  c.Play.Items.Expose,
			session.ItemDrill:   c.Play.Items.Drill,
			session.ItemShuffle: c.Play.Items.Shuffle,
		},
	}
}
