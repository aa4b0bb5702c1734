package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
)

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Fraction of the smaller window side used as the bounding radius
	BoundingRatio = 0.35

	// Camera
	ZoomIncrement = 0.125
	MinZoom       = 0.125

	// Chime
	VisualRingSize = 8192
	SampleRate     = 44100
)

// Config is the top-level configuration of the program.
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Packing  PackingConfig `yaml:"packing"`
	Sound    SoundConfig   `yaml:"sound"`
	Render   RenderConfig  `yaml:"render"`
	LogLevel string        `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PackingConfig holds the generator tunables.
type PackingConfig struct {
	MinRadius          float64 `yaml:"min_radius"`
	DuplicateTolerance float64 `yaml:"duplicate_tolerance"`
	TangencyTolerance  float64 `yaml:"tangency_tolerance"`
	SeedMinRadius      float64 `yaml:"seed_min_radius"`
	BoundingRatio      float64 `yaml:"bounding_ratio"`
	Bootstrap          bool    `yaml:"bootstrap"`
	SplitAccepted      bool    `yaml:"split_accepted"`

	// Seed for the inner seeder; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Most tones played for one generation
	MaxNotes int `yaml:"max_notes"`
}

type RenderConfig struct {
	Palette string  `yaml:"palette"`
	Padding float64 `yaml:"padding"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Apollonian Packing - click: next generation, wheel: zoom, R: reset, S: save, M: mute",
		},
		Packing: PackingConfig{
			MinRadius:          packing.DefaultMinRadius,
			DuplicateTolerance: packing.DefaultDuplicateTolerance,
			TangencyTolerance:  packing.DefaultTangencyTolerance,
			SeedMinRadius:      packing.DefaultSeedMinRadius,
			BoundingRatio:      BoundingRatio,
			Bootstrap:          true,
			SplitAccepted:      true,
		},
		Sound: SoundConfig{
			Enabled:  true,
			Volume:   0.3,
			MaxNotes: 24,
		},
		Render: RenderConfig{
			Palette: "classic",
			Padding: 10,
		},
		LogLevel: "info",
	}
}

// Load reads configuration with priority env > file > defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("APOLLONIAN_MIN_RADIUS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Packing.MinRadius = f
		}
	}
	if v := os.Getenv("APOLLONIAN_DUPLICATE_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Packing.DuplicateTolerance = f
		}
	}
	if v := os.Getenv("APOLLONIAN_TANGENCY_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Packing.TangencyTolerance = f
		}
	}
	if v := os.Getenv("APOLLONIAN_SEED_MIN_RADIUS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Packing.SeedMinRadius = f
		}
	}
	if v := os.Getenv("APOLLONIAN_BOOTSTRAP"); v != "" {
		cfg.Packing.Bootstrap = v == "true" || v == "1"
	}
	if v := os.Getenv("APOLLONIAN_SEED"); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Packing.Seed = i
		}
	}
	if v := os.Getenv("APOLLONIAN_SOUND"); v != "" {
		cfg.Sound.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("APOLLONIAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks ranges. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	p := c.Packing
	switch {
	case p.MinRadius <= 0:
		return fmt.Errorf("%w: min_radius must be > 0", ErrInvalidConfig)
	case p.DuplicateTolerance <= 0:
		return fmt.Errorf("%w: duplicate_tolerance must be > 0", ErrInvalidConfig)
	case p.TangencyTolerance <= 0:
		return fmt.Errorf("%w: tangency_tolerance must be > 0", ErrInvalidConfig)
	case p.SeedMinRadius <= 0:
		return fmt.Errorf("%w: seed_min_radius must be > 0", ErrInvalidConfig)
	case p.BoundingRatio <= 0 || p.BoundingRatio > 0.5:
		return fmt.Errorf("%w: bounding_ratio must be in (0, 0.5]", ErrInvalidConfig)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound volume must be between 0 and 1", ErrInvalidConfig)
	case c.Sound.MaxNotes < 0:
		return fmt.Errorf("%w: max_notes must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// ToPackingConfig converts to the generator's configuration.
func (p PackingConfig) ToPackingConfig() packing.Config {
	return packing.Config{
		MinRadius:          p.MinRadius,
		DuplicateTolerance: p.DuplicateTolerance,
		TangencyTolerance:  p.TangencyTolerance,
		SeedMinRadius:      p.SeedMinRadius,
		Bootstrap:          p.Bootstrap,
		SplitAccepted:      p.SplitAccepted,
	}
}

// BoundingRadius returns the bounding circle radius for a viewport.
func (p PackingConfig) BoundingRadius(width, height int) float64 {
	return float64(min(width, height)) * p.BoundingRatio
}
