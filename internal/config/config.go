package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatlife/internal/life"
	"github.com/san-kum/heatlife/internal/palette"
	"github.com/san-kum/heatlife/internal/sim"
)

const (
	DefaultViewportWidth  = 400
	DefaultCellSize       = 5
	DefaultMaxGenerations = 500
	DefaultTick           = 0 * time.Millisecond
	DefaultTheme          = "ember"
)

var (
	ErrInvalidCellSize       = errors.New("config: cell_size must be positive")
	ErrInvalidMaxGenerations = errors.New("config: max_generations must be at least 1")
	ErrInvalidProbability    = errors.New("config: live_probability must be within [0, 1]")
	ErrInvalidTick           = errors.New("config: tick must not be negative")
)

type Config struct {
	// Size overrides the viewport derived grid size when positive.
	Size            int           `yaml:"size,omitempty"`
	ViewportWidth   int           `yaml:"viewport_width"`
	CellSize        int           `yaml:"cell_size"`
	MaxGenerations  int           `yaml:"max_generations"`
	LiveProbability float64       `yaml:"live_probability"`
	Tick            time.Duration `yaml:"tick"`
	Seed            int64         `yaml:"seed"`
	Pattern         string        `yaml:"pattern,omitempty"`
	PersistHue      bool          `yaml:"persist_hue"`
	Theme           string        `yaml:"theme"`
	Palette         PaletteConfig `yaml:"palette"`
}

type PaletteConfig struct {
	Name  string  `yaml:"name"`
	Gamma float64 `yaml:"gamma"`
	Mode  string  `yaml:"mode"`
}

func DefaultConfig() *Config {
	return &Config{
		ViewportWidth:   DefaultViewportWidth,
		CellSize:        DefaultCellSize,
		MaxGenerations:  DefaultMaxGenerations,
		LiveProbability: life.DefaultLiveProbability,
		Tick:            DefaultTick,
		Theme:           DefaultTheme,
		Palette: PaletteConfig{
			Name:  palette.DefaultPalette,
			Gamma: palette.DefaultGamma,
			Mode:  string(palette.DefaultMode),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GridSize is the simulation size: Size when set, otherwise the number of
// cells that fit across the viewport.
func (c *Config) GridSize() int {
	if c.Size > 0 {
		return c.Size
	}
	if c.CellSize <= 0 {
		return 0
	}
	return c.ViewportWidth / c.CellSize
}

func (c *Config) Validate() error {
	if c.Size < 0 || c.ViewportWidth < 0 {
		return life.ErrInvalidSize
	}
	if c.Size == 0 && c.CellSize <= 0 {
		return ErrInvalidCellSize
	}
	if c.MaxGenerations < 1 {
		return ErrInvalidMaxGenerations
	}
	if c.LiveProbability < 0 || c.LiveProbability > 1 {
		return ErrInvalidProbability
	}
	if c.Tick < 0 {
		return ErrInvalidTick
	}
	if _, err := palette.ParseMode(c.Palette.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Pattern != "" {
		if _, err := life.LookupPattern(c.Pattern); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Gradient builds the color scale described by the palette section.
func (c *Config) Gradient() (*palette.Gradient, error) {
	mode, err := palette.ParseMode(c.Palette.Mode)
	if err != nil {
		return nil, err
	}
	return palette.NewGradient(c.Palette.Name, c.Palette.Gamma, mode)
}

// SimConfig converts the file level settings into a simulation config.
func (c *Config) SimConfig() (sim.Config, error) {
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	sc := sim.Config{
		Size:            c.GridSize(),
		MaxGenerations:  c.MaxGenerations,
		LiveProbability: c.LiveProbability,
		Seed:            c.Seed,
		PersistHue:      c.PersistHue,
	}
	if c.Pattern != "" {
		p, err := life.LookupPattern(c.Pattern)
		if err != nil {
			return sim.Config{}, err
		}
		sc.Pattern = &p
	}
	return sc, nil
}

// NewSimulation builds a ready to run simulation from the config.
func (c *Config) NewSimulation() (*sim.Simulation, error) {
	sc, err := c.SimConfig()
	if err != nil {
		return nil, err
	}
	g, err := c.Gradient()
	if err != nil {
		return nil, err
	}
	return sim.New(sc, g)
}
