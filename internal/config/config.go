package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/sorter"
)

const (
	DefaultSize    = 50
	DefaultSpeedMS = 15
	DefaultFPS     = 60
	DefaultWidth   = 1600
	DefaultHeight  = 900
	DefaultVolume  = 0.25
	DefaultNoteMS  = 100
	DefaultDecayS  = 0.04

	LayoutFit     = "fit"
	LayoutClassic = "classic"
)

type Config struct {
	Size    int           `yaml:"size"`
	SpeedMS int           `yaml:"speed_ms"`
	Engine  string        `yaml:"engine"`
	Seed    int64         `yaml:"seed"`
	Theme   string        `yaml:"theme"`
	Layout  string        `yaml:"layout"`
	FPS     int           `yaml:"fps"`
	Surface SurfaceConfig `yaml:"surface"`
	Audio   AudioConfig   `yaml:"audio"`
}

type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	NoteMS  int     `yaml:"note_ms"`
	DecayS  float64 `yaml:"decay_s"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:    DefaultSize,
		SpeedMS: DefaultSpeedMS,
		Engine:  "insertion",
		Seed:    1,
		Theme:   "cyberpunk",
		Layout:  LayoutFit,
		FPS:     DefaultFPS,
		Surface: SurfaceConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
			NoteMS:  DefaultNoteMS,
			DecayS:  DefaultDecayS,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Overlay(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads a YAML file onto c. Keys missing from the file keep their
// current values.
func (c *Config) Overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge copies every non-zero field of src onto c. Audio.Enabled is left
// alone.
func (c *Config) Merge(src *Config) {
	if src == nil {
		return
	}
	if src.Size != 0 {
		c.Size = src.Size
	}
	if src.SpeedMS != 0 {
		c.SpeedMS = src.SpeedMS
	}
	if src.Engine != "" {
		c.Engine = src.Engine
	}
	if src.Seed != 0 {
		c.Seed = src.Seed
	}
	if src.Theme != "" {
		c.Theme = src.Theme
	}
	if src.Layout != "" {
		c.Layout = src.Layout
	}
	if src.FPS != 0 {
		c.FPS = src.FPS
	}
	if src.Surface.Width != 0 {
		c.Surface.Width = src.Surface.Width
	}
	if src.Surface.Height != 0 {
		c.Surface.Height = src.Surface.Height
	}
	if src.Audio.Volume != 0 {
		c.Audio.Volume = src.Audio.Volume
	}
	if src.Audio.NoteMS != 0 {
		c.Audio.NoteMS = src.Audio.NoteMS
	}
	if src.Audio.DecayS != 0 {
		c.Audio.DecayS = src.Audio.DecayS
	}
}

func (c *Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.SpeedMS <= 0 {
		return fmt.Errorf("%w: %dms", ErrInvalidSpeed, c.SpeedMS)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if _, err := sorter.Lookup(c.Engine); err != nil {
		return err
	}
	switch c.Layout {
	case LayoutFit, LayoutClassic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, c.Layout)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

// Speed is the delay between two consecutive animation ticks.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// Frame is the wall clock interval between two redraws.
func (c *Config) Frame() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

func (c *Config) AudioParams() audio.Params {
	p := audio.DefaultParams()
	if c.Audio.Volume > 0 {
		p.Volume = c.Audio.Volume
	}
	if c.Audio.NoteMS > 0 {
		p.Length = time.Duration(c.Audio.NoteMS) * time.Millisecond
	}
	if c.Audio.DecayS > 0 {
		p.Decay = time.Duration(c.Audio.DecayS * float64(time.Second))
	}
	return p
}
