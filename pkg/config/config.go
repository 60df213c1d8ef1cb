// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for settings the simulation
// cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// SimulationConfig describes a scene: where the craft starts, which planets
// exist and how the loop and frontends run. Physics constants are not
// configurable.
type SimulationConfig struct {
	Craft    CraftConfig    `json:"craft" yaml:"craft"`
	Planets  []PlanetConfig `json:"planets" yaml:"planets"`
	Loop     LoopConfig     `json:"loop" yaml:"loop"`
	Window   WindowConfig   `json:"window" yaml:"window"`
	Terminal TerminalConfig `json:"terminal" yaml:"terminal"`
	Audio    AudioConfig    `json:"audio" yaml:"audio"`
}

// CraftConfig is the craft's starting state.
type CraftConfig struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Rotation float64 `json:"rotation" yaml:"rotation"` // degrees
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
}

// PlanetConfig places a planet. The field range is derived from Radius.
type PlanetConfig struct {
	Name   string  `json:"name" yaml:"name"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// LoopConfig controls tick scheduling and rotation glue.
type LoopConfig struct {
	TickRate int     `json:"tickRate" yaml:"tickRate"` // ticks per second
	TurnRate float64 `json:"turnRate" yaml:"turnRate"` // degrees per tick
}

// WindowConfig is used by the engo frontend.
type WindowConfig struct {
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
}

// TerminalConfig is used by the tcell frontend.
type TerminalConfig struct {
	Scale      float64 `json:"scale" yaml:"scale"`           // world units per cell
	HoldMillis int     `json:"holdMillis" yaml:"holdMillis"` // how long a key press counts as held
}

// AudioConfig controls the engine hum played while thrusting.
type AudioConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	SampleRate int     `json:"sampleRate" yaml:"sampleRate"`
	Frequency  float64 `json:"frequency" yaml:"frequency"`
}

// TickInterval is the wall clock time between two ticks.
func (c *SimulationConfig) TickInterval() time.Duration {
	if c.Loop.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Loop.TickRate)
}

// HoldWindow is how long a terminal key press keeps its control active.
func (c *SimulationConfig) HoldWindow() time.Duration {
	return time.Duration(c.Terminal.HoldMillis) * time.Millisecond
}

// Validate checks that the configuration can drive a simulation.
func (c *SimulationConfig) Validate() error {
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.Loop.TickRate)
	}
	if !(c.Loop.TurnRate > 0) {
		return fmt.Errorf("%w: turn rate %g must be positive", ErrInvalidConfig, c.Loop.TurnRate)
	}
	for i, p := range c.Planets {
		if !(p.Radius > 0) || math.IsInf(p.Radius, 0) {
			return fmt.Errorf("%w: planet %d (%q) radius %g must be positive", ErrInvalidConfig, i, p.Name, p.Radius)
		}
	}
	if !(c.Terminal.Scale > 0) {
		return fmt.Errorf("%w: terminal scale %g must be positive", ErrInvalidConfig, c.Terminal.Scale)
	}
	if c.Terminal.HoldMillis <= 0 {
		return fmt.Errorf("%w: terminal hold %dms must be positive", ErrInvalidConfig, c.Terminal.HoldMillis)
	}
	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			return fmt.Errorf("%w: audio sample rate %d must be positive", ErrInvalidConfig, c.Audio.SampleRate)
		}
		// The hum adds an octave, which must stay below the Nyquist frequency.
		if !(c.Audio.Frequency > 0) || c.Audio.Frequency >= float64(c.Audio.SampleRate)/4 {
			return fmt.Errorf("%w: audio frequency %g outside (0, %g)", ErrInvalidConfig, c.Audio.Frequency, float64(c.Audio.SampleRate)/4)
		}
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig reads a configuration file on top of DefaultConfig. Files
// ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes a configuration file, picking the format from the
// extension the same way LoadConfig does.
func SaveConfig(config *SimulationConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the classic two planet scene.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		Craft: CraftConfig{
			X:      16,
			Y:      16,
			Width:  32,
			Height: 32,
		},
		Planets: []PlanetConfig{
			{Name: "Inner", X: 300, Y: 300, Radius: 100},
			{Name: "Outer", X: 700, Y: 500, Radius: 100},
		},
		Loop: LoopConfig{
			TickRate: 60,
			TurnRate: 4,
		},
		Window: WindowConfig{
			Title:  "Go Gravity",
			Width:  1024,
			Height: 768,
		},
		Terminal: TerminalConfig{
			Scale:      12,
			HoldMillis: 150,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Frequency:  110,
		},
	}
}
