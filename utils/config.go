package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
)

// Seeding patterns understood by the host.
const (
	PatternRandom      = "random"
	PatternDead        = "dead"
	PatternModulo      = "modulo"
	PatternInteresting = "interesting"
	PatternGlider      = "glider"
)

// Renderers understood by the host.
const (
	RendererTerminal = "terminal"
	RendererScreen   = "screen"
	RendererWindow   = "window"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Workers             int           `json:"workers"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	Renderer            string        `json:"renderer"`
	Scale               int           `json:"scale"`
	Profile             string        `json:"profile"`
	Verbose             bool          `json:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               model.DefaultWidth,
		Height:              model.DefaultHeight,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Workers:             1,
		MaxGenerations:      1000,
		RandomDensity:       0.5,
		InjectionCount:      3,
		Pattern:             PatternRandom,
		Renderer:            RendererTerminal,
		Scale:               4,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind registers command-line overrides for every field on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "restart on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant generations before a restart")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per step")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = never)")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability of a cell starting alive")
	fs.IntVar(&c.InjectionCount, "injection-count", c.InjectionCount, "cells injected to break stagnation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random, dead, modulo, interesting, glider")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer: terminal, screen, window")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell for the window renderer")
	fs.StringVar(&c.Profile, "profile", c.Profile, "write a cpu or mem profile to the working directory")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log step timings")
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.Workers < 1:
		return errors.Errorf("[Validate] workers must be at least 1, got %d", c.Workers)
	case c.Scale < 1:
		return errors.Errorf("[Validate] scale must be at least 1, got %d", c.Scale)
	}

	switch c.Pattern {
	case PatternRandom, PatternDead, PatternModulo, PatternInteresting, PatternGlider:
	default:
		return errors.Errorf("[Validate] unknown pattern %q", c.Pattern)
	}

	switch c.Renderer {
	case RendererTerminal, RendererScreen, RendererWindow:
	default:
		return errors.Errorf("[Validate] unknown renderer %q", c.Renderer)
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return errors.Errorf("[Validate] unknown profile %q", c.Profile)
	}
	return nil
}
