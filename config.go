// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

const (
	variantWindow   = "window"
	variantTriangle = "triangle"
)

const (
	// pipelineFailureFatal aborts start-up when a shader fails to compile or
	// the program fails to link.
	pipelineFailureFatal = "fatal"

	// pipelineFailureSkip keeps running and skips drawing entities whose
	// program is not linked.
	pipelineFailureSkip = "skip"
)

// Config holds everything needed to bootstrap the window and the scene.
type Config struct {
	Title             string   `toml:"title"`
	Width             int      `toml:"width"`
	Height            int      `toml:"height"`
	ContextMajor      int      `toml:"context_major"`
	ContextMinor      int      `toml:"context_minor"`
	ForwardCompatible bool     `toml:"forward_compatible"`
	DrawTriangle      bool     `toml:"draw_triangle"`
	ClearColor        mgl.Vec4 `toml:"clear_color"`
	PipelineFailure   string   `toml:"pipeline_failure"`
	Verbose           bool     `toml:"verbose"`

	// Hidden creates the window without showing it.
	Hidden bool `toml:"hidden"`
}

// DefaultConfig returns the settings for one of the known variants.
func DefaultConfig(variant string) (Config, error) {
	cfg := Config{
		Width:             800,
		Height:            600,
		ContextMajor:      3,
		ContextMinor:      3,
		ForwardCompatible: runtime.GOOS == "darwin",
		ClearColor:        mgl.Vec4{0.2, 0.3, 0.3, 1.0},
		PipelineFailure:   pipelineFailureFatal,
	}

	switch variant {
	case variantWindow:
		cfg.Title = "SonGL"
	case variantTriangle:
		cfg.Title = "LearnOpenGL"
		cfg.DrawTriangle = true
	default:
		return Config{}, fmt.Errorf("unknown variant %q", variant)
	}
	return cfg, nil
}

// LoadConfigFile overlays the TOML file at path onto cfg. Keys missing from
// the file keep their current value.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first problem found in the configuration.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ContextMajor < 3 || (c.ContextMajor == 3 && c.ContextMinor < 3) {
		return fmt.Errorf("an OpenGL 3.3 core context or newer is required, got %d.%d", c.ContextMajor, c.ContextMinor)
	}
	switch c.PipelineFailure {
	case pipelineFailureFatal, pipelineFailureSkip:
	default:
		return fmt.Errorf("unknown pipeline failure policy %q", c.PipelineFailure)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear color component %d out of range: %v", i, v)
		}
	}
	return nil
}
