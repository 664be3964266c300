// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gpukit/gpukit/base/fsx"
)

// Config holds the window and context settings for [InitConfig].
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial window size in screen
	// coordinates.
	Width  int
	Height int

	// GLMajor and GLMinor select the OpenGL core-profile context
	// version.
	GLMajor int
	GLMinor int

	// Resizable lets the user resize the window.
	Resizable bool

	// VSync synchronizes [Display] with the vertical blank.
	VSync bool

	// Samples is the multisample count for the default framebuffer;
	// 0 disables multisampling.
	Samples int

	// Hidden opens the window hidden, for offscreen rendering and
	// tests.
	Hidden bool
}

// DefaultConfig returns the default window settings: 1024x768,
// resizable, OpenGL 4.1, vsync on.
func DefaultConfig() *Config {
	return &Config{
		Title:     "gpukit",
		Width:     1024,
		Height:    768,
		GLMajor:   4,
		GLMinor:   1,
		Resizable: true,
		VSync:     true,
	}
}

// OpenConfig reads TOML settings from the given file over the
// defaults, so a partial file only overrides what it names.
func OpenConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	str, err := fsx.FileString(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal([]byte(str), cfg); err != nil {
		return nil, fmt.Errorf("renderer.OpenConfig: %q: %w", filename, err)
	}
	return cfg, nil
}

// SaveConfig writes the settings to the given file as TOML.
func SaveConfig(cfg *Config, filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("renderer.SaveConfig: %w", err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("renderer.SaveConfig: %q: %w", filename, err)
	}
	return nil
}
