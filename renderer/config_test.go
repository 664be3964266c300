// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigTOML(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "window.toml")

	cfg := DefaultConfig()
	cfg.Title = "demo"
	cfg.Width = 640
	cfg.Height = 360
	cfg.VSync = false
	require.NoError(t, SaveConfig(cfg, fn))

	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	// a partial file only overrides what it names
	pfn := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(pfn, []byte("Width = 800\nTitle = 'partial'\n"), 0666))
	got, err = OpenConfig(pfn)
	require.NoError(t, err)
	assert.Equal(t, 800, got.Width)
	assert.Equal(t, "partial", got.Title)
	assert.Equal(t, 768, got.Height)
	assert.True(t, got.VSync)

	_, err = OpenConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bfn := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(bfn, []byte("Width = =\n"), 0666))
	_, err = OpenConfig(bfn)
	assert.Error(t, err)
}
