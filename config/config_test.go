// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 15, c.Resolution)
	assert.Equal(t, 6, c.Sides)
	assert.Equal(t, float32(1.8), c.Radius)
	assert.Equal(t, 1280, c.Width)
	assert.Equal(t, 800, c.Height)
	assert.Equal(t, float32(35), c.FOV)
	assert.Equal(t, "ringrow.png", c.Output)
	assert.Equal(t, 1, c.Frames)
	assert.NoError(t, c.Validate())
	assert.NoError(t, c.Params.Validate())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ringrow.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Resolution = 8\nSides = 4\nWidth = 640\nOutput = \"row.png\"\n"), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Resolution)
	assert.Equal(t, 4, c.Sides)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 800, c.Height, "unset fields keep their defaults")
	assert.Equal(t, "row.png", c.Output)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Width = 0
	c.Near = 10
	c.Far = 5
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size 0x800")
	assert.Contains(t, err.Error(), "Near")
}

func TestLevel(t *testing.T) {
	c := New()
	assert.Equal(t, slog.LevelWarn, c.Level())
	c.Verbose = true
	assert.Equal(t, slog.LevelInfo, c.Level())
	c.VeryVerbose = true
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestCamera(t *testing.T) {
	c := New()
	cm := c.Camera()
	assert.Equal(t, math32.Vec3(30, 5, 20), cm.Position)
	assert.Equal(t, math32.Vector3{}, cm.Target)
	assert.InDelta(t, 1.6, cm.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), cm.Near)

	p, ok := cm.Project(math32.Vector3{})
	assert.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
}

func TestSetLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	c := New()
	c.VeryVerbose = true
	c.SetLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	c.VeryVerbose = false
	c.Quiet = true
	c.SetLogger()
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
