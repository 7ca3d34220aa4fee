// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the ringrow tool.
package config

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/orbit"
	"github.com/ringrow/ringrow/params"
)

// Config is the main config struct that contains all of the
// configuration options for the ringrow tool. It is read from
// the command line and an optional ringrow.toml file, and only
// provides initial values: nothing is ever written back.
type Config struct {

	// Params are the initial ring parameters, which the sliders then edit.
	params.Params

	// Width is the window or snapshot width in pixels.
	Width int `default:"1280"`

	// Height is the window or snapshot height in pixels.
	Height int `default:"800"`

	// FOV is the vertical field of view of the camera in degrees.
	FOV float32 `default:"35"`

	// Near is the near clipping distance of the camera.
	Near float32 `default:"0.1"`

	// Far is the far clipping distance of the camera.
	Far float32 `default:"100"`

	// CameraX, CameraY and CameraZ are the initial camera position.
	// The camera always starts looking at the origin.
	CameraX float32 `default:"30"`
	CameraY float32 `default:"5"`
	CameraZ float32 `default:"20"`

	// Output is the PNG file written by the snapshot command.
	Output string `cmd:"snapshot" flag:"o,output" default:"ringrow.png"`

	// Frames is the number of frames the snapshot command runs before saving.
	Frames int `cmd:"snapshot" default:"1"`

	// OrbitX and OrbitY orbit the snapshot camera around its target by
	// the given degrees before the first frame.
	OrbitX float32 `cmd:"snapshot"`
	OrbitY float32 `cmd:"snapshot"`

	// Verbose is whether to print informational log messages.
	Verbose bool `flag:"v,verbose"`

	// VeryVerbose is whether to print debug log messages,
	// including every rebuild of the rings.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Quiet is whether to only print errors.
	Quiet bool `flag:"q,quiet"`
}

// New returns a new Config set to its defaults.
func New() *Config {
	c := &Config{}
	errors.Log(cli.SetFromDefaults(c))
	return c
}

// Open returns a new Config set to its defaults and
// then overridden by the given TOML file.
func Open(filename string) (*Config, error) {
	c := New()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("config: opening %q: %w", filename, err)
	}
	return c, nil
}

// Level returns the log level selected by the verbosity flags.
func (c *Config) Level() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// SetLogger sets [logx.UserLevel] from the verbosity flags and
// installs the default logger.
func (c *Config) SetLogger() {
	logx.UserLevel = c.Level()
	logx.SetDefaultLogger()
}

// Validate returns an error if the window or camera settings cannot
// be rendered. Out of range ring parameters are only reported through
// [params.Params.Validate], since generation tolerates any value.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("config: FOV %g must be in (0, 180)", c.FOV))
	}
	if c.Near <= 0 || c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("config: need 0 < Near (%g) < Far (%g)", c.Near, c.Far))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: Frames %d must not be negative", c.Frames))
	}
	return errors.Join(errs...)
}

// Camera returns a new camera with the configured position,
// lens and aspect ratio, looking at the origin.
func (c *Config) Camera() *orbit.Camera {
	cm := orbit.NewCamera()
	cm.FOV = c.FOV
	cm.Near = c.Near
	cm.Far = c.Far
	cm.Position = math32.Vec3(c.CameraX, c.CameraY, c.CameraZ)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	cm.SetAspect(c.Width, c.Height)
	cm.UpdateProjection()
	return cm
}
