// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ringrow shows a procedurally generated row of extruded
// polygon rings, with sliders to tune the generation parameters,
// or renders it headless to a PNG file.
package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/ringrow/ringrow/config"
	"github.com/ringrow/ringrow/loop"
	"github.com/ringrow/ringrow/orbit"
	"github.com/ringrow/ringrow/raster"
	"github.com/ringrow/ringrow/scene"
	"github.com/ringrow/ringrow/xyzview"
)

func main() {
	opts := cli.DefaultOptions("ringrow", "Ringrow shows a procedural row of extruded polygon rings.")
	opts.DefaultFiles = []string{"ringrow.toml"}
	cli.Run(opts, &config.Config{},
		&cli.Cmd[*config.Config]{Func: Run, Name: "run", Doc: "Run opens a window with the rings and the parameter sliders.", Root: true},
		&cli.Cmd[*config.Config]{Func: Snapshot, Name: "snapshot", Doc: "Snapshot renders the rings headless and saves them to a PNG file."},
	)
}

// Run opens a window with the rings and the parameter sliders.
func Run(c *config.Config) error {
	c.SetLogger()
	if err := c.Validate(); err != nil {
		return err
	}
	errors.Log(c.Params.Validate())
	slog.Info("starting ringrow", "params", c.Params.String())
	xyzview.Run(&c.Params, c.Camera())
	return nil
}

// Snapshot runs the render loop headless through the software
// renderer for the configured number of frames and saves the last one.
func Snapshot(c *config.Config) error {
	c.SetLogger()
	if err := c.Validate(); err != nil {
		return err
	}
	errors.Log(c.Params.Validate())

	cm := c.Camera()
	g := raster.NewGraph()
	lc := scene.NewLifecycle(&c.Params, g)
	rn := raster.NewRenderer(g, cm, c.Width, c.Height)
	ctrl := orbit.NewControls(cm)
	ctrl.Damping = 1
	ctrl.Orbit(c.OrbitX, c.OrbitY)

	sched := &loop.ManualScheduler{}
	lp := loop.New(ctrl, lc, rn, sched)
	lp.Viewport = rn
	lp.Start()
	n := sched.Run(max(c.Frames, 1))
	slog.Debug("ran frames", "frames", n, "rebuilds", lp.Rebuilds)
	if err := rn.Save(c.Output); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
