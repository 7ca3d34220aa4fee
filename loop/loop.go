// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loop provides the per-frame driver of a ring row: each tick
// updates the camera controls, rebuilds stale rings, renders, and
// schedules the next tick.
package loop

import (
	"log/slog"
	"strconv"
)

// Controls updates the camera from pending user input.
type Controls interface {
	Update()
}

// Rebuilder rebuilds the rings when they are stale,
// returning whether it did.
type Rebuilder interface {
	RebuildIfStale() bool
}

// Renderer draws the scene as seen from the camera.
type Renderer interface {
	Render()
}

// Scheduler runs the given function once, at the next frame of the host.
type Scheduler interface {
	RequestFrame(fun func())
}

// Viewport updates the camera aspect ratio and projection,
// and the drawing surface, for a new size.
type Viewport interface {
	Resize(width, height int)
}

// State is the state of a [Loop].
type State int32

const (
	// Idle is waiting for the next frame.
	Idle State = iota

	// Frame is running a tick.
	Frame
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Frame:
		return "Frame"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Loop is the render loop. It never stops by itself: every tick
// requests the next one from the [Scheduler].
type Loop struct {

	// Controls are updated at the start of every tick. May be nil.
	Controls Controls

	// Rebuilder rebuilds the rings when they are stale.
	Rebuilder Rebuilder

	// Renderer renders at the end of every tick.
	Renderer Renderer

	// Scheduler schedules the ticks.
	Scheduler Scheduler

	// Viewport is resized by Resize. May be nil.
	Viewport Viewport

	// State is the current state.
	State State

	// Ticks is the number of ticks run so far.
	Ticks int

	// Rebuilds is the number of ticks that rebuilt the rings.
	Rebuilds int

	started bool
}

// New returns a new idle Loop.
func New(ctrl Controls, rb Rebuilder, rn Renderer, sc Scheduler) *Loop {
	return &Loop{Controls: ctrl, Rebuilder: rb, Renderer: rn, Scheduler: sc}
}

// Start schedules the first tick. It does nothing if already started.
func (lp *Loop) Start() {
	if lp.started {
		return
	}
	lp.started = true
	lp.State = Idle
	slog.Debug("starting render loop")
	lp.Scheduler.RequestFrame(lp.Tick)
}

// Tick runs one frame: it updates the controls, rebuilds the rings
// if they are stale, renders, and then requests the next tick.
func (lp *Loop) Tick() {
	lp.State = Frame
	if lp.Controls != nil {
		lp.Controls.Update()
	}
	if lp.Rebuilder.RebuildIfStale() {
		lp.Rebuilds++
	}
	lp.Renderer.Render()
	lp.Ticks++
	lp.State = Idle
	lp.Scheduler.RequestFrame(lp.Tick)
}

// Resize resizes the viewport and renders once immediately,
// without waiting for the next tick.
func (lp *Loop) Resize(width, height int) {
	if lp.Viewport != nil {
		lp.Viewport.Resize(width, height)
	}
	lp.Renderer.Render()
}
