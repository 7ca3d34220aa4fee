// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"fmt"
	"testing"

	"github.com/ringrow/ringrow/params"
	"github.com/ringrow/ringrow/scene"
	"github.com/ringrow/ringrow/scene/scenetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
	stale  bool
	lp     *Loop
}

func (rc *recorder) Update() {
	rc.events = append(rc.events, "controls "+rc.lp.State.String())
}

func (rc *recorder) RebuildIfStale() bool {
	rc.events = append(rc.events, "rebuild")
	st := rc.stale
	rc.stale = false
	return st
}

func (rc *recorder) Render() {
	rc.events = append(rc.events, "render")
}

func (rc *recorder) Resize(width, height int) {
	rc.events = append(rc.events, fmt.Sprintf("resize %dx%d", width, height))
}

func newRecorded() (*Loop, *recorder, *ManualScheduler) {
	rc := &recorder{}
	ms := &ManualScheduler{}
	lp := New(rc, rc, rc, ms)
	lp.Viewport = rc
	rc.lp = lp
	return lp, rc, ms
}

func TestTickOrder(t *testing.T) {
	lp, rc, ms := newRecorded()
	assert.False(t, ms.Pending())
	lp.Start()
	assert.True(t, ms.Pending())
	assert.Empty(t, rc.events, "start only schedules")

	require.True(t, ms.Step())
	assert.Equal(t, []string{"controls Frame", "rebuild", "render"}, rc.events)
	assert.Equal(t, Idle, lp.State)
	assert.True(t, ms.Pending(), "every tick schedules the next")
	assert.Equal(t, 1, lp.Ticks)
}

func TestStartTwice(t *testing.T) {
	lp, _, ms := newRecorded()
	lp.Start()
	lp.Start()
	assert.Equal(t, 1, ms.Run(1))
	assert.Equal(t, 1, lp.Ticks)
}

func TestRunsUnbounded(t *testing.T) {
	lp, rc, ms := newRecorded()
	lp.Start()
	rc.stale = true
	assert.Equal(t, 50, ms.Run(50))
	assert.Equal(t, 50, lp.Ticks)
	assert.Equal(t, 1, lp.Rebuilds)
	assert.Len(t, rc.events, 150)
}

func TestResize(t *testing.T) {
	lp, rc, ms := newRecorded()
	lp.Resize(640, 480)
	assert.Equal(t, []string{"resize 640x480", "render"}, rc.events)
	assert.False(t, ms.Pending(), "resize does not schedule")
	assert.Equal(t, 0, lp.Ticks)
}

func TestNilControls(t *testing.T) {
	lp, rc, ms := newRecorded()
	lp.Controls = nil
	lp.Viewport = nil
	lp.Start()
	ms.Step()
	lp.Resize(10, 10)
	assert.Equal(t, []string{"rebuild", "render", "render"}, rc.events)
}

func TestManualSchedulerEmpty(t *testing.T) {
	ms := &ManualScheduler{}
	assert.False(t, ms.Step())
	assert.Equal(t, 0, ms.Run(10))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Frame", Frame.String())
	assert.Equal(t, "State(7)", State(7).String())
}

type renderCount int

func (rc *renderCount) Render() { *rc++ }

func TestLoopRebuildsLifecycle(t *testing.T) {
	p := params.New()
	g := scenetest.New()
	lc := scene.NewLifecycle(p, g)
	var rn renderCount
	ms := &ManualScheduler{}
	lp := New(nil, lc, &rn, ms)
	lp.Start()

	ms.Run(3)
	assert.Equal(t, 1, lc.Rebuilds)
	assert.Len(t, g.RingNodes(), 15)

	p.Resolution = 8
	ms.Run(1)
	assert.Equal(t, 2, lc.Rebuilds)
	assert.Len(t, g.RingNodes(), 8)

	p.Radius = 3
	ms.Run(5)
	assert.Equal(t, 2, lc.Rebuilds)
	assert.Equal(t, 9, int(rn))
	assert.Equal(t, 2, lp.Rebuilds)
}
