// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzview shows a ring row in an interactive 3D view
// with a slider for each parameter.
package xyzview

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/ringrow/ringrow/loop"
	"github.com/ringrow/ringrow/orbit"
	"github.com/ringrow/ringrow/params"
	"github.com/ringrow/ringrow/scene"
)

// View is the interactive ring row view. It is the [loop.Controls],
// [loop.Renderer], [loop.Scheduler] and [loop.Viewport] of its loop,
// with ticks run by the paint animation of the scene widget.
type View struct {

	// Params are the shared parameters that the sliders write.
	Params *params.Params

	// Camera mirrors the camera of the xyz scene.
	Camera *orbit.Camera

	// Editor is the scene editor with its navigation toolbar.
	Editor *xyzcore.SceneEditor

	// Graph is the scene graph of the rings.
	Graph *Graph

	// Lifecycle rebuilds the rings.
	Lifecycle *scene.Lifecycle

	// Loop is the render loop.
	Loop *loop.Loop

	status   *core.Text
	pending  func()
	size     image.Point
	rebuilds int
}

// New adds a new view to the given parent, with the camera
// starting from the given one, and starts its loop.
func New(parent tree.Node, p *params.Params, cm *orbit.Camera) *View {
	v := &View{Params: p, Camera: cm}

	row := core.NewFrame(parent)
	row.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Grow.Set(1, 1)
	})
	panel := core.NewFrame(row)
	panel.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	v.makeSliders(panel)
	core.NewButton(panel).SetText("Rebuild").SetIcon(icons.Refresh).
		SetTooltip("regenerate all of the rings from the current parameters").
		OnClick(func(e events.Event) {
			v.Lifecycle.Rebuild()
			v.Render()
		})
	v.status = core.NewText(panel)

	v.Editor = xyzcore.NewSceneEditor(row)
	v.Editor.UpdateWidget()
	sc := v.Editor.SceneXYZ()
	v.setupScene(sc)

	v.Graph = NewGraph(sc)
	v.Lifecycle = scene.NewLifecycle(p, v.Graph)
	v.Lifecycle.Rebuild()

	v.Loop = loop.New(v, v.Lifecycle, v, v)
	v.Loop.Viewport = v
	v.Editor.SceneWidget().Animate(func(a *core.Animation) {
		v.step()
	})
	v.Loop.Start()
	return v
}

// makeSliders adds a labeled slider bound to each parameter. The
// sliders write the parameters while sliding, not just at the end.
func (v *View) makeSliders(parent tree.Node) {
	for _, sl := range v.Params.Sliders() {
		core.NewText(parent).SetText(sl.Name)
		w := core.Bind(sl.Value, core.NewSlider(parent), string(sl.Tag))
		value := sl.Value
		w.OnInput(func(e events.Event) {
			errors.Log(reflectx.SetRobust(value, w.Value))
		})
	}
}

func (v *View) setupScene(sc *xyz.Scene) {
	var lt scene.Lights
	lt.Defaults()
	xyz.NewAmbientLight(sc, "ambient", lt.Ambient, xyz.DirectSun)
	dir := xyz.NewDirLight(sc, "directional", lt.Directional, xyz.DirectSun)
	// directional lights point at the origin from their position
	dir.Pos = lt.Position.Sub(lt.Target)

	cm := v.Camera
	sc.Camera.FOV = cm.FOV
	sc.Camera.Near = cm.Near
	sc.Camera.Far = cm.Far
	sc.Camera.Pose.Pos = cm.Position
	sc.Camera.LookAt(cm.Target, cm.Up)
	sc.SaveCamera("default")
}

// step runs the pending frame, if any.
func (v *View) step() {
	fun := v.pending
	v.pending = nil
	if fun != nil {
		fun()
	}
}

func (v *View) RequestFrame(fun func()) {
	v.pending = fun
}

// Update copies the camera of the xyz scene, which is moved
// by the navigation events of the scene widget, into Camera.
func (v *View) Update() {
	sc := v.Editor.SceneXYZ()
	v.Camera.Position = sc.Camera.Pose.Pos
	v.Camera.Target = sc.Camera.Target
	v.Camera.Up = sc.Camera.UpDir
}

func (v *View) Resize(width, height int) {
	v.size = image.Pt(width, height)
	v.Camera.SetAspect(width, height)
	v.Camera.UpdateProjection()
	sc := v.Editor.SceneXYZ()
	sc.Camera.Aspect = v.Camera.Aspect
	sc.Camera.UpdateMatrix()
}

// Render flushes released meshes, applies material changes, and marks the scene for rendering
// at the next paint. A change of the scene size is handled first.
func (v *View) Render() {
	sw := v.Editor.SceneWidget()
	if sz := sw.XYZ.Geom.Size; sz != v.size && sz != (image.Point{}) {
		v.Loop.Resize(sz.X, sz.Y)
		return
	}
	v.Graph.Flush()
	v.Graph.SyncMaterials()
	sw.XYZ.SetNeedsUpdate()
	sw.NeedsRender()
	if v.rebuilds != v.Lifecycle.Rebuilds {
		v.rebuilds = v.Lifecycle.Rebuilds
		v.status.SetText(fmt.Sprintf("%d rings, %d rebuilds", len(v.Lifecycle.Rings()), v.rebuilds))
		v.status.UpdateRender()
	}
}

// Run opens a window with a new view and runs it until closed.
func Run(p *params.Params, cm *orbit.Camera) {
	b := core.NewBody("ringrow")
	New(b, p, cm)
	b.RunMainWindow()
}
