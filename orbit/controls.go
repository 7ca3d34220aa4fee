// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"cogentcore.org/core/math32"
)

// settle is the magnitude below which pending motion is dropped.
const settle = 1e-4

// Controls accumulate orbit, pan, and zoom input and apply it to a
// [Camera] on each [Controls.Update], with optional damping so that
// the camera keeps moving for a while after the input stops.
type Controls struct {

	// Camera is the camera that is moved.
	Camera *Camera

	// Damping is the fraction of the pending motion applied per update,
	// in (0, 1]. Zero or less applies all of it at once.
	Damping float32

	// MinDistance and MaxDistance bound the distance to the target
	// after zooming. Zero means no bound.
	MinDistance, MaxDistance float32

	orbitX, orbitY float32
	panX, panY     float32
	zoom           float32
}

// NewControls returns new controls for the given camera,
// with a damping factor of 0.05.
func NewControls(cm *Camera) *Controls {
	return &Controls{Camera: cm, Damping: 0.05}
}

// Orbit adds the given orbit motion in degrees.
func (oc *Controls) Orbit(delX, delY float32) {
	oc.orbitX += delX
	oc.orbitY += delY
}

// Pan adds the given pan motion.
func (oc *Controls) Pan(delX, delY float32) {
	oc.panX += delX
	oc.panY += delY
}

// Zoom adds the given zoom fraction.
func (oc *Controls) Zoom(zoomPct float32) {
	oc.zoom += zoomPct
}

// Moving returns whether there is pending motion.
func (oc *Controls) Moving() bool {
	return oc.orbitX != 0 || oc.orbitY != 0 || oc.panX != 0 || oc.panY != 0 || oc.zoom != 0
}

// Update applies the damped share of the pending motion to the camera.
func (oc *Controls) Update() {
	if !oc.Moving() {
		return
	}
	f := oc.Damping
	if f <= 0 || f > 1 {
		f = 1
	}
	cm := oc.Camera
	ox, oy := take(&oc.orbitX, f), take(&oc.orbitY, f)
	if ox != 0 || oy != 0 {
		cm.Orbit(ox, oy)
	}
	px, py := take(&oc.panX, f), take(&oc.panY, f)
	if px != 0 || py != 0 {
		cm.Pan(px, py)
	}
	if z := take(&oc.zoom, f); z != 0 {
		cm.Zoom(z)
		oc.clampDistance()
	}
}

func (oc *Controls) clampDistance() {
	cm := oc.Camera
	dist := cm.Distance()
	if dist == 0 {
		return
	}
	lim := dist
	if oc.MinDistance > 0 {
		lim = max(lim, oc.MinDistance)
	}
	if oc.MaxDistance > 0 {
		lim = min(lim, oc.MaxDistance)
	}
	if lim != dist {
		cm.Position = cm.Target.Add(cm.ViewVector().MulScalar(lim / dist))
	}
}

// take removes and returns the share f of *v,
// dropping the rest once it has settled.
func take(v *float32, f float32) float32 {
	d := *v * f
	*v -= d
	if math32.Abs(*v) < settle {
		d += *v
		*v = 0
	}
	return d
}
