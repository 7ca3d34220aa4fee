// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides a perspective camera that orbits around a
// target point, and damped orbit controls that move it.
package orbit

import (
	"cogentcore.org/core/math32"
)

// Camera is a perspective camera looking at a target point.
type Camera struct {

	// Position is the location of the camera.
	Position math32.Vector3

	// Target is the point the camera is looking at. It moves with panning.
	Target math32.Vector3

	// Up is the up direction of the camera, kept orthogonal
	// to the view direction by orbiting.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	// focal is the projection scale, 1 / tan(FOV / 2), set by UpdateProjection.
	focal float32
}

// NewCamera returns a new camera with default settings.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets the default field of view and clipping planes, and
// places the camera at (30, 5, 20) looking at the origin.
func (cm *Camera) Defaults() {
	cm.FOV = 35
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 100
	cm.Position = math32.Vec3(30, 5, 20)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	cm.UpdateProjection()
}

// LookAt points the camera at the given target, with the given
// up direction (+Y if zero).
func (cm *Camera) LookAt(target, up math32.Vector3) {
	cm.Target = target
	if up.Length() == 0 {
		up = math32.Vec3(0, 1, 0)
	}
	_, cm.Up, _ = basis(cm.ViewVector(), up)
}

// SetAspect sets the aspect ratio from the given surface size.
// A zero height leaves it unchanged.
func (cm *Camera) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// UpdateProjection updates the projection after a change
// of the field of view or the aspect ratio.
func (cm *Camera) UpdateProjection() {
	cm.focal = 1 / math32.Tan(math32.DegToRad(cm.FOV*0.5))
}

// ViewVector is the vector from the target to the camera position.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Position.Sub(cm.Target)
}

// Distance is the distance from the camera to the target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// Basis returns the orthonormal camera axes: right, up, and back,
// where back points from the target toward the camera.
func (cm *Camera) Basis() (right, up, back math32.Vector3) {
	return basis(cm.ViewVector(), cm.Up)
}

func basis(view, up math32.Vector3) (right, upo, back math32.Vector3) {
	if view.Length() == 0 {
		view = math32.Vec3(0, 0, 1)
	}
	back = view.Normal()
	right = up.Cross(back)
	if right.Length() == 0 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()
	upo = back.Cross(right)
	return
}

// ToView returns the given world point in camera coordinates,
// where the camera looks down -Z with +Y up.
func (cm *Camera) ToView(p math32.Vector3) math32.Vector3 {
	right, up, back := cm.Basis()
	d := p.Sub(cm.Position)
	return math32.Vec3(d.Dot(right), d.Dot(up), d.Dot(back))
}

// ProjectView returns the normalized device coordinates, in [-1, 1] for
// visible points with +Y up, of the given point in camera coordinates.
// The point must be in front of the camera.
func (cm *Camera) ProjectView(v math32.Vector3) math32.Vector2 {
	d := -v.Z
	return math32.Vec2(cm.focal/cm.Aspect*v.X/d, cm.focal*v.Y/d)
}

// Project returns the normalized device coordinates of the given
// world point, and whether it lies between the near and far planes.
func (cm *Camera) Project(p math32.Vector3) (math32.Vector2, bool) {
	v := cm.ToView(p)
	if -v.Z < cm.Near || -v.Z > cm.Far {
		return math32.Vector2{}, false
	}
	return cm.ProjectView(v), true
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down), keeping the same distance
// from the target and rotating the up direction to keep looking at it.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.Length() == 0 {
		ctdir = math32.Vec3(0, 0, 1)
	}
	right, up, _ := cm.Basis()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	ctdir = ctdir.MulQuat(dxq)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	ctdir = ctdir.MulQuat(dyq)

	cm.Position = cm.Target.Add(ctdir)
	cm.LookAt(cm.Target, up.MulQuat(dyq))
}

// Pan moves the camera and its target along the given 2D axes
// in the plane of the view.
func (cm *Camera) Pan(delX, delY float32) {
	right, up, _ := cm.Basis()
	td := right.MulScalar(-delX).Add(up.MulScalar(-delY))
	cm.Position = cm.Position.Add(td)
	cm.Target = cm.Target.Add(td)
}

// Zoom moves the camera toward (negative) or away from (positive) the
// target by the given fraction of the current distance. The camera
// never moves onto or through the target.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.Length() == 0 {
		ctaxis = math32.Vec3(0, 0, 1)
	}
	zoomPct = max(zoomPct, -0.9)
	cm.Position = cm.Position.Add(ctaxis.MulScalar(zoomPct))
}
