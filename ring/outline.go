// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/params"
)

// Outline is a closed polygon with one hole, in the 2D plane
// of a ring before it is extruded.
// Both loops are implicitly closed: the last point connects back to the first.
type Outline struct {

	// Outer is the outer loop, counter-clockwise for a positive radius.
	Outer []math32.Vector2

	// Hole is the inner loop, at the same angles as Outer and traversed
	// in the same order (it is not reversed).
	Hole []math32.Vector2

	// Radius is the outer radius.
	Radius float32

	// HoleRadius is the radius of the hole; it is negative when the
	// hole offset exceeds the radius, which inverts the hole loop.
	HoleRadius float32
}

// NewOutline returns the outline of a regular polygon with the given
// number of sides and outer radius, with a hole of radius radius-hole.
// Sides below [params.MinSides] are raised to it.
func NewOutline(sides int, radius, hole float32) *Outline {
	sides = max(sides, params.MinSides)
	ol := &Outline{
		Outer:      make([]math32.Vector2, sides),
		Hole:       make([]math32.Vector2, sides),
		Radius:     radius,
		HoleRadius: radius - hole,
	}
	step := AngleStep(sides)
	for j := range sides {
		ang := float32(j) * step
		c, s := math32.Cos(ang), math32.Sin(ang)
		ol.Outer[j] = math32.Vec2(radius*c, radius*s)
		ol.Hole[j] = math32.Vec2(ol.HoleRadius*c, ol.HoleRadius*s)
	}
	return ol
}

// AngleStep returns the angle between consecutive vertices of a
// regular polygon with the given number of sides.
func AngleStep(sides int) float32 {
	return 2 * math32.Pi / float32(sides)
}

// Sides returns the number of sides.
func (ol *Outline) Sides() int {
	return len(ol.Outer)
}

// Edges calls fun for each edge of the given closed loop,
// including the closing edge from the last point back to the first.
func Edges(loop []math32.Vector2, fun func(j int, a, b math32.Vector2)) {
	n := len(loop)
	for j := range n {
		fun(j, loop[j], loop[(j+1)%n])
	}
}

// SignedArea returns the signed area of the given closed loop:
// positive for counter-clockwise winding, negative for clockwise.
func SignedArea(loop []math32.Vector2) float32 {
	var a float32
	Edges(loop, func(j int, p, q math32.Vector2) {
		a += p.X*q.Y - q.X*p.Y
	})
	return a / 2
}
