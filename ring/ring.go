// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring generates the extruded polygon rings of a ring row
// from closed-form periodic functions of the ring index.
package ring

import (
	"strconv"

	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/params"
)

// Ring is one extruded polygon with a hole. Rings are never modified
// after they are generated: a change of parameters regenerates all of them.
type Ring struct {

	// Index is the position of the ring in the row, which is
	// the phase input to all of the periodic functions.
	Index int

	// Name is the unique name of the ring in the scene graph.
	Name string

	// Sides is the number of sides the ring was generated with.
	Sides int

	// Outline is the 2D polygon with hole.
	Outline *Outline

	// Solid is the extruded mesh, already rotated so that
	// it extrudes along the placement axis.
	Solid *Solid

	// Pose is the placement of the ring in the row.
	Pose Pose
}

// Name returns the scene graph name of the ring at the given index.
func Name(index int) string {
	return "polygon " + strconv.Itoa(index)
}

// Radius returns the modulated outer radius of the ring at the given index.
func Radius(index int, p *params.Params) float32 {
	return p.Amplitude*math32.Sin(p.Frequency*float32(index)+p.Phase) + p.Radius
}

// Position returns the position of the ring at the given index,
// offset along X by the depth plus the distance for each ring.
func Position(index int, p *params.Params) math32.Vector3 {
	return math32.Vec3(float32(index)*(p.Depth+p.Distance), 0, 0)
}

// Rotation returns the Euler rotation, in radians, of the ring at
// the given index. The X rotation uses the same function as [Radius].
func Rotation(index int, p *params.Params) math32.Vector3 {
	fi := float32(index)
	rx := p.Amplitude * math32.Sin(p.Frequency*fi+p.Phase)
	ry := (p.Amplitude / 2) * math32.Cos(2*p.Frequency*fi+p.Phase)
	return math32.Vec3(rx, ry, 0)
}

// Generate returns the ring at the given index for the given parameters.
// It never fails: degenerate parameters give a degenerate ring.
func Generate(index int, p *params.Params) *Ring {
	sides := p.NumSides()
	ol := NewOutline(sides, Radius(index, p), p.Hole)
	return &Ring{
		Index:   index,
		Name:    Name(index),
		Sides:   sides,
		Outline: ol,
		Solid:   NewSolid(ol, p.Depth),
		Pose: Pose{
			Position: Position(index, p),
			Rotation: Rotation(index, p),
		},
	}
}

// GenerateAll returns all of the rings for the given parameters, in index order.
func GenerateAll(p *params.Params) []*Ring {
	n := p.NumRings()
	rs := make([]*Ring, n)
	for i := range n {
		rs[i] = Generate(i, p)
	}
	return rs
}
