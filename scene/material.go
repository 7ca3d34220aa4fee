// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the surface of a node. One Material is shared
// by all of the rings of a build, so changing it changes all of them.
type Material struct {

	// Color is the main color of the surface.
	Color color.RGBA

	// Shiny is the specular shininess factor.
	Shiny float32

	// Reflective is the specular reflectiveness factor.
	Reflective float32

	// DoubleSided is whether back faces are drawn too.
	DoubleSided bool

	released bool
}

// NewRingMaterial returns the white material used for rings.
func NewRingMaterial() *Material {
	return &Material{Color: colors.FromRGB(0xff, 0xff, 0xff), Shiny: 30, Reflective: 0.5}
}

// NewGroundMaterial returns the gray, double sided material used for the ground.
func NewGroundMaterial() *Material {
	return &Material{Color: colors.FromRGB(0x66, 0x66, 0x66), Shiny: 10, Reflective: 0.1, DoubleSided: true}
}

// Dispose marks the material as released. It is safe to call more
// than once, and on a nil material.
func (mt *Material) Dispose() {
	if mt == nil {
		return
	}
	mt.released = true
}

// Released returns whether [Material.Dispose] has been called.
func (mt *Material) Released() bool {
	return mt != nil && mt.released
}
