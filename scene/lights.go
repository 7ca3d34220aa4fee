// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Lights are an ambient light and one directional light.
type Lights struct {

	// Ambient is the intensity of the ambient light.
	Ambient float32

	// Directional is the intensity of the directional light.
	Directional float32

	// Position is the position of the directional light.
	Position math32.Vector3

	// Target is the point the directional light is aimed at.
	Target math32.Vector3
}

// Defaults sets an ambient light of 0.5 and a directional light
// of 1 at (2, 5, 5) aimed at (-1, -1, 0).
func (lt *Lights) Defaults() {
	lt.Ambient = 0.5
	lt.Directional = 1
	lt.Position = math32.Vec3(2, 5, 5)
	lt.Target = math32.Vec3(-1, -1, 0)
}

// Shade returns the light intensity, clamped to [0, 1], on
// a surface with the given unit normal.
func (lt *Lights) Shade(normal math32.Vector3) float32 {
	diffuse := max(normal.Dot(lt.Direction()), 0)
	return math32.Clamp(lt.Ambient+lt.Directional*diffuse, 0, 1)
}

// Direction returns the unit vector pointing from the
// lit surfaces toward the directional light.
func (lt *Lights) Direction() math32.Vector3 {
	return lt.Position.Sub(lt.Target).Normal()
}
