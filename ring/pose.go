// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"cogentcore.org/core/math32"
)

// Pose is a position and an Euler rotation.
type Pose struct {

	// Position is the translation.
	Position math32.Vector3

	// Rotation is the rotation about X, Y and Z in radians, applied
	// in the XYZ order: the matrix is Rx * Ry * Rz.
	Rotation math32.Vector3
}

// Quat returns the rotation as a quaternion, qx * qy * qz, so that
// Z is applied first and X last.
func (ps *Pose) Quat() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), ps.Rotation.X)
	qy := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), ps.Rotation.Y)
	qz := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), ps.Rotation.Z)
	q.SetMul(qy)
	q.SetMul(qz)
	return q
}

// Rotate applies the rotation to the given vector.
func (ps *Pose) Rotate(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(ps.Quat())
}

// Transform applies the rotation and then the translation to the given point.
func (ps *Pose) Transform(v math32.Vector3) math32.Vector3 {
	return ps.Rotate(v).Add(ps.Position)
}
