// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/core/math32"
)

// plane is the half space of points p with Normal.Dot(p) + Offset >= 0.
type plane struct {
	Normal math32.Vector3
	Offset float32
}

func (pl plane) dist(p math32.Vector3) float32 {
	return pl.Normal.Dot(p) + pl.Offset
}

// clip returns the part of the given convex polygon that lies in the
// half space, which is empty or has at least three points.
func (pl plane) clip(poly []math32.Vector3) []math32.Vector3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]math32.Vector3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	pd := pl.dist(prev)
	for _, cur := range poly {
		cd := pl.dist(cur)
		if (cd >= 0) != (pd >= 0) {
			t := pd / (pd - cd)
			out = append(out, prev.Add(cur.Sub(prev).MulScalar(t)))
		}
		if cd >= 0 {
			out = append(out, cur)
		}
		prev, pd = cur, cd
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// clipAll clips the polygon against all of the given planes in turn.
func clipAll(poly []math32.Vector3, planes ...plane) []math32.Vector3 {
	for _, pl := range planes {
		poly = pl.clip(poly)
		if poly == nil {
			return nil
		}
	}
	return poly
}
