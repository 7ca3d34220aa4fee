// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"cogentcore.org/core/math32"
)

// Extrusion is the shape of an [Outline] extruded along +Z to the given
// depth, without bevels, and then rotated 90 degrees about Y so that the
// extrusion runs along +X.
//
// It has four faces: the cap at z = 0, the cap at z = Depth, the outer
// wall and the inner (hole) wall. Each face has its own vertices so that
// the solid is flat shaded. Triangles are counter-clockwise when seen
// from the side their normal points to.
type Extrusion struct {

	// Outline is the polygon with hole that is extruded.
	Outline *Outline

	// Depth is the extrusion thickness.
	Depth float32

	// VertexOffset is the starting vertex in the arrays passed to Set, in points.
	VertexOffset int

	// IndexOffset is the starting index in the arrays passed to Set.
	IndexOffset int

	// BBox is the bounding box, valid after Set has been called.
	BBox math32.Box3
}

// Size returns the number of vertex points and indexes of the extrusion.
func (ex *Extrusion) Size() (numVertex, numIndex int) {
	n := ex.Outline.Sides()
	// caps: 2n vertices, 6n indexes each. walls: 4n vertices, 6n indexes each.
	return 12 * n, 24 * n
}

// Set fills the given arrays, which must be allocated to at least the
// [Extrusion.Size] past the offsets.
func (ex *Extrusion) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	ol := ex.Outline
	n := ol.Sides()
	sw := &solidWriter{vertex: vertex, normal: normal, texcoord: texcoord, index: index,
		vi: ex.VertexOffset, ii: ex.IndexOffset}
	ex.BBox.SetEmpty()
	sw.bbox = &ex.BBox

	// caps
	for _, back := range []bool{false, true} {
		z, nz := float32(0), float32(-1)
		if back {
			z, nz = ex.Depth, 1
		}
		base := sw.vi
		nrm := math32.Vec3(0, 0, nz)
		for _, loop := range [][]math32.Vector2{ol.Outer, ol.Hole} {
			for _, p := range loop {
				sw.addVertex(math32.Vec3(p.X, p.Y, z), nrm, p)
			}
		}
		for j := range n {
			k := (j + 1) % n
			o0, o1 := base+j, base+k
			h0, h1 := base+n+j, base+n+k
			if back {
				sw.addTriangle(o0, o1, h1)
				sw.addTriangle(o0, h1, h0)
			} else {
				sw.addTriangle(o0, h1, o1)
				sw.addTriangle(o0, h0, h1)
			}
		}
	}

	// walls
	step := AngleStep(n)
	fn := float32(n)
	for _, inner := range []bool{false, true} {
		loop, sign := ol.Outer, float32(1)
		if inner {
			loop, sign = ol.Hole, -1
		}
		Edges(loop, func(j int, a, b math32.Vector2) {
			mid := (float32(j) + 0.5) * step
			nrm := math32.Vec3(sign*math32.Cos(mid), sign*math32.Sin(mid), 0)
			u0, u1 := float32(j)/fn, float32(j+1)/fn
			base := sw.vi
			sw.addVertex(math32.Vec3(a.X, a.Y, 0), nrm, math32.Vec2(u0, 0))
			sw.addVertex(math32.Vec3(b.X, b.Y, 0), nrm, math32.Vec2(u1, 0))
			sw.addVertex(math32.Vec3(b.X, b.Y, ex.Depth), nrm, math32.Vec2(u1, 1))
			sw.addVertex(math32.Vec3(a.X, a.Y, ex.Depth), nrm, math32.Vec2(u0, 1))
			if inner {
				sw.addTriangle(base, base+2, base+1)
				sw.addTriangle(base, base+3, base+2)
			} else {
				sw.addTriangle(base, base+1, base+2)
				sw.addTriangle(base, base+2, base+3)
			}
		})
	}
}

// RotateY90 rotates the given vector 90 degrees about the Y axis,
// taking +Z onto +X.
func RotateY90(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(v.Z, v.Y, -v.X)
}

// solidWriter appends rotated vertices and triangles into flat arrays.
type solidWriter struct {
	vertex, normal, texcoord math32.ArrayF32
	index                    math32.ArrayU32

	// vi and ii are the next vertex point and index
	vi, ii int

	bbox *math32.Box3
}

func (sw *solidWriter) addVertex(pos, nrm math32.Vector3, uv math32.Vector2) {
	pos = RotateY90(pos)
	nrm = RotateY90(nrm)
	i3 := sw.vi * 3
	sw.vertex[i3], sw.vertex[i3+1], sw.vertex[i3+2] = pos.X, pos.Y, pos.Z
	sw.normal[i3], sw.normal[i3+1], sw.normal[i3+2] = nrm.X, nrm.Y, nrm.Z
	i2 := sw.vi * 2
	sw.texcoord[i2], sw.texcoord[i2+1] = uv.X, uv.Y
	sw.bbox.ExpandByPoint(pos)
	sw.vi++
}

func (sw *solidWriter) addTriangle(a, b, c int) {
	sw.index[sw.ii], sw.index[sw.ii+1], sw.index[sw.ii+2] = uint32(a), uint32(b), uint32(c)
	sw.ii += 3
}

// Solid is the triangle mesh data of one extruded ring, in the
// flat array layout used by GPU meshes: 3 floats per vertex and
// normal, 2 per texture coordinate, 3 indexes per triangle.
type Solid struct {
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Index    math32.ArrayU32

	// BBox is the bounding box in local coordinates.
	BBox math32.Box3
}

// NewSolid allocates and fills the mesh of the given extrusion.
func NewSolid(ol *Outline, depth float32) *Solid {
	ex := &Extrusion{Outline: ol, Depth: depth}
	nv, ni := ex.Size()
	sd := &Solid{
		Vertex:   make(math32.ArrayF32, nv*3),
		Normal:   make(math32.ArrayF32, nv*3),
		TexCoord: make(math32.ArrayF32, nv*2),
		Index:    make(math32.ArrayU32, ni),
	}
	ex.Set(sd.Vertex, sd.Normal, sd.TexCoord, sd.Index)
	sd.BBox = ex.BBox
	return sd
}

// NumVertex returns the number of vertex points.
func (sd *Solid) NumVertex() int {
	return len(sd.Vertex) / 3
}

// NumTriangles returns the number of triangles.
func (sd *Solid) NumTriangles() int {
	return len(sd.Index) / 3
}

// Position returns the vertex position at the given point index.
func (sd *Solid) Position(i int) math32.Vector3 {
	return math32.Vec3(sd.Vertex[i*3], sd.Vertex[i*3+1], sd.Vertex[i*3+2])
}

// NormalAt returns the normal at the given point index.
func (sd *Solid) NormalAt(i int) math32.Vector3 {
	return math32.Vec3(sd.Normal[i*3], sd.Normal[i*3+1], sd.Normal[i*3+2])
}

// Triangle returns the point indexes of the given triangle.
func (sd *Solid) Triangle(t int) (a, b, c int) {
	return int(sd.Index[t*3]), int(sd.Index[t*3+1]), int(sd.Index[t*3+2])
}
