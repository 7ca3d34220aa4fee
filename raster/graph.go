// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides an in-memory scene graph and a software
// renderer for it, used to render ring rows without a GPU.
package raster

import (
	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/ring"
	"github.com/ringrow/ringrow/scene"
)

// Geometry is the mesh of a [Node]. It is dropped when disposed.
type Geometry struct {
	Solid *ring.Solid
}

// Dispose releases the mesh. It is safe to call more than once.
func (gm *Geometry) Dispose() {
	gm.Solid = nil
}

// Released returns whether the mesh has been released.
func (gm *Geometry) Released() bool {
	return gm.Solid == nil
}

// Node is a solid or plane in a [Graph].
type Node struct {
	name string

	// Pose is the placement of the node.
	Pose ring.Pose

	// Geom is the mesh in local coordinates.
	Geom *Geometry

	// Material is the surface material.
	Material *scene.Material

	// Plane is whether the node is a ground plane.
	Plane bool

	graph *Graph
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Geometry() scene.Disposer {
	return n.Geom
}

func (n *Node) Materials() []scene.Disposer {
	if n.Material == nil {
		return nil
	}
	return []scene.Disposer{n.Material}
}

func (n *Node) Attached() bool {
	return n.graph != nil
}

func (n *Node) Detach() {
	if n.graph == nil {
		return
	}
	n.graph.remove(n)
	n.graph = nil
}

// Graph is a flat scene graph: an ordered list of nodes.
type Graph struct {
	Nodes []*Node
}

// NewGraph returns a new empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) AddSolid(r *ring.Ring, mat *scene.Material) scene.Node {
	return g.add(&Node{name: r.Name, Pose: r.Pose, Geom: &Geometry{Solid: r.Solid}, Material: mat})
}

func (g *Graph) AddPlane(name string, size float32, mat *scene.Material) scene.Node {
	return g.add(&Node{name: name, Geom: &Geometry{Solid: NewPlane(size)}, Material: mat, Plane: true})
}

func (g *Graph) NodeByName(name string) scene.Node {
	for _, n := range g.Nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

func (g *Graph) add(n *Node) *Node {
	n.graph = g
	g.Nodes = append(g.Nodes, n)
	return n
}

func (g *Graph) remove(n *Node) {
	for i, o := range g.Nodes {
		if o == n {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			return
		}
	}
}

// NewPlane returns a square of the given size centered on the
// origin in the XZ plane, facing +Y.
func NewPlane(size float32) *ring.Solid {
	h := size / 2
	sd := &ring.Solid{
		Vertex:   math32.ArrayF32{-h, 0, -h, -h, 0, h, h, 0, h, h, 0, -h},
		Normal:   math32.ArrayF32{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		TexCoord: math32.ArrayF32{0, 0, 0, 1, 1, 1, 1, 0},
		Index:    math32.ArrayU32{0, 1, 2, 0, 2, 3},
	}
	sd.BBox.SetEmpty()
	sd.BBox.ExpandByPoint(math32.Vec3(-h, 0, -h))
	sd.BBox.ExpandByPoint(math32.Vec3(h, 0, h))
	return sd
}
