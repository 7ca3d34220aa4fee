// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"cogentcore.org/core/xyz"
	"github.com/ringrow/ringrow/ring"
	"github.com/ringrow/ringrow/scene"
)

// Graph is a [scene.Graph] of [xyz.Solid]s in an [xyz.Scene].
//
// Meshes cannot be deleted from a live xyz scene one at a time, so
// released meshes are collected and all of the live ones are set
// again on the next [Graph.Flush].
type Graph struct {

	// Scene is the xyz scene that holds the solids.
	Scene *xyz.Scene

	nodes    map[string]*Node
	order    []*Node
	released int
}

// NewGraph returns a new Graph for the given scene.
func NewGraph(sc *xyz.Scene) *Graph {
	return &Graph{Scene: sc, nodes: map[string]*Node{}}
}

// Node is a solid in a [Graph].
type Node struct {

	// Solid is the xyz solid.
	Solid *xyz.Solid

	// Material is the shared material of the solid, which
	// is copied into the solid's own [xyz.Material] and copied
	// again by [Graph.SyncMaterials] when it changes.
	Material *scene.Material

	// applied is the value of Material last copied into Solid.
	applied scene.Material

	mesh     xyz.Mesh
	geom     *meshRef
	graph    *Graph
	attached bool
}

// meshRef is the geometry of a [Node]: its mesh in the scene.
type meshRef struct {
	graph    *Graph
	released bool
}

func (mr *meshRef) Dispose() {
	if mr.released {
		return
	}
	mr.released = true
	mr.graph.released++
}

func (n *Node) Name() string {
	return n.Solid.Name
}

func (n *Node) Geometry() scene.Disposer {
	return n.geom
}

func (n *Node) Materials() []scene.Disposer {
	if n.Material == nil {
		return nil
	}
	return []scene.Disposer{n.Material}
}

func (n *Node) Attached() bool {
	return n.attached
}

func (n *Node) Detach() {
	if !n.attached {
		return
	}
	n.attached = false
	g := n.graph
	if g.nodes[n.Name()] == n {
		delete(g.nodes, n.Name())
	}
	for i, o := range g.order {
		if o == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	n.Solid.Delete()
}

func (g *Graph) AddSolid(r *ring.Ring, mat *scene.Material) scene.Node {
	ms := &xyz.GenMesh{Vertex: r.Solid.Vertex, Normal: r.Solid.Normal, TexCoord: r.Solid.TexCoord, Index: r.Solid.Index}
	ms.Name = r.Name
	n := g.add(r.Name, ms, mat)
	n.Solid.Pose.Pos = r.Pose.Position
	n.Solid.Pose.Quat = r.Pose.Quat()
	return n
}

func (g *Graph) AddPlane(name string, size float32, mat *scene.Material) scene.Node {
	return g.add(name, xyz.NewPlane(g.Scene, name, size, size), mat)
}

func (g *Graph) add(name string, ms xyz.Mesh, mat *scene.Material) *Node {
	g.Scene.SetMesh(ms)
	sld := xyz.NewSolid(g.Scene)
	sld.SetName(name)
	sld.SetMesh(ms)
	n := &Node{Solid: sld, Material: mat, mesh: ms, graph: g, attached: true}
	n.applyMaterial()
	n.geom = &meshRef{graph: g}
	g.nodes[name] = n
	g.order = append(g.order, n)
	return n
}

// applyMaterial copies the values of Material into the solid.
func (n *Node) applyMaterial() {
	mat := n.Material
	if mat == nil {
		return
	}
	n.Solid.SetColor(mat.Color).SetShiny(mat.Shiny).SetReflective(mat.Reflective)
	n.Solid.Material.CullBack = !mat.DoubleSided
	n.applied = *mat
}

// materialChanged returns whether Material differs from what was last applied.
func (n *Node) materialChanged() bool {
	mat, ap := n.Material, &n.applied
	if mat == nil {
		return false
	}
	return mat.Color != ap.Color || mat.Shiny != ap.Shiny || mat.Reflective != ap.Reflective || mat.DoubleSided != ap.DoubleSided
}

// SyncMaterials copies every changed shared material into the solids
// that use it, so that all of the rings of a build change together.
// It returns the number of solids updated.
func (g *Graph) SyncMaterials() int {
	n := 0
	for _, nd := range g.order {
		if nd.materialChanged() {
			nd.applyMaterial()
			n++
		}
	}
	return n
}

// NodeByName finds the solid with the given name among the
// children of the scene, and returns its node.
func (g *Graph) NodeByName(name string) scene.Node {
	k := g.Scene.ChildByName(name, 0)
	if k == nil {
		return nil
	}
	n, ok := g.nodes[name]
	if !ok || k != n.Solid.This {
		return nil
	}
	return n
}

// Len returns the number of attached nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Flush drops the released meshes from the scene, if any,
// and returns whether it did.
func (g *Graph) Flush() bool {
	if g.released == 0 {
		return false
	}
	g.released = 0
	g.Scene.ResetMeshes()
	for _, n := range g.order {
		g.Scene.SetMesh(n.mesh)
	}
	g.Scene.Rebuild()
	return true
}
