// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenetest provides an in-memory [scene.Graph]
// that records what is added, disposed, and detached.
package scenetest

import (
	"github.com/ringrow/ringrow/ring"
	"github.com/ringrow/ringrow/scene"
)

// Resource is a fake geometry resource that counts its disposals.
type Resource struct {
	Disposed int
}

func (rs *Resource) Dispose() {
	rs.Disposed++
}

// Node is a node in a [Graph].
type Node struct {
	name string

	// Ring is the ring of a solid node, nil for a plane.
	Ring *ring.Ring

	// Size is the size of a plane node.
	Size float32

	// Geom is the geometry of the node.
	Geom *Resource

	// Mats are the materials of the node.
	Mats []scene.Disposer

	graph *Graph
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Geometry() scene.Disposer {
	return n.Geom
}

func (n *Node) Materials() []scene.Disposer {
	return n.Mats
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

// Graph is an in-memory scene graph.
type Graph struct {

	// Nodes are the attached nodes, in insertion order.
	Nodes []*Node

	// Added counts all of the nodes ever added.
	Added int

	// Detached are the nodes that have been detached, in order.
	Detached []*Node
}

// New returns a new empty Graph.
func New() *Graph {
	return &Graph{}
}

func (g *Graph) AddSolid(r *ring.Ring, mat *scene.Material) scene.Node {
	return g.add(&Node{name: r.Name, Ring: r, Geom: &Resource{}, Mats: []scene.Disposer{mat}})
}

func (g *Graph) AddPlane(name string, size float32, mat *scene.Material) scene.Node {
	return g.add(&Node{name: name, Size: size, Geom: &Resource{}, Mats: []scene.Disposer{mat}})
}

func (g *Graph) NodeByName(name string) scene.Node {
	if n := g.Node(name); n != nil {
		return n
	}
	return nil
}

// Node returns the attached node with the given name, or nil.
func (g *Graph) Node(name string) *Node {
	for _, n := range g.Nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

// RingNodes returns the attached nodes that hold rings.
func (g *Graph) RingNodes() []*Node {
	var rs []*Node
	for _, n := range g.Nodes {
		if n.Ring != nil {
			rs = append(rs, n)
		}
	}
	return rs
}

func (g *Graph) add(n *Node) *Node {
	n.graph = g
	g.Nodes = append(g.Nodes, n)
	g.Added++
	return n
}

func (g *Graph) remove(n *Node) {
	for i, o := range g.Nodes {
		if o == n {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			break
		}
	}
	g.Detached = append(g.Detached, n)
}
