// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/ringrow/ringrow/ring"
)

const (
	// GroundName is the name of the ground plane node.
	GroundName = "ground"

	// GroundSize is the width and length of the ground plane.
	GroundSize = 500
)

// Assembler places rings into a [Graph], along with
// a ground plane that is added once and never removed.
type Assembler struct {

	// Graph is the scene graph to add nodes to.
	Graph Graph

	// Ground is the ground plane node, set on the first call to Assemble.
	Ground Node
}

// NewAssembler returns a new Assembler for the given graph.
func NewAssembler(g Graph) *Assembler {
	return &Assembler{Graph: g}
}

// Assemble adds a node for each of the given rings, in order,
// all sharing the given material, and returns the nodes in the same
// order. The first call also adds the ground plane.
func (as *Assembler) Assemble(rings []*ring.Ring, mat *Material) []Node {
	nodes := make([]Node, len(rings))
	for i, r := range rings {
		nodes[i] = as.Graph.AddSolid(r, mat)
	}
	if as.Ground == nil {
		as.Ground = as.Graph.AddPlane(GroundName, GroundSize, NewGroundMaterial())
	}
	return nodes
}
