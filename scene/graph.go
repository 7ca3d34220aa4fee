// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene assembles generated rings into a scene graph and manages
// their lifecycle: disposing and regenerating them when they go stale.
//
// The scene graph itself is provided by a rendering backend through
// the [Graph] and [Node] interfaces.
package scene

import (
	"github.com/ringrow/ringrow/ring"
)

// Graph is the scene graph of a rendering backend.
type Graph interface {

	// AddSolid adds a node named [ring.Ring.Name] holding the solid of the
	// given ring at its pose, with the given material, and returns it.
	AddSolid(r *ring.Ring, mat *Material) Node

	// AddPlane adds a square plane of the given size lying in the XZ
	// plane at y = 0, with the given material, and returns it.
	AddPlane(name string, size float32, mat *Material) Node

	// NodeByName returns the attached node with the given name,
	// or nil if there is none.
	NodeByName(name string) Node
}

// Node is a node in a [Graph].
type Node interface {

	// Name is the unique name of the node.
	Name() string

	// Geometry returns the geometry resources of the node, or nil.
	Geometry() Disposer

	// Materials returns the material resources of the node,
	// which may be one or several.
	Materials() []Disposer

	// Attached returns whether the node is in its graph.
	Attached() bool

	// Detach removes the node from its graph. It does nothing
	// if the node is already detached.
	Detach()
}

// Disposer is a resource that must be released exactly once.
// Dispose must be safe to call again after the first time.
type Disposer interface {
	Dispose()
}

// Dispose releases the geometry and all of the materials of the given
// node and then detaches it from its graph. A nil or already
// detached node is ignored, so disposing a node twice is harmless.
func Dispose(n Node) {
	if n == nil || !n.Attached() {
		return
	}
	if g := n.Geometry(); g != nil {
		g.Dispose()
	}
	for _, m := range n.Materials() {
		if m != nil {
			m.Dispose()
		}
	}
	n.Detach()
}
