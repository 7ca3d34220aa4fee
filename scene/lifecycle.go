// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/ringrow/ringrow/params"
	"github.com/ringrow/ringrow/ring"
)

// Lifecycle owns the current set of rings and their nodes. It disposes
// and regenerates the whole set when it goes stale; rings are never
// updated in place.
//
// Only the resolution and the side count are checked for staleness.
// The other parameters take effect at the next rebuild.
type Lifecycle struct {

	// Params are the shared parameters, read on every check.
	Params *params.Params

	// Graph is the scene graph holding the ring nodes.
	Graph Graph

	// Assembler adds rings and the ground plane to Graph.
	Assembler *Assembler

	// Rebuilds is the number of builds done so far.
	Rebuilds int

	// rings is the current set, mirrored 1:1 by nodes in Graph.
	rings []*ring.Ring

	// material is shared by all of the current rings.
	material *Material

	// resolution is the Params.Resolution of the current set.
	resolution int
}

// NewLifecycle returns a new Lifecycle for the given parameters and graph.
// Nothing is built until [Lifecycle.Rebuild] or [Lifecycle.RebuildIfStale].
func NewLifecycle(p *params.Params, g Graph) *Lifecycle {
	return &Lifecycle{Params: p, Graph: g, Assembler: NewAssembler(g)}
}

// Rings returns the current rings in index order.
func (lc *Lifecycle) Rings() []*ring.Ring {
	return lc.rings
}

// Material returns the material shared by the current rings.
func (lc *Lifecycle) Material() *Material {
	return lc.material
}

// Stale returns whether the current rings no longer match the
// parameters: the resolution changed since the last build, or the first
// ring has a different side count. Other parameters are not checked.
func (lc *Lifecycle) Stale() bool {
	return lc.staleReason() != ""
}

func (lc *Lifecycle) staleReason() string {
	if lc.resolution != lc.Params.Resolution {
		return "resolution"
	}
	if len(lc.rings) == 0 {
		if lc.Params.NumRings() > 0 {
			return "empty"
		}
		return ""
	}
	if lc.rings[0].Sides != lc.Params.NumSides() {
		return "sides"
	}
	return ""
}

// RebuildIfStale rebuilds the rings if they are [Lifecycle.Stale],
// and returns whether it did.
func (lc *Lifecycle) RebuildIfStale() bool {
	reason := lc.staleReason()
	if reason == "" {
		return false
	}
	lc.rebuild(reason)
	return true
}

// Rebuild disposes all of the current rings and generates and
// assembles a new set from the current parameters.
func (lc *Lifecycle) Rebuild() {
	lc.rebuild("explicit")
}

func (lc *Lifecycle) rebuild(reason string) {
	lc.Teardown()
	lc.resolution = lc.Params.Resolution
	lc.material = NewRingMaterial()
	lc.rings = ring.GenerateAll(lc.Params)
	lc.Assembler.Assemble(lc.rings, lc.material)
	lc.Rebuilds++
	slog.Debug("rebuilt rings", "reason", reason, "count", len(lc.rings), "sides", lc.Params.NumSides(), "rebuilds", lc.Rebuilds)
}

// Teardown disposes the node of every current ring, finding each
// by name in the graph, and clears the set.
func (lc *Lifecycle) Teardown() {
	for _, r := range lc.rings {
		Dispose(lc.Graph.NodeByName(r.Name))
	}
	lc.rings = nil
	lc.material = nil
}
