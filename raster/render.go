// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/orbit"
	"github.com/ringrow/ringrow/scene"
	"golang.org/x/image/vector"
)

// Renderer draws a [Graph] as seen from a camera into an image.
//
// It is a painter's renderer: planes are drawn under everything else,
// then faces are drawn from far to near. The parts of solids on the
// far side of the ground (y = 0) from the camera are not drawn.
type Renderer struct {

	// Graph is the scene graph that is drawn.
	Graph *Graph

	// Camera is the camera.
	Camera *orbit.Camera

	// Lights light the scene.
	Lights scene.Lights

	// Background is the color of empty space.
	Background color.RGBA

	// Frames is the number of frames rendered.
	Frames int

	image *image.RGBA
	ras   *vector.Rasterizer
	faces []face
}

// face is a triangle clipped and projected to pixels.
type face struct {
	points []math32.Vector2
	depth  float32
	color  color.RGBA
	under  bool
}

// NewRenderer returns a new renderer of the given size.
func NewRenderer(g *Graph, cm *orbit.Camera, width, height int) *Renderer {
	rn := &Renderer{Graph: g, Camera: cm, Background: colors.FromRGB(0x10, 0x10, 0x18)}
	rn.Lights.Defaults()
	rn.ras = &vector.Rasterizer{}
	rn.Resize(width, height)
	return rn
}

// Image returns the rendered image.
func (rn *Renderer) Image() *image.RGBA {
	return rn.image
}

// Resize sets the image size and updates the camera projection.
func (rn *Renderer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	rn.image = image.NewRGBA(image.Rect(0, 0, width, height))
	rn.Camera.SetAspect(width, height)
	rn.Camera.UpdateProjection()
}

// Render draws the current graph into the image.
func (rn *Renderer) Render() {
	draw.Draw(rn.image, rn.image.Bounds(), image.NewUniform(rn.Background), image.Point{}, draw.Src)
	rn.faces = rn.faces[:0]
	groundSide := float32(1)
	if rn.Camera.Position.Y < 0 {
		groundSide = -1
	}
	for _, n := range rn.Graph.Nodes {
		if n.Geom == nil || n.Geom.Released() || n.Material == nil {
			continue
		}
		rn.addFaces(n, groundSide)
	}
	slices.SortStableFunc(rn.faces, func(a, b face) int {
		switch {
		case a.under != b.under:
			if a.under {
				return -1
			}
			return 1
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for i := range rn.faces {
		rn.fill(&rn.faces[i])
	}
	rn.Frames++
}

func (rn *Renderer) addFaces(n *Node, groundSide float32) {
	cm := rn.Camera
	sd := n.Geom.Solid
	sz := rn.image.Bounds().Size()
	w, h := float32(sz.X), float32(sz.Y)
	view := []plane{
		{Normal: math32.Vec3(0, 0, -1), Offset: -cm.Near},
		{Normal: math32.Vec3(0, 0, 1), Offset: cm.Far},
	}
	screen := []plane{
		{Normal: math32.Vec3(1, 0, 0)},
		{Normal: math32.Vec3(-1, 0, 0), Offset: w},
		{Normal: math32.Vec3(0, 1, 0)},
		{Normal: math32.Vec3(0, -1, 0), Offset: h},
	}
	ground := plane{Normal: math32.Vec3(0, groundSide, 0)}

	for t := range sd.NumTriangles() {
		a, b, c := sd.Triangle(t)
		tri := []math32.Vector3{
			n.Pose.Transform(sd.Position(a)),
			n.Pose.Transform(sd.Position(b)),
			n.Pose.Transform(sd.Position(c)),
		}
		nrm := n.Pose.Rotate(sd.NormalAt(a))
		centroid := tri[0].Add(tri[1]).Add(tri[2]).DivScalar(3)
		if nrm.Dot(cm.Position.Sub(centroid)) <= 0 {
			if !n.Material.DoubleSided {
				continue
			}
			nrm = nrm.Negate()
		}
		poly := tri
		if !n.Plane {
			poly = ground.clip(poly)
		}
		for i, p := range poly {
			poly[i] = cm.ToView(p)
		}
		poly = clipAll(poly, view...)
		if poly == nil {
			continue
		}
		var depth float32
		for i, v := range poly {
			depth -= v.Z
			ndc := cm.ProjectView(v)
			poly[i] = math32.Vec3((ndc.X+1)/2*w, (1-ndc.Y)/2*h, 0)
		}
		depth /= float32(len(poly))
		poly = clipAll(poly, screen...)
		if poly == nil {
			continue
		}
		pts := make([]math32.Vector2, len(poly))
		for i, p := range poly {
			pts[i] = math32.Vec2(p.X, p.Y)
		}
		rn.faces = append(rn.faces, face{points: pts, depth: depth, color: shade(n.Material.Color, rn.Lights.Shade(nrm)), under: n.Plane})
	}
}

// fill rasterizes the face over its pixel bounding box only.
func (rn *Renderer) fill(f *face) {
	bb := math32.B2Empty()
	for _, p := range f.points {
		bb.ExpandByPoint(p)
	}
	r := image.Rect(int(math32.Floor(bb.Min.X)), int(math32.Floor(bb.Min.Y)),
		int(math32.Ceil(bb.Max.X)), int(math32.Ceil(bb.Max.Y))).Intersect(rn.image.Bounds())
	if r.Empty() {
		return
	}
	off := math32.Vec2(float32(r.Min.X), float32(r.Min.Y))
	rn.ras.Reset(r.Dx(), r.Dy())
	for i, p := range f.points {
		p = p.Sub(off)
		if i == 0 {
			rn.ras.MoveTo(p.X, p.Y)
		} else {
			rn.ras.LineTo(p.X, p.Y)
		}
	}
	rn.ras.ClosePath()
	rn.ras.Draw(rn.image, r, image.NewUniform(f.color), image.Point{})
}

func shade(c color.RGBA, s float32) color.RGBA {
	sc := func(v uint8) uint8 {
		return uint8(math32.Round(float32(v) * s))
	}
	return color.RGBA{sc(c.R), sc(c.G), sc(c.B), c.A}
}

// Save saves the last rendered image to the given file,
// in the format given by its extension.
func (rn *Renderer) Save(filename string) error {
	if err := imagex.Save(rn.image, filename); err != nil {
		return fmt.Errorf("raster: saving %s: %w", filename, err)
	}
	slog.Info("saved snapshot", "file", filename, "size", rn.image.Bounds().Size(), "frames", rn.Frames)
	return nil
}
