// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"github.com/ringrow/ringrow/orbit"
	"github.com/ringrow/ringrow/params"
	"github.com/ringrow/ringrow/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topDown(y float32, up math32.Vector3) *orbit.Camera {
	cm := orbit.NewCamera()
	cm.FOV = 90
	cm.Position = math32.Vec3(0, y, 0)
	cm.LookAt(math32.Vector3{}, up)
	return cm
}

func countColor(rn *Renderer, c color.RGBA) int {
	n := 0
	b := rn.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rn.Image().RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRenderEmpty(t *testing.T) {
	rn := NewRenderer(NewGraph(), orbit.NewCamera(), 32, 24)
	rn.Render()
	assert.Equal(t, 32*24, countColor(rn, rn.Background))
	assert.Equal(t, 1, rn.Frames)
}

func TestRenderPlane(t *testing.T) {
	g := NewGraph()
	g.AddPlane("ground", 2, scene.NewGroundMaterial())
	rn := NewRenderer(g, topDown(10, math32.Vec3(0, 0, -1)), 100, 100)
	rn.Render()

	gray := color.RGBA{0x66, 0x66, 0x66, 0xff}
	assert.Equal(t, gray, rn.Image().RGBAAt(52, 47))
	assert.Equal(t, rn.Background, rn.Image().RGBAAt(0, 0))
	assert.Equal(t, rn.Background, rn.Image().RGBAAt(99, 99))
	// the plane spans 10 pixels each way, less the antialiased diagonal
	assert.InDelta(t, 100, countColor(rn, gray), 25)

	rn.Lights.Directional = 0
	rn.Render()
	assert.Equal(t, color.RGBA{51, 51, 51, 0xff}, rn.Image().RGBAAt(52, 47))
}

func TestRenderBackFaces(t *testing.T) {
	g := NewGraph()
	single := g.AddPlane("single", 2, scene.NewRingMaterial())
	rn := NewRenderer(g, topDown(-10, math32.Vec3(0, 0, 1)), 100, 100)
	rn.Render()
	assert.Equal(t, 100*100, countColor(rn, rn.Background), "single sided planes are culled from behind")

	scene.Dispose(single)
	g.AddPlane("double", 2, scene.NewGroundMaterial())
	rn.Render()
	assert.Equal(t, color.RGBA{51, 51, 51, 0xff}, rn.Image().RGBAAt(52, 52))
}

func TestRenderDisposed(t *testing.T) {
	g := NewGraph()
	n := g.AddPlane("ground", 2, scene.NewGroundMaterial())
	rn := NewRenderer(g, topDown(10, math32.Vec3(0, 0, -1)), 50, 50)
	scene.Dispose(n)
	assert.True(t, n.(*Node).Geom.Released())
	assert.Nil(t, g.NodeByName("ground"))
	rn.Render()
	assert.Equal(t, 50*50, countColor(rn, rn.Background))
}

func TestDisposeNilMaterial(t *testing.T) {
	g := NewGraph()
	n := g.AddPlane("bare", 2, nil)
	assert.Empty(t, n.Materials())
	rn := NewRenderer(g, topDown(10, math32.Vec3(0, 0, -1)), 50, 50)
	rn.Render()
	assert.Equal(t, 50*50, countColor(rn, rn.Background))
	assert.NotPanics(t, func() { scene.Dispose(n) })
	assert.True(t, n.(*Node).Geom.Released())
}

func TestRenderScene(t *testing.T) {
	g := NewGraph()
	lc := scene.NewLifecycle(params.New(), g)
	lc.Rebuild()
	require.Len(t, g.Nodes, 16)

	rn := NewRenderer(g, orbit.NewCamera(), 160, 120)
	rn.Render()
	img := rn.Image()
	assert.Equal(t, rn.Background, img.RGBAAt(80, 1))

	gray := color.RGBA{0x66, 0x66, 0x66, 0xff}
	bottom := 0
	for x := range 160 {
		if img.RGBAAt(x, 119) == gray {
			bottom++
		}
	}
	assert.GreaterOrEqual(t, bottom, 150)

	lit := 0
	for y := range 120 {
		for x := range 160 {
			c := img.RGBAAt(x, y)
			if c.R >= 120 && c.R == c.G && c.G == c.B {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 100, "rings are drawn")
}

func TestResize(t *testing.T) {
	cm := orbit.NewCamera()
	rn := NewRenderer(NewGraph(), cm, 10, 10)
	assert.Equal(t, float32(1), cm.Aspect)
	rn.Resize(40, 20)
	assert.Equal(t, 40, rn.Image().Bounds().Dx())
	assert.Equal(t, 20, rn.Image().Bounds().Dy())
	assert.Equal(t, float32(2), cm.Aspect)
	rn.Resize(0, 0)
	assert.Equal(t, 1, rn.Image().Bounds().Dx())
}

func TestSave(t *testing.T) {
	g := NewGraph()
	g.AddPlane("ground", 2, scene.NewGroundMaterial())
	rn := NewRenderer(g, topDown(10, math32.Vec3(0, 0, -1)), 20, 20)
	rn.Render()
	fn := filepath.Join(t.TempDir(), "snapshot.png")
	require.NoError(t, rn.Save(fn))
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, rn.Image().Bounds(), img.Bounds())

	assert.Error(t, rn.Save(filepath.Join(t.TempDir(), "missing", "snapshot.png")))
}

func TestClip(t *testing.T) {
	tri := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0), math32.Vec3(0, 2, 0)}
	pl := plane{Normal: math32.Vec3(-1, 0, 0), Offset: 1}
	poly := pl.clip(tri)
	assert.Equal(t, []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 2, 0),
	}, poly)

	assert.Nil(t, plane{Normal: math32.Vec3(1, 0, 0), Offset: -5}.clip(tri))
	assert.Equal(t, tri, plane{Normal: math32.Vec3(1, 0, 0), Offset: 5}.clip(tri))
	assert.Nil(t, clipAll(tri, pl, plane{Normal: math32.Vec3(0, 1, 0), Offset: -3}))
}

func TestPlaneMesh(t *testing.T) {
	sd := NewPlane(4)
	assert.Equal(t, 4, sd.NumVertex())
	assert.Equal(t, 2, sd.NumTriangles())
	for tri := range sd.NumTriangles() {
		a, b, c := sd.Triangle(tri)
		pa := sd.Position(a)
		face := sd.Position(b).Sub(pa).Cross(sd.Position(c).Sub(pa))
		assert.Greater(t, face.Y, float32(0))
	}
	assert.Equal(t, math32.Vec3(2, 0, 2), sd.BBox.Max)
}
