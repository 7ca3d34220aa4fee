// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"cogentcore.org/core/base/reflectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := New()
	assert.Equal(t, 15, p.Resolution)
	assert.Equal(t, 6, p.Sides)
	assert.Equal(t, float32(1.8), p.Radius)
	assert.Equal(t, float32(0.2), p.Depth)
	assert.Equal(t, float32(0.9), p.Distance)
	assert.Equal(t, float32(0.6), p.Frequency)
	assert.Equal(t, float32(0.7), p.Amplitude)
	assert.Equal(t, float32(1.6), p.Phase)
	assert.Equal(t, float32(0.2), p.Hole)
	assert.NoError(t, p.Validate())
}

func TestNumSides(t *testing.T) {
	p := New()
	p.Sides = 2
	assert.Equal(t, MinSides, p.NumSides())
	p.Sides = -4
	assert.Equal(t, MinSides, p.NumSides())
	p.Sides = 9
	assert.Equal(t, 9, p.NumSides())
}

func TestNumRings(t *testing.T) {
	p := New()
	p.Resolution = -1
	assert.Equal(t, 0, p.NumRings())
	p.Resolution = 8
	assert.Equal(t, 8, p.NumRings())
}

func TestSliders(t *testing.T) {
	p := New()
	sls := p.Sliders()
	require.Len(t, sls, 9)

	names := make([]string, len(sls))
	for i, sl := range sls {
		names[i] = sl.Name
	}
	assert.Equal(t, []string{"Resolution", "Sides", "Radius", "Depth", "Distance", "Frequency", "Amplitude", "Phase", "Hole"}, names)

	res := sls[0]
	assert.Equal(t, float32(1), res.Min)
	assert.Equal(t, float32(30), res.Max)
	assert.Equal(t, float32(1), res.Step)
	assert.Equal(t, "1", res.Tag.Get("min"))

	rad := sls[2]
	assert.Equal(t, float32(1), rad.Min)
	assert.Equal(t, float32(5), rad.Max)
	assert.InDelta(t, 0.1, rad.Step, 1e-6)
}

func TestSlidersWriteInPlace(t *testing.T) {
	p := New()
	sls := p.Sliders()

	*(sls[0].Value.(*int)) = 8
	*(sls[2].Value.(*float32)) = 3.5
	assert.Equal(t, 8, p.Resolution)
	assert.Equal(t, float32(3.5), p.Radius)
	assert.Equal(t, float32(8), sls[0].Float())
	assert.Equal(t, float32(3.5), sls[2].Float())
}

func TestSliderTags(t *testing.T) {
	sls := New().Sliders()
	phase := sls[7]
	assert.Equal(t, "Phase", phase.Name)
	assert.InDelta(t, 6.2831853, phase.Max, 1e-5)
	assert.Equal(t, "1.6", phase.Tag.Get("default"))
	assert.InDelta(t, 1.6, phase.Float(), 1e-6)

	tags := reflectx.StructTags(`min:"0.5" step:"x"`)
	assert.Equal(t, float32(0.5), tagFloat(tags, "min"))
	assert.Equal(t, float32(0), tagFloat(tags, "max"))
	assert.Equal(t, float32(0), tagFloat(tags, "step"))
}

func TestValidate(t *testing.T) {
	p := New()
	p.Sides = 2
	p.Hole = 1.5
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sides")
	assert.Contains(t, err.Error(), "Hole")
	assert.NotContains(t, err.Error(), "Radius")
	assert.Equal(t, 2, p.Sides, "Validate must not modify")
}

func TestString(t *testing.T) {
	p := &Params{Resolution: 3, Sides: 4, Radius: 2, Depth: 0.2, Distance: 0.5}
	assert.Equal(t, "resolution=3 sides=4 radius=2 depth=0.2 distance=0.5 frequency=0 amplitude=0 phase=0 hole=0", p.String())
}
