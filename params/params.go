// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides the tunable parameters that drive
// the generation of a row of extruded polygon rings.
package params

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// MinSides is the smallest side count that still encloses an area.
const MinSides = 3

// Params are the parameters for generating rings. A single Params is
// shared by pointer between the GUI, which writes fields in place, and
// the render loop, which reads them every frame.
//
// The min, max, and step struct tags give the slider range of each field.
type Params struct {

	// Resolution is the number of rings.
	Resolution int `default:"15" min:"1" max:"30" step:"1"`

	// Sides is the number of sides of each ring polygon.
	Sides int `default:"6" min:"3" max:"12" step:"1"`

	// Radius is the base outer radius of each ring.
	Radius float32 `default:"1.8" min:"1" max:"5" step:"0.1"`

	// Depth is the extrusion thickness of each ring.
	Depth float32 `default:"0.2" min:"0.1" max:"2" step:"0.1"`

	// Distance is the gap between consecutive rings along the placement axis.
	Distance float32 `default:"0.9" min:"0" max:"2" step:"0.1"`

	// Frequency is the angular frequency of the radius and rotation modulation.
	Frequency float32 `default:"0.6" min:"0" max:"1" step:"0.1"`

	// Amplitude is the amplitude of the radius and rotation modulation.
	Amplitude float32 `default:"0.7" min:"0" max:"2" step:"0.1"`

	// Phase is the phase offset of the radius and rotation modulation.
	Phase float32 `default:"1.6" min:"0" max:"6.283185307179586" step:"0.1"`

	// Hole is the radial offset of the inner hole from the outer radius.
	Hole float32 `default:"0.2" min:"0" max:"1" step:"0.1"`
}

// New returns new Params set to their defaults.
func New() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// Defaults sets all fields from their default struct tags.
func (p *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(p))
}

// NumRings returns the number of rings to generate,
// treating a negative resolution as zero.
func (p *Params) NumRings() int {
	return max(p.Resolution, 0)
}

// NumSides returns the side count used for generation, which
// is never less than [MinSides] since nothing upstream guarantees it.
func (p *Params) NumSides() int {
	return max(p.Sides, MinSides)
}

// Slider is the range of one tunable field, as used to bind it to a slider.
type Slider struct {

	// Name is the field name.
	Name string

	// Value is a pointer to the field.
	Value any

	// Min, Max and Step are parsed from the struct tags.
	Min, Max, Step float32

	// Tag is the full struct tag of the field.
	Tag reflect.StructTag
}

// Sliders returns one [Slider] per field, in declaration order, each
// pointing into p so that a widget bound to it writes p in place.
func (p *Params) Sliders() []Slider {
	var sls []Slider
	reflectx.WalkFields(reflect.ValueOf(p).Elem(),
		func(parent reflect.Value, field reflect.StructField, value reflect.Value) bool {
			return true
		},
		func(parent reflect.Value, parentField *reflect.StructField, field reflect.StructField, value reflect.Value) {
			tags := reflectx.StructTags(field.Tag)
			sls = append(sls, Slider{
				Name:  field.Name,
				Value: value.Addr().Interface(),
				Min:   tagFloat(tags, "min"),
				Max:   tagFloat(tags, "max"),
				Step:  tagFloat(tags, "step"),
				Tag:   field.Tag,
			})
		})
	return sls
}

// Float returns the current value of the field as a float32.
func (sl *Slider) Float() float32 {
	return errors.Log1(reflectx.ToFloat32(reflectx.NonPointerValue(reflect.ValueOf(sl.Value)).Interface()))
}

// Validate returns an error naming every field that lies outside of
// its slider range. It does not modify p; generation tolerates any value.
func (p *Params) Validate() error {
	var errs []error
	for _, sl := range p.Sliders() {
		val := sl.Float()
		if val < sl.Min || val > sl.Max {
			errs = append(errs, fmt.Errorf("params: %s = %g is outside of [%g, %g]", sl.Name, val, sl.Min, sl.Max))
		}
	}
	return errors.Join(errs...)
}

// String returns a compact single-line summary for logging.
func (p *Params) String() string {
	return fmt.Sprintf("resolution=%d sides=%d radius=%g depth=%g distance=%g frequency=%g amplitude=%g phase=%g hole=%g",
		p.Resolution, p.Sides, p.Radius, p.Depth, p.Distance, p.Frequency, p.Amplitude, p.Phase, p.Hole)
}

func tagFloat(tags map[string]string, key string) float32 {
	v, ok := tags[key]
	if !ok {
		return 0
	}
	return errors.Log1(reflectx.ToFloat32(v))
}
