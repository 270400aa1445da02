// Package graphics implements the external rendering-collaborator
// interfaces: a single back-pointer slot per component
// (RegisterGraphic/GetGraphic) and a shape registry
// (SetComponentShape/GetComponentShape). No actual 2-D drawing
// happens here — the package is a pure data registry, grounded on
// original_source/eda/componentshape.h/.cpp and
// interface/vsrtl_parameter.h, matching those files' own lack of a
// rendering-library dependency.
package graphics

import (
	"fmt"
	"strings"

	"github.com/sarchlab/vsrtl/circuit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders a type tag's Title Case display form, replacing
// the deprecated strings.Title the same way core/emu.go's toTitleCase
// helper does for CGRA direction names.
var titleCaser = cases.Title(language.English)

// DisplayName returns typeTag's Title Case form for a renderer's
// on-screen label (e.g. "multiplexer" -> "Multiplexer"), regardless of
// how the tag was cased when registered.
func DisplayName(typeTag string) string {
	return titleCaser.String(strings.ToLower(typeTag))
}

// Shape is a caller-supplied function that produces a 2-D outline for
// a component, parameterized by an arbitrary transform value whose
// meaning belongs entirely to the renderer (a *graphics.Transform
// type never appears in this package).
type Shape func(transform interface{}) interface{}

// Registry holds the single graphics back-pointer per
// *circuit.Component and the shape function registered per type tag.
// Create one with NewRegistry: the zero value's maps are nil, so
// registering a graphic or a shape into it panics.
type Registry struct {
	graphics map[*circuit.Component]interface{}
	shapes   map[string]Shape
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		graphics: map[*circuit.Component]interface{}{},
		shapes:   map[string]Shape{},
	}
}

// RegisterGraphic attaches opaquePtr as c's single graphics
// back-pointer. It is an error to call this twice for the same
// component: the second call returns a DoubleGraphicRegister error and
// leaves the first pointer in place.
func (r *Registry) RegisterGraphic(c *circuit.Component, opaquePtr interface{}) error {
	if _, exists := r.graphics[c]; exists {
		return &circuit.Error{
			Kind:    circuit.DoubleGraphicRegister,
			Subject: c.Name(),
			Detail:  "graphics back-pointer already set",
		}
	}
	r.graphics[c] = opaquePtr
	return nil
}

// GetGraphic returns c's registered back-pointer, or nil if none was
// registered.
func (r *Registry) GetGraphic(c *circuit.Component) interface{} {
	return r.graphics[c]
}

// SetComponentShape registers the outline function for components
// tagged typeTag (conventionally a primitive's constructor name, e.g.
// "Adder", "Multiplexer").
func (r *Registry) SetComponentShape(typeTag string, shape Shape) {
	r.shapes[typeTag] = shape
}

// GetComponentShape looks up the outline function for typeTag and
// evaluates it against transform. It panics if no shape was
// registered for typeTag, since a renderer calling this for an
// unregistered type is a construction-time wiring defect, not a
// recoverable condition.
func (r *Registry) GetComponentShape(typeTag string, transform interface{}) interface{} {
	shape, ok := r.shapes[typeTag]
	if !ok {
		panic(fmt.Sprintf("graphics: no shape registered for %q", typeTag))
	}
	return shape(transform)
}

// RegisterDefaultShapes installs a stub outline function for every
// primitive in the circuit/ops library, so a concrete renderer always
// has something to call out of the box. Each default shape simply
// returns its typeTag and transform as a (label, transform) pair;
// real outline geometry is a renderer's responsibility. Grounded on
// original_source/eda/componentshape.cpp's per-type shape dispatch
// table.
func (r *Registry) RegisterDefaultShapes() {
	for _, tag := range []string{
		"Adder", "Subtractor", "And", "Or", "Xor", "Not", "Neg",
		"Shl", "Shr", "Dshl", "Dshr", "Shift",
		"Div", "Mod", "Mul",
		"Pad", "Cvt", "BitExtr",
		"Multiplexer", "Collator", "Decollator",
		"RegisterFile", "Register",
	} {
		tag := tag
		r.SetComponentShape(tag, func(transform interface{}) interface{} {
			return struct {
				Tag         string
				DisplayName string
				Transform   interface{}
			}{Tag: tag, DisplayName: DisplayName(tag), Transform: transform}
		})
	}
}
