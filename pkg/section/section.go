// Package section provides cross-section property math, a material catalog,
// and the column-section grouping policies used by the lattice generator.
package section

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a section dimension is not positive
	// or falls outside the practical range for the section type.
	ErrInvalidDimension = errors.New("invalid section dimension")

	// ErrGroupUndefined is returned by [GroupPolicy.GroupFor] when the custom
	// grouping scheme produces a group id with no supplied dimensions. This is
	// fatal: a column cannot be created without a section.
	ErrGroupUndefined = errors.New("column section group has no dimensions")

	// ErrConflictingDefinition is returned by [Registry.Define] when a tag is
	// redefined with different properties. Defining the same properties twice
	// is an observable no-op, never a silent failure.
	ErrConflictingDefinition = errors.New("conflicting section definition")
)

// Properties holds the elastic section constants a frame element needs.
type Properties struct {
	A  float64 // cross-sectional area
	Iz float64 // moment of inertia about the strong axis
	Iy float64 // moment of inertia about the weak axis
	J  float64 // torsional constant
}

// Rectangular computes the properties of a b×h rectangle. The torsional
// constant uses the Iz+Iy approximation the frame model works with.
func Rectangular(b, h float64) (Properties, error) {
	if b <= 0 || h <= 0 {
		return Properties{}, fmt.Errorf("%w: %gx%g rectangle", ErrInvalidDimension, b, h)
	}
	iz := b * h * h * h / 12
	iy := h * b * b * b / 12
	return Properties{
		A:  b * h,
		Iz: iz,
		Iy: iy,
		J:  iz + iy,
	}, nil
}

// Circular computes the properties of a solid circle of diameter d.
func Circular(d float64) (Properties, error) {
	if d <= 0 {
		return Properties{}, fmt.Errorf("%w: diameter %g", ErrInvalidDimension, d)
	}
	r := d / 2
	i := math.Pi * math.Pow(r, 4) / 4
	return Properties{
		A:  math.Pi * r * r,
		Iz: i,
		Iy: i,
		J:  math.Pi * math.Pow(r, 4) / 2,
	}, nil
}

// Material describes an elastic material.
type Material struct {
	Name    string
	E       float64 // modulus of elasticity, kN/m²
	G       float64 // shear modulus, kN/m²
	Nu      float64 // Poisson's ratio
	Density float64 // kg/m³
}

// Concrete grades commonly used for the frame; E in kN/m².
var (
	ConcreteF21 = Material{Name: "concrete f'c=21MPa", E: 21538106, G: 8974211, Nu: 0.2, Density: 2400}
	ConcreteF25 = Material{Name: "concrete f'c=25MPa", E: 25000000, G: 10416667, Nu: 0.2, Density: 2400}
	ConcreteF28 = Material{Name: "concrete f'c=28MPa", E: 24870062, G: 10362526, Nu: 0.2, Density: 2400}
)

// Materials returns the predefined material catalog keyed by name.
func Materials() map[string]Material {
	return map[string]Material{
		ConcreteF21.Name: ConcreteF21,
		ConcreteF25.Name: ConcreteF25,
		ConcreteF28.Name: ConcreteF28,
	}
}
