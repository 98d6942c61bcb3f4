package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotOrthogonal is returned by [Model.Validate] when a beam's
	// endpoints differ in more than one horizontal axis, or differ in
	// elevation, beyond the tolerance.
	ErrNotOrthogonal = errors.New("beam endpoints not axis-aligned")

	// ErrColumnNotVertical is returned by [Model.Validate] when a column's
	// endpoints differ horizontally or do not span exactly one level.
	ErrColumnNotVertical = errors.New("column endpoints not vertically stacked")

	// ErrCantileverAtBase is returned by [Model.Validate] when a
	// cantilever-footprint node exists at level 0. Cantilevers start at the
	// first elevated level so they cannot interfere with foundation restraints.
	ErrCantileverAtBase = errors.New("cantilever node at base level")

	// ErrRestraintMismatch is returned by [Model.Validate] when the number of
	// fixed nodes differs from the number of core nodes at level 0. An
	// under-restrained model is numerically unstable downstream, so this is
	// checked as a hard failure.
	ErrRestraintMismatch = errors.New("restraint count does not match base core nodes")
)

// Validate re-checks the structural invariants of a populated model against
// the tolerance eps:
//
//  1. Every element endpoint exists (guaranteed by AddElement, re-checked).
//  2. Columns differ only in level; beams differ in exactly one horizontal
//     axis and not in elevation.
//  3. No cantilever node exists at level 0.
//  4. Fixed-node count equals core-node count at level 0.
//
// Generation enforces these as it runs; Validate exists so a model that was
// decoded from a cache entry or assembled by hand gets the same guarantees.
func (m *Model) Validate(eps float64) error {
	for _, e := range m.elements {
		a, okA := m.Node(e.NodeI)
		b, okB := m.Node(e.NodeJ)
		if !okA || !okB {
			return fmt.Errorf("%w: element %d", ErrUnknownNode, e.Tag)
		}
		dx := math.Abs(a.X - b.X)
		dy := math.Abs(a.Y - b.Y)
		dz := math.Abs(a.Z - b.Z)

		if e.Class == ClassColumn {
			if dx > eps || dy > eps || b.Level-a.Level != 1 {
				return fmt.Errorf("%w: element %d (levels %d→%d)", ErrColumnNotVertical, e.Tag, a.Level, b.Level)
			}
			continue
		}
		if dz > eps {
			return fmt.Errorf("%w: element %d inclined by %g", ErrNotOrthogonal, e.Tag, dz)
		}
		if (dx > eps) == (dy > eps) {
			return fmt.Errorf("%w: element %d (Δx=%g Δy=%g)", ErrNotOrthogonal, e.Tag, dx, dy)
		}
	}

	var base, fixed int
	for _, n := range m.nodes {
		if n.Level == 0 {
			if n.Footprint == FootprintCantilever {
				return fmt.Errorf("%w: node %d", ErrCantileverAtBase, n.Tag)
			}
			base++
		}
		if n.Fixed {
			fixed++
		}
	}
	if fixed != base {
		return fmt.Errorf("%w: %d fixed, %d base core nodes", ErrRestraintMismatch, fixed, base)
	}
	return nil
}
