// Package materialize applies a generated structural model to an external
// finite-element engine through its primitive surface: section, node, fixity
// and element declarations.
//
// Generation never touches an Engine. The generator produces a data-only
// model; Apply walks it in tag order, so the engine sees the exact creation
// sequence and two runs with the same model make identical calls.
package materialize

import (
	"errors"
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/model"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// ErrSectionMissing is returned by Apply when an element references a
// section group the registry does not define.
var ErrSectionMissing = errors.New("element references undefined section")

// Geometric transformation tags for the engine's frame elements.
const (
	TransfColumn = 1 // local axes for vertical members
	TransfBeamX  = 2 // local axes for members spanning X
	TransfBeamY  = 3 // local axes for members spanning Y
)

// Engine is the solving engine's primitive surface. Implementations wrap a
// concrete FE library; tests use [Recorder].
type Engine interface {
	Section(tag int, p section.Properties) error
	GeomTransf(tag int) error
	Node(tag model.NodeTag, x, y, z float64) error
	Fix(tag model.NodeTag) error
	Element(tag model.ElementTag, i, j model.NodeTag, sectionTag, transfTag int) error
}

// Counts summarizes what Apply declared.
type Counts struct {
	Sections int
	Nodes    int
	Fixed    int
	Elements int
}

// Apply declares the model on the engine: sections and transformations
// first, then nodes, fixities, and elements in tag order. The first engine
// error aborts the walk.
func Apply(m *model.Model, sections *section.Registry, eng Engine) (Counts, error) {
	var c Counts

	for _, tag := range sections.Tags() {
		p, _ := sections.Lookup(tag)
		if err := eng.Section(tag, p); err != nil {
			return c, fmt.Errorf("section %d: %w", tag, err)
		}
		c.Sections++
	}
	for _, t := range []int{TransfColumn, TransfBeamX, TransfBeamY} {
		if err := eng.GeomTransf(t); err != nil {
			return c, fmt.Errorf("transformation %d: %w", t, err)
		}
	}

	for _, n := range m.Nodes() {
		if err := eng.Node(n.Tag, n.X, n.Y, n.Z); err != nil {
			return c, fmt.Errorf("node %d: %w", n.Tag, err)
		}
		c.Nodes++
	}
	for _, n := range m.Nodes() {
		if !n.Fixed {
			continue
		}
		if err := eng.Fix(n.Tag); err != nil {
			return c, fmt.Errorf("fix node %d: %w", n.Tag, err)
		}
		c.Fixed++
	}

	for _, e := range m.Elements() {
		if !sections.Has(e.SectionGroup) {
			return c, fmt.Errorf("%w: element %d group %d", ErrSectionMissing, e.Tag, e.SectionGroup)
		}
		if err := eng.Element(e.Tag, e.NodeI, e.NodeJ, e.SectionGroup, transfFor(m, e)); err != nil {
			return c, fmt.Errorf("element %d: %w", e.Tag, err)
		}
		c.Elements++
	}
	return c, nil
}

// transfFor picks the geometric transformation for an element. Columns map
// directly; for beams the span direction decides, which also covers the
// cantilever connectors and borders whose direction depends on the side.
func transfFor(m *model.Model, e model.Element) int {
	if e.Class == model.ClassColumn {
		return TransfColumn
	}
	a, _ := m.Node(e.NodeI)
	b, _ := m.Node(e.NodeJ)
	if dx, dy := b.X-a.X, b.Y-a.Y; dx*dx < dy*dy {
		return TransfBeamY
	}
	return TransfBeamX
}
