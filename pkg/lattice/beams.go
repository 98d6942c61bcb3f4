package lattice

import (
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/model"
)

// SectionGroupBeam is the section group shared by all main beams.
const SectionGroupBeam = 0

// connectBeams creates the horizontal elements for every elevated level:
// main beams along X and Y inside the core footprint, then the connector and
// border beams of each active cantilever. Every candidate pair passes the
// orthogonality check before an element is created.
func (r *run) connectBeams() {
	for k := 1; k < r.ax.levels(); k++ {
		r.mainBeamsX(k)
		r.mainBeamsY(k)
		r.frontCantilever(k)
		r.rightCantilever(k)
		r.leftCantilever(k)
	}
}

func (r *run) mainBeamsX(k int) {
	for cj := 0; cj <= r.ax.ny; cj++ {
		j := r.ax.coreRow(cj)
		for i := 0; i < r.ax.nx; i++ {
			r.addBeam(model.ClassBeamX, SectionGroupBeam, true,
				model.Index{I: i, J: j, K: k},
				model.Index{I: i + 1, J: j, K: k})
		}
	}
}

func (r *run) mainBeamsY(k int) {
	for i := 0; i <= r.ax.nx; i++ {
		for cj := 0; cj < r.ax.ny; cj++ {
			r.addBeam(model.ClassBeamY, SectionGroupBeam, false,
				model.Index{I: i, J: r.ax.coreRow(cj), K: k},
				model.Index{I: i, J: r.ax.coreRow(cj + 1), K: k})
		}
	}
}

// frontCantilever connects the last core column line to the front cantilever
// line in every row, then runs a border beam along the free edge.
func (r *run) frontCantilever(k int) {
	c := r.spec.Cantilevers.Front
	if c == nil {
		return
	}
	for cj := 0; cj <= r.ax.ny; cj++ {
		j := r.ax.coreRow(cj)
		r.addBeam(model.ClassCantileverConnector, c.EdgeBeamSection, true,
			model.Index{I: r.ax.nx, J: j, K: k},
			model.Index{I: r.ax.frontI, J: j, K: k})
	}
	for cj := 0; cj < r.ax.ny; cj++ {
		r.addBeam(model.ClassCantileverBorder, c.EdgeBeamSection, false,
			model.Index{I: r.ax.frontI, J: r.ax.coreRow(cj), K: k},
			model.Index{I: r.ax.frontI, J: r.ax.coreRow(cj + 1), K: k})
	}
}

// rightCantilever connects the last core row to the right cantilever row in
// every column line, then runs a border beam along the free edge.
func (r *run) rightCantilever(k int) {
	c := r.spec.Cantilevers.Right
	if c == nil {
		return
	}
	for i := 0; i <= r.ax.nx; i++ {
		r.addBeam(model.ClassCantileverConnector, c.EdgeBeamSection, false,
			model.Index{I: i, J: r.ax.lastCoreJ(), K: k},
			model.Index{I: i, J: r.ax.rightJ, K: k})
	}
	for i := 0; i < r.ax.nx; i++ {
		r.addBeam(model.ClassCantileverBorder, c.EdgeBeamSection, true,
			model.Index{I: i, J: r.ax.rightJ, K: k},
			model.Index{I: i + 1, J: r.ax.rightJ, K: k})
	}
}

// leftCantilever connects row 0 (the cantilever row) to the first core row
// in every column line, then runs a border beam along the free edge.
// Endpoints stay ordered low→high index, so the cantilever node comes first.
func (r *run) leftCantilever(k int) {
	c := r.spec.Cantilevers.Left
	if c == nil {
		return
	}
	for i := 0; i <= r.ax.nx; i++ {
		r.addBeam(model.ClassCantileverConnector, c.EdgeBeamSection, false,
			model.Index{I: i, J: r.ax.leftJ, K: k},
			model.Index{I: i, J: r.ax.coreRow(0), K: k})
	}
	for i := 0; i < r.ax.nx; i++ {
		r.addBeam(model.ClassCantileverBorder, c.EdgeBeamSection, true,
			model.Index{I: i, J: r.ax.leftJ, K: k},
			model.Index{I: i + 1, J: r.ax.leftJ, K: k})
	}
}

// addBeam validates and creates one horizontal element between the nodes at
// indices a and b. A missing endpoint or a non-orthogonal pair is recorded
// on the audit and skipped; it must never silently become a diagonal or
// inclined element.
func (r *run) addBeam(class model.ElementClass, group int, alongX bool, a, b model.Index) {
	tagA, okA := r.m.TagAt(a)
	tagB, okB := r.m.TagAt(b)
	if !okA || !okB {
		r.audit.record(SkipEvent{
			Reason: SkipGeometryLookup,
			Class:  class.String(),
			Level:  a.K,
			Detail: fmt.Sprintf("missing endpoint (%d,%d)-(%d,%d)", a.I, a.J, b.I, b.J),
		})
		r.logger.Warn("skipping beam, endpoint missing", "class", class, "level", a.K, "i", a.I, "j", a.J)
		return
	}
	na, _ := r.m.Node(tagA)
	nb, _ := r.m.Node(tagB)
	if !r.orthogonal(na, nb, alongX) {
		r.audit.record(SkipEvent{
			Reason: SkipOrthogonality,
			Class:  class.String(),
			Level:  a.K,
			Detail: fmt.Sprintf("nodes %d-%d not axis-aligned", tagA, tagB),
		})
		r.logger.Warn("skipping non-orthogonal beam", "class", class, "level", a.K, "nodes", fmt.Sprintf("%d-%d", tagA, tagB))
		return
	}

	e := model.Element{
		Tag:          model.ElementTag(r.tags.Next()),
		NodeI:        tagA,
		NodeJ:        tagB,
		Class:        class,
		SectionGroup: group,
	}
	if err := r.m.AddElement(e); err != nil {
		panic(fmt.Sprintf("lattice: %v", err))
	}
	switch class {
	case model.ClassBeamX:
		r.audit.BeamsX++
	case model.ClassBeamY:
		r.audit.BeamsY++
	case model.ClassCantileverConnector:
		r.audit.Connectors++
	case model.ClassCantileverBorder:
		r.audit.Borders++
	}
}
