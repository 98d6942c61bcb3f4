package lattice

import (
	"errors"
	"reflect"
	"testing"

	"github.com/IVANSLASH/framegen/pkg/model"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// twoByTwo is a 2x2-bay single-story spec with uniform columns.
func twoByTwo() Spec {
	return Spec{
		NumBayX: 2, NumBayY: 2, NumFloor: 1,
		BayWidthsX:   []float64{5, 5},
		BayWidthsY:   []float64{4, 4},
		StoryHeights: []float64{3},
	}
}

func TestGenerateBareFrame(t *testing.T) {
	m, audit, err := Generate(twoByTwo(), Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if got := m.NodeCount(); got != 18 {
		t.Errorf("NodeCount = %d, want 18", got)
	}
	if got := m.ElementCount(); got != 21 {
		t.Errorf("ElementCount = %d, want 21", got)
	}
	if got := len(m.ElementsByClass(model.ClassColumn)); got != 9 {
		t.Errorf("columns = %d, want 9", got)
	}
	if got := len(m.ElementsByClass(model.ClassBeamX)); got != 6 {
		t.Errorf("beams X = %d, want 6", got)
	}
	if got := len(m.ElementsByClass(model.ClassBeamY)); got != 6 {
		t.Errorf("beams Y = %d, want 6", got)
	}
	if got := len(m.FixedNodes()); got != 9 {
		t.Errorf("fixed nodes = %d, want 9", got)
	}
	if audit.Skipped() != 0 {
		t.Errorf("Skipped = %d, want 0", audit.Skipped())
	}
	if audit.Fixed != audit.FixedWant {
		t.Errorf("Fixed = %d, FixedWant = %d", audit.Fixed, audit.FixedWant)
	}
}

func TestGenerateFrontCantilever(t *testing.T) {
	s := twoByTwo()
	s.Cantilevers.Front = &Cantilever{Length: 1.5, EdgeBeamSection: 101}

	m, audit, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Level 1 gains ny+1 = 3 cantilever nodes; the base plane gains none.
	if got := m.NodeCount(); got != 21 {
		t.Errorf("NodeCount = %d, want 21", got)
	}
	if got := audit.Connectors; got != 3 {
		t.Errorf("Connectors = %d, want 3", got)
	}
	if got := audit.Borders; got != 2 {
		t.Errorf("Borders = %d, want 2", got)
	}
	if got := m.ElementCount(); got != 26 {
		t.Errorf("ElementCount = %d, want 26", got)
	}

	// The cantilever line sits one overhang past the last bay.
	for _, n := range m.Nodes() {
		if n.Footprint == model.FootprintCantilever && n.X != 11.5 {
			t.Errorf("cantilever node %d at X=%g, want 11.5", n.Tag, n.X)
		}
	}

	// Connector and border beams carry the edge-beam section group.
	for _, e := range m.ElementsByClass(model.ClassCantileverConnector) {
		if e.SectionGroup != 101 {
			t.Errorf("connector %d group = %d, want 101", e.Tag, e.SectionGroup)
		}
	}
}

func TestGenerateLeftCantileverOffset(t *testing.T) {
	s := twoByTwo()
	s.Cantilevers.Left = &Cantilever{Length: 1.0, EdgeBeamSection: 103}

	m, _, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Row 0 is the cantilever row at negative Y; the core shifts up one row.
	for _, n := range m.Nodes() {
		switch n.Footprint {
		case model.FootprintCantilever:
			if n.Y != -1.0 {
				t.Errorf("cantilever node %d at Y=%g, want -1", n.Tag, n.Y)
			}
			if n.Level == 0 {
				t.Errorf("cantilever node %d exists at the base plane", n.Tag)
			}
		case model.FootprintCore:
			if n.Y < 0 {
				t.Errorf("core node %d at negative Y=%g", n.Tag, n.Y)
			}
		}
	}

	// Base restraints still cover the full core footprint.
	if got := len(m.FixedNodes()); got != 9 {
		t.Errorf("fixed nodes = %d, want 9", got)
	}
}

func TestGenerateAllSides(t *testing.T) {
	s := twoByTwo()
	s.NumFloor = 2
	s.StoryHeights = []float64{3, 3}
	s.Cantilevers = Cantilevers{
		Front: &Cantilever{Length: 0.9, EdgeBeamSection: 101},
		Right: &Cantilever{Length: 0.8, EdgeBeamSection: 102},
		Left:  &Cantilever{Length: 0.8, EdgeBeamSection: 103},
	}

	m, audit, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Corner positions where two cantilever sides would meet stay empty.
	ax, err := buildAxes(s)
	if err != nil {
		t.Fatalf("buildAxes error: %v", err)
	}
	for _, j := range []int{ax.leftJ, ax.rightJ} {
		if _, ok := m.TagAt(model.Index{I: ax.frontI, J: j, K: 1}); ok {
			t.Errorf("corner node exists at (%d,%d,1)", ax.frontI, j)
		}
	}

	// Per elevated level: front ny+1=3, right nx+1=3, left nx+1=3 connectors.
	if got := audit.Connectors; got != 2*9 {
		t.Errorf("Connectors = %d, want 18", got)
	}
	// Per elevated level: front ny=2, right nx=2, left nx=2 borders.
	if got := audit.Borders; got != 2*6 {
		t.Errorf("Borders = %d, want 12", got)
	}
	if audit.Skipped() != 0 {
		t.Errorf("Skipped = %d, want 0", audit.Skipped())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	s := twoByTwo()
	s.Cantilevers.Front = &Cantilever{Length: 1.2, EdgeBeamSection: 101}

	m1, _, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("first Generate error: %v", err)
	}
	m2, _, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("second Generate error: %v", err)
	}

	if !reflect.DeepEqual(m1.Nodes(), m2.Nodes()) {
		t.Error("node sequences differ between identical runs")
	}
	if !reflect.DeepEqual(m1.Elements(), m2.Elements()) {
		t.Error("element sequences differ between identical runs")
	}
}

func TestGenerateTagOrder(t *testing.T) {
	m, _, err := Generate(twoByTwo(), Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Nodes are tagged first, 1..N, in creation order.
	for i, n := range m.Nodes() {
		if int(n.Tag) != i+1 {
			t.Fatalf("node %d has tag %d, want %d", i, n.Tag, i+1)
		}
	}
	// Elements continue the same sequence.
	first := int(m.Elements()[0].Tag)
	if first != m.NodeCount()+1 {
		t.Errorf("first element tag = %d, want %d", first, m.NodeCount()+1)
	}
	for i, e := range m.Elements() {
		if int(e.Tag) != first+i {
			t.Fatalf("element %d has tag %d, want %d", i, e.Tag, first+i)
		}
	}
}

func TestGenerateIndexBijection(t *testing.T) {
	s := twoByTwo()
	s.Cantilevers.Right = &Cantilever{Length: 1.0, EdgeBeamSection: 102}

	m, _, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, n := range m.Nodes() {
		at, ok := m.IndexOf(n.Tag)
		if !ok {
			t.Fatalf("node %d has no index", n.Tag)
		}
		tag, ok := m.TagAt(at)
		if !ok || tag != n.Tag {
			t.Fatalf("index (%d,%d,%d) maps to %d, want %d", at.I, at.J, at.K, tag, n.Tag)
		}
	}
}

func TestGenerateRejectsBadSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"width count mismatch", func(s *Spec) { s.BayWidthsX = []float64{5} }},
		{"height count mismatch", func(s *Spec) { s.StoryHeights = []float64{3, 3} }},
		{"zero bays", func(s *Spec) { s.NumBayX = 0 }},
		{"negative width", func(s *Spec) { s.BayWidthsY = []float64{4, -4} }},
		{"zero cantilever span", func(s *Spec) { s.Cantilevers.Front = &Cantilever{Length: 0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := twoByTwo()
			tt.mutate(&s)
			if _, _, err := Generate(s, Options{}); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Generate error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestGenerateExteriorInteriorGroups(t *testing.T) {
	s := Spec{
		NumBayX: 3, NumBayY: 3, NumFloor: 1,
		BayWidthsX:   []float64{5, 6, 5},
		BayWidthsY:   []float64{4, 5, 4},
		StoryHeights: []float64{3},
		Columns:      section.GroupPolicy{Scheme: section.SchemeExteriorInterior},
	}

	m, _, err := Generate(s, Options{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	exterior, interior := 0, 0
	for _, e := range m.ElementsByClass(model.ClassColumn) {
		switch e.SectionGroup {
		case section.GroupExterior:
			exterior++
		case section.GroupInterior:
			interior++
		default:
			t.Fatalf("column %d has group %d", e.Tag, e.SectionGroup)
		}
	}
	// 4x4 footprint: 12 perimeter positions, 4 interior.
	if exterior != 12 || interior != 4 {
		t.Errorf("exterior/interior = %d/%d, want 12/4", exterior, interior)
	}
}

func TestGenerateCustomGroupUndefined(t *testing.T) {
	reg := section.NewRegistry()
	// Define only group 1; every other position is undefined.
	p, err := section.Rectangular(0.3, 0.3)
	if err != nil {
		t.Fatalf("Rectangular error: %v", err)
	}
	if _, err := reg.Define(1, p); err != nil {
		t.Fatalf("Define error: %v", err)
	}

	s := twoByTwo()
	s.Columns = section.GroupPolicy{Scheme: section.SchemeCustomGroups, Sections: reg}

	_, _, err = Generate(s, Options{})
	if !errors.Is(err, section.ErrGroupUndefined) {
		t.Errorf("Generate error = %v, want ErrGroupUndefined", err)
	}
}

func TestAddBeamSkipsMissingEndpoint(t *testing.T) {
	s := twoByTwo()
	ax, err := buildAxes(s)
	if err != nil {
		t.Fatalf("buildAxes error: %v", err)
	}
	r := &run{
		spec:   s,
		ax:     ax,
		eps:    s.Tolerance(),
		m:      model.New(),
		tags:   NewTagAllocator(),
		audit:  &Audit{},
		logger: Options{}.logger(),
	}

	// No nodes exist, so the lookup fails and the beam is skipped.
	r.addBeam(model.ClassBeamX, SectionGroupBeam, true,
		model.Index{I: 0, J: 0, K: 1},
		model.Index{I: 1, J: 0, K: 1})

	if got := r.audit.SkipCount(SkipGeometryLookup); got != 1 {
		t.Errorf("SkipCount(SkipGeometryLookup) = %d, want 1", got)
	}
	if r.m.ElementCount() != 0 {
		t.Error("skipped beam must not create an element")
	}
}

func TestAddBeamSkipsNonOrthogonalPair(t *testing.T) {
	s := twoByTwo()
	ax, err := buildAxes(s)
	if err != nil {
		t.Fatalf("buildAxes error: %v", err)
	}
	r := &run{
		spec:   s,
		ax:     ax,
		eps:    s.Tolerance(),
		m:      model.New(),
		tags:   NewTagAllocator(),
		audit:  &Audit{},
		logger: Options{}.logger(),
	}

	// Two nodes that differ in both X and Y: a diagonal candidate.
	a := model.Node{Tag: 1, X: 0, Y: 0, Z: 3, Level: 1, Footprint: model.FootprintCore}
	b := model.Node{Tag: 2, X: 5, Y: 4, Z: 3, Level: 1, Footprint: model.FootprintCore}
	if err := r.m.AddNode(a, model.Index{I: 0, J: 0, K: 1}); err != nil {
		t.Fatal(err)
	}
	if err := r.m.AddNode(b, model.Index{I: 1, J: 1, K: 1}); err != nil {
		t.Fatal(err)
	}

	r.addBeam(model.ClassBeamX, SectionGroupBeam, true,
		model.Index{I: 0, J: 0, K: 1},
		model.Index{I: 1, J: 1, K: 1})

	if got := r.audit.SkipCount(SkipOrthogonality); got != 1 {
		t.Errorf("SkipCount(SkipOrthogonality) = %d, want 1", got)
	}
	if r.m.ElementCount() != 0 {
		t.Error("non-orthogonal pair must not become an element")
	}
}

func TestTolerance(t *testing.T) {
	s := twoByTwo()
	if got, want := s.Tolerance(), 4*1e-3; got != want {
		t.Errorf("Tolerance = %g, want %g", got, want)
	}
}
