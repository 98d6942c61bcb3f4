package section

import (
	"errors"
	"math"
	"testing"
)

func TestRectangular(t *testing.T) {
	p, err := Rectangular(0.3, 0.6)
	if err != nil {
		t.Fatalf("Rectangular error: %v", err)
	}

	const tol = 1e-12
	if got, want := p.A, 0.18; math.Abs(got-want) > tol {
		t.Errorf("A = %g, want %g", got, want)
	}
	if got, want := p.Iz, 0.3*0.6*0.6*0.6/12; math.Abs(got-want) > tol {
		t.Errorf("Iz = %g, want %g", got, want)
	}
	if got, want := p.Iy, 0.6*0.3*0.3*0.3/12; math.Abs(got-want) > tol {
		t.Errorf("Iy = %g, want %g", got, want)
	}
	if got, want := p.J, p.Iz+p.Iy; math.Abs(got-want) > tol {
		t.Errorf("J = %g, want %g", got, want)
	}
}

func TestRectangularRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]float64{{0, 0.5}, {0.5, 0}, {-0.3, 0.3}} {
		if _, err := Rectangular(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Rectangular(%g, %g) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestCircular(t *testing.T) {
	p, err := Circular(0.5)
	if err != nil {
		t.Fatalf("Circular error: %v", err)
	}

	const tol = 1e-12
	r := 0.25
	if got, want := p.A, math.Pi*r*r; math.Abs(got-want) > tol {
		t.Errorf("A = %g, want %g", got, want)
	}
	if p.Iz != p.Iy {
		t.Errorf("Iz = %g, Iy = %g, want equal", p.Iz, p.Iy)
	}
	if got, want := p.J, 2*p.Iz; math.Abs(got-want) > tol {
		t.Errorf("J = %g, want %g", got, want)
	}

	if _, err := Circular(0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Circular(0) error = %v, want ErrInvalidDimension", err)
	}
}

func TestRegistryDefineIsIdempotent(t *testing.T) {
	r := NewRegistry()
	p, err := Rectangular(0.3, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	created, err := r.Define(1, p)
	if err != nil || !created {
		t.Fatalf("first Define = (%v, %v), want (true, nil)", created, err)
	}

	// Re-declaring the identical definition is a visible no-op.
	created, err = r.Define(1, p)
	if err != nil || created {
		t.Fatalf("repeat Define = (%v, %v), want (false, nil)", created, err)
	}

	other, err := Rectangular(0.4, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Define(1, other); !errors.Is(err, ErrConflictingDefinition) {
		t.Errorf("conflicting Define error = %v, want ErrConflictingDefinition", err)
	}

	// The conflict must not clobber the original binding.
	got, ok := r.Lookup(1)
	if !ok || got != p {
		t.Errorf("Lookup(1) = (%+v, %v), want original properties", got, ok)
	}
}

func TestRegistryTags(t *testing.T) {
	r := NewRegistry()
	p, _ := Rectangular(0.3, 0.3)
	for _, tag := range []int{101, 2, 50} {
		if _, err := r.Define(tag, p); err != nil {
			t.Fatal(err)
		}
	}

	got := r.Tags()
	want := []int{2, 50, 101}
	if len(got) != len(want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tags() = %v, want %v", got, want)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.Has(7) {
		t.Error("Has(7) = true for undefined tag")
	}
}

func TestSchemeString(t *testing.T) {
	cases := []struct {
		scheme Scheme
		want   string
	}{
		{SchemeUniform, "uniform"},
		{SchemeExteriorInterior, "exterior-interior"},
		{SchemeCustomGroups, "custom-groups"},
		{Scheme(9), "scheme(9)"},
	}
	for _, tc := range cases {
		if got := tc.scheme.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.scheme), got, tc.want)
		}
	}
}

func TestGroupForUniform(t *testing.T) {
	var p GroupPolicy // zero value is the uniform policy
	for _, pos := range [][2]int{{0, 0}, {1, 1}, {2, 0}} {
		g, err := p.GroupFor(pos[0], pos[1], 2, 2)
		if err != nil {
			t.Fatalf("GroupFor(%d,%d) error: %v", pos[0], pos[1], err)
		}
		if g != GroupUniform {
			t.Errorf("GroupFor(%d,%d) = %d, want %d", pos[0], pos[1], g, GroupUniform)
		}
	}
}

func TestGroupForExteriorInterior(t *testing.T) {
	p := GroupPolicy{Scheme: SchemeExteriorInterior}
	cases := []struct {
		i, j int
		want int
	}{
		{0, 0, GroupExterior},
		{0, 2, GroupExterior},
		{3, 1, GroupExterior},
		{1, 3, GroupExterior},
		{1, 1, GroupInterior},
		{2, 2, GroupInterior},
	}
	for _, tc := range cases {
		g, err := p.GroupFor(tc.i, tc.j, 3, 3)
		if err != nil {
			t.Fatalf("GroupFor(%d,%d) error: %v", tc.i, tc.j, err)
		}
		if g != tc.want {
			t.Errorf("GroupFor(%d,%d) = %d, want %d", tc.i, tc.j, g, tc.want)
		}
	}
}

func TestGroupForCustomGroups(t *testing.T) {
	reg := NewRegistry()
	props, _ := Rectangular(0.3, 0.3)
	// 2×2 bays: 9 positions, ids 1..9.
	for id := 1; id <= 9; id++ {
		if _, err := reg.Define(id, props); err != nil {
			t.Fatal(err)
		}
	}
	p := GroupPolicy{Scheme: SchemeCustomGroups, Sections: reg}

	cases := []struct {
		i, j int
		want int
	}{
		{0, 0, 1},
		{0, 2, 3},
		{1, 0, 4},
		{2, 2, 9},
	}
	for _, tc := range cases {
		g, err := p.GroupFor(tc.i, tc.j, 2, 2)
		if err != nil {
			t.Fatalf("GroupFor(%d,%d) error: %v", tc.i, tc.j, err)
		}
		if g != tc.want {
			t.Errorf("GroupFor(%d,%d) = %d, want %d", tc.i, tc.j, g, tc.want)
		}
	}
}

func TestGroupForCustomGroupsUndefined(t *testing.T) {
	reg := NewRegistry()
	props, _ := Rectangular(0.3, 0.3)
	if _, err := reg.Define(1, props); err != nil {
		t.Fatal(err)
	}
	p := GroupPolicy{Scheme: SchemeCustomGroups, Sections: reg}

	if _, err := p.GroupFor(1, 1, 2, 2); !errors.Is(err, ErrGroupUndefined) {
		t.Errorf("GroupFor error = %v, want ErrGroupUndefined", err)
	}

	// A nil registry is equivalent to an empty one.
	nilPolicy := GroupPolicy{Scheme: SchemeCustomGroups}
	if _, err := nilPolicy.GroupFor(0, 0, 1, 1); !errors.Is(err, ErrGroupUndefined) {
		t.Errorf("GroupFor with nil registry error = %v, want ErrGroupUndefined", err)
	}
}

func TestMaterials(t *testing.T) {
	cat := Materials()
	if len(cat) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(cat))
	}
	m, ok := cat[ConcreteF21.Name]
	if !ok {
		t.Fatalf("catalog missing %q", ConcreteF21.Name)
	}
	if m.E != ConcreteF21.E || m.Nu != 0.2 {
		t.Errorf("catalog entry = %+v, want %+v", m, ConcreteF21)
	}
}
