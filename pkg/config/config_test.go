package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/section"
)

func TestDefaultIsValid(t *testing.T) {
	warnings, err := Default().Validate()
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Cantilevers.Front = &SideCfg{Length: 0.8, EdgeBeam: Dim{Width: 0.25, Depth: 0.40}}
	cfg.Columns = Columns{
		Type:     "exterior-interior",
		Exterior: Dim{Width: 0.35, Depth: 0.35},
		Interior: Dim{Width: 0.45, Depth: 0.45},
	}

	path := filepath.Join(t.TempDir(), "framegen.toml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("loaded config = %+v, want %+v", got, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero bays", func(c *Config) { c.Bays.X = 0 }},
		{"zero stories", func(c *Config) { c.Stories.Count = 0; c.Stories.Heights = nil }},
		{"widths mismatch", func(c *Config) { c.Bays.WidthsX = []float64{5} }},
		{"heights mismatch", func(c *Config) { c.Stories.Heights = []float64{3} }},
		{"negative width", func(c *Config) { c.Bays.WidthsY[0] = -4 }},
		{"zero height", func(c *Config) { c.Stories.Heights[1] = 0 }},
		{"unknown scheme", func(c *Config) { c.Columns.Type = "tapered" }},
		{"zero cantilever", func(c *Config) { c.Cantilevers.Right = &SideCfg{Length: 0} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if _, err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.Bays.WidthsX[0] = 2                          // below 3m
	cfg.Stories.Heights[0] = 6                       // above 5m
	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want 2 entries", warnings)
	}
}

func TestBuildUniform(t *testing.T) {
	spec, reg, err := Default().Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if spec.NumBayX != 3 || spec.NumBayY != 3 || spec.NumFloor != 3 {
		t.Errorf("spec grid = %dx%dx%d, want 3x3x3", spec.NumBayX, spec.NumBayY, spec.NumFloor)
	}
	if spec.Columns.Scheme != section.SchemeUniform {
		t.Errorf("scheme = %v, want uniform", spec.Columns.Scheme)
	}

	// The registry holds the beam section and the single column group.
	want := []int{lattice.SectionGroupBeam, section.GroupUniform}
	if got := reg.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("registry tags = %v, want %v", got, want)
	}
	beam, ok := reg.Lookup(lattice.SectionGroupBeam)
	if !ok {
		t.Fatal("beam section not registered")
	}
	wantBeam, _ := section.Rectangular(0.25, 0.45)
	if beam != wantBeam {
		t.Errorf("beam section = %+v, want %+v", beam, wantBeam)
	}
}

func TestBuildCantileverEdgeBeams(t *testing.T) {
	cfg := Default()
	cfg.Cantilevers.Front = &SideCfg{Length: 0.8}
	cfg.Cantilevers.Left = &SideCfg{Length: 0.6, EdgeBeam: Dim{Width: 0.30, Depth: 0.50}}

	spec, reg, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if spec.Cantilevers.Front == nil || spec.Cantilevers.Front.Length != 0.8 {
		t.Errorf("front cantilever = %+v, want length 0.8", spec.Cantilevers.Front)
	}
	if spec.Cantilevers.Front.EdgeBeamSection != EdgeBeamFront {
		t.Errorf("front edge-beam tag = %d, want %d", spec.Cantilevers.Front.EdgeBeamSection, EdgeBeamFront)
	}
	if spec.Cantilevers.Right != nil {
		t.Error("right cantilever configured without input")
	}
	if spec.Cantilevers.Left == nil || spec.Cantilevers.Left.EdgeBeamSection != EdgeBeamLeft {
		t.Errorf("left cantilever = %+v, want edge-beam tag %d", spec.Cantilevers.Left, EdgeBeamLeft)
	}

	// The unspecified front edge beam falls back to the stock 0.25x0.40.
	front, ok := reg.Lookup(EdgeBeamFront)
	if !ok {
		t.Fatal("front edge-beam section not registered")
	}
	wantFront, _ := section.Rectangular(0.25, 0.40)
	if front != wantFront {
		t.Errorf("front edge-beam section = %+v, want %+v", front, wantFront)
	}
	left, ok := reg.Lookup(EdgeBeamLeft)
	if !ok {
		t.Fatal("left edge-beam section not registered")
	}
	wantLeft, _ := section.Rectangular(0.30, 0.50)
	if left != wantLeft {
		t.Errorf("left edge-beam section = %+v, want %+v", left, wantLeft)
	}
}

func TestBuildCustomGroups(t *testing.T) {
	cfg := Default()
	cfg.Bays = Bays{X: 1, Y: 1, WidthsX: []float64{5}, WidthsY: []float64{4}}
	cfg.Columns = Columns{
		Type: "custom-groups",
		Groups: []Group{
			{ID: 1, Section: Dim{Width: 0.30, Depth: 0.30}},
			{ID: 2, Section: Dim{Width: 0.35, Depth: 0.35}},
			{ID: 3, Section: Dim{Width: 0.40, Depth: 0.40}},
			{ID: 4, Section: Dim{Width: 0.45, Depth: 0.45}},
		},
	}

	spec, reg, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if spec.Columns.Scheme != section.SchemeCustomGroups {
		t.Errorf("scheme = %v, want custom-groups", spec.Columns.Scheme)
	}
	for id := 1; id <= 4; id++ {
		if !reg.Has(id) {
			t.Errorf("group %d not registered", id)
		}
	}
}

func TestBuildRejectsBadColumnDims(t *testing.T) {
	cfg := Default()
	// Exterior-interior has no stock fallback; omitted dimensions fail.
	cfg.Columns = Columns{Type: "exterior-interior"}
	if _, _, err := cfg.Build(); !errors.Is(err, section.ErrInvalidDimension) {
		t.Errorf("Build error = %v, want ErrInvalidDimension", err)
	}
}
