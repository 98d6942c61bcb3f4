package config

import (
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// Build converts a validated configuration into the generator's spec and the
// section registry the materializer applies first. The registry covers the
// shared beam section (tag 0), every column group the scheme can produce,
// and one edge-beam section per active cantilever side.
func (c Config) Build() (lattice.Spec, *section.Registry, error) {
	reg := section.NewRegistry()

	if err := define(reg, lattice.SectionGroupBeam, c.Beams, Dim{Width: 0.25, Depth: 0.45}); err != nil {
		return lattice.Spec{}, nil, err
	}

	policy := section.GroupPolicy{Sections: reg}
	switch c.Columns.Type {
	case "", "uniform":
		policy.Scheme = section.SchemeUniform
		if err := define(reg, section.GroupUniform, c.Columns.Section, Dim{Width: 0.30, Depth: 0.30}); err != nil {
			return lattice.Spec{}, nil, err
		}
	case "exterior-interior":
		policy.Scheme = section.SchemeExteriorInterior
		if err := define(reg, section.GroupExterior, c.Columns.Exterior, Dim{}); err != nil {
			return lattice.Spec{}, nil, err
		}
		if err := define(reg, section.GroupInterior, c.Columns.Interior, Dim{}); err != nil {
			return lattice.Spec{}, nil, err
		}
	case "custom-groups":
		policy.Scheme = section.SchemeCustomGroups
		for _, g := range c.Columns.Groups {
			if err := define(reg, g.ID, g.Section, Dim{}); err != nil {
				return lattice.Spec{}, nil, fmt.Errorf("group %d: %w", g.ID, err)
			}
		}
	}

	cants := lattice.Cantilevers{}
	sides := []struct {
		cfg *SideCfg
		tag int
		dst **lattice.Cantilever
	}{
		{c.Cantilevers.Front, EdgeBeamFront, &cants.Front},
		{c.Cantilevers.Right, EdgeBeamRight, &cants.Right},
		{c.Cantilevers.Left, EdgeBeamLeft, &cants.Left},
	}
	for _, s := range sides {
		if s.cfg == nil {
			continue
		}
		if err := define(reg, s.tag, s.cfg.EdgeBeam, Dim{Width: 0.25, Depth: 0.40}); err != nil {
			return lattice.Spec{}, nil, err
		}
		*s.dst = &lattice.Cantilever{Length: s.cfg.Length, EdgeBeamSection: s.tag}
	}

	spec := lattice.Spec{
		NumBayX:      c.Bays.X,
		NumBayY:      c.Bays.Y,
		NumFloor:     c.Stories.Count,
		BayWidthsX:   c.Bays.WidthsX,
		BayWidthsY:   c.Bays.WidthsY,
		StoryHeights: c.Stories.Heights,
		Cantilevers:  cants,
		Columns:      policy,
	}
	return spec, reg, nil
}

// define registers the rectangular section for dim under tag, falling back
// to def when the dimensions were left out of the file.
func define(reg *section.Registry, tag int, dim, def Dim) error {
	if dim.zero() {
		dim = def
	}
	props, err := section.Rectangular(dim.Width, dim.Depth)
	if err != nil {
		return err
	}
	_, err = reg.Define(tag, props)
	return err
}
