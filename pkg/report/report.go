// Package report produces the generation summary and the CSV tables the
// reporting collaborators consume: one row per node and one per element,
// labeled by class so downstream result rows stay identifiable.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/model"
)

// Summary describes one generation run for human consumption.
type Summary struct {
	RunID     string
	Generated time.Time

	Nodes      int
	Columns    int
	BeamsX     int
	BeamsY     int
	Connectors int
	Borders    int

	Fixed     int
	FixedWant int

	Skipped     int
	SkipLookup  int
	SkipOrtho   int
	SkipDetails []string
}

// NewSummary assembles a summary from the generation audit. Each run gets a
// fresh UUID so artifacts from different runs stay distinguishable.
func NewSummary(a *lattice.Audit) Summary {
	s := Summary{
		RunID:      uuid.NewString(),
		Generated:  time.Now().UTC(),
		Nodes:      a.Nodes,
		Columns:    a.Columns,
		BeamsX:     a.BeamsX,
		BeamsY:     a.BeamsY,
		Connectors: a.Connectors,
		Borders:    a.Borders,
		Fixed:      a.Fixed,
		FixedWant:  a.FixedWant,
		Skipped:    a.Skipped(),
		SkipLookup: a.SkipCount(lattice.SkipGeometryLookup),
		SkipOrtho:  a.SkipCount(lattice.SkipOrthogonality),
	}
	for _, ev := range a.Skips {
		s.SkipDetails = append(s.SkipDetails, ev.String())
	}
	return s
}

// Elements returns the total element count.
func (s Summary) Elements() int {
	return s.Columns + s.BeamsX + s.BeamsY + s.Connectors + s.Borders
}

// String renders the plain-text report. The CLI applies styling on top.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s (%s)\n", s.RunID, s.Generated.Format(time.RFC3339))
	fmt.Fprintf(&b, "nodes created:    %d\n", s.Nodes)
	fmt.Fprintf(&b, "elements created: %d\n", s.Elements())
	fmt.Fprintf(&b, "  columns:              %d\n", s.Columns)
	fmt.Fprintf(&b, "  beams X:              %d\n", s.BeamsX)
	fmt.Fprintf(&b, "  beams Y:              %d\n", s.BeamsY)
	if s.Connectors > 0 || s.Borders > 0 {
		fmt.Fprintf(&b, "  cantilever connectors: %d\n", s.Connectors)
		fmt.Fprintf(&b, "  cantilever borders:    %d\n", s.Borders)
	}
	fmt.Fprintf(&b, "base restraints:  %d of %d expected\n", s.Fixed, s.FixedWant)
	fmt.Fprintf(&b, "elements skipped: %d (lookup %d, orthogonality %d)\n", s.Skipped, s.SkipLookup, s.SkipOrtho)
	for _, d := range s.SkipDetails {
		fmt.Fprintf(&b, "  - %s\n", d)
	}
	return b.String()
}

// labelFor maps an element class to its report row label.
func labelFor(c model.ElementClass) string { return c.String() }
