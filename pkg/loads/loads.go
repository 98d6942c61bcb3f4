// Package loads provides load-combination bookkeeping for the generated
// frame: intensity inputs, factored combinations, and tributary line loads
// for beams. It is data-only; applying loads to a solving engine is the
// downstream analysis step's concern.
package loads

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownCombination is returned by Lookup for an unregistered id.
var ErrUnknownCombination = errors.New("unknown load combination")

// CaseID names a basic load case.
type CaseID string

const (
	CaseDead CaseID = "D"
	CaseLive CaseID = "L"
)

// Intensity holds area load intensities in kN/m².
type Intensity struct {
	Dead float64
	Live float64
}

// DefaultIntensity is the stock slab loading: 6 kN/m² dead, 2 kN/m² live.
func DefaultIntensity() Intensity {
	return Intensity{Dead: 6, Live: 2}
}

// Combination is one factored load combination used to label result rows.
type Combination struct {
	ID      string
	Name    string
	Factors map[CaseID]float64
	Service bool // unfactored serviceability combination
}

// Factor returns the combination's factor for a case (0 if absent).
func (c Combination) Factor(id CaseID) float64 { return c.Factors[id] }

// String renders the combination equation, e.g. "1.2D + 1.6L".
func (c Combination) String() string {
	ids := slices.Sorted(maps.Keys(c.Factors))
	s := ""
	for _, id := range ids {
		if s != "" {
			s += " + "
		}
		s += fmt.Sprintf("%.1f%s", c.Factors[id], id)
	}
	return s
}

// Standard returns the combination set the reports work with: the strength
// combinations 1.4D and 1.2D+1.6L plus the D+L service combination.
func Standard() []Combination {
	return []Combination{
		{ID: "U1", Name: "dead only", Factors: map[CaseID]float64{CaseDead: 1.4}},
		{ID: "U2", Name: "dead plus live", Factors: map[CaseID]float64{CaseDead: 1.2, CaseLive: 1.6}},
		{ID: "S1", Name: "service", Factors: map[CaseID]float64{CaseDead: 1.0, CaseLive: 1.0}, Service: true},
	}
}

// Lookup finds a standard combination by id.
func Lookup(id string) (Combination, error) {
	for _, c := range Standard() {
		if c.ID == id {
			return c, nil
		}
	}
	return Combination{}, fmt.Errorf("%w: %q", ErrUnknownCombination, id)
}

// Factored reduces an intensity under a combination to a single equivalent
// area load in kN/m².
func Factored(c Combination, in Intensity) float64 {
	return c.Factor(CaseDead)*in.Dead + c.Factor(CaseLive)*in.Live
}

// LineLoad converts an area intensity to a uniformly distributed beam load
// in kN/m using the tributary width of the supported slab strip.
func LineLoad(areaLoad, tributaryWidth float64) float64 {
	if tributaryWidth < 0 {
		return 0
	}
	return areaLoad * tributaryWidth
}

// TributaryWidth returns half the sum of the two adjacent bay widths for an
// interior beam line; pass 0 for a missing neighbor at the perimeter.
func TributaryWidth(left, right float64) float64 {
	return (left + right) / 2
}
