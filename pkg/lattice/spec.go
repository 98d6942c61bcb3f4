// Package lattice generates the structural model of a multi-story frame
// building: it turns bay widths, story heights, and optional cantilever
// extents into a node lattice and a set of orthogonal columns and beams with
// base restraints applied.
//
// Generation is deterministic and purely sequential. All state (the tag
// allocator and the index→tag map) is threaded explicitly through the run,
// so independent generations never interfere.
package lattice

import (
	"errors"
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/section"
)

var (
	// ErrConfiguration is returned before any node is created when the
	// geometry arrays are malformed: non-positive counts or widths, or a
	// length that does not match the declared bay/story count.
	ErrConfiguration = errors.New("invalid geometry configuration")

	// ErrBoundaryInsufficient is returned after generation when fewer base
	// restraints were applied than the core footprint requires. The model
	// must not proceed to analysis: an under-restrained frame produces
	// numerically unstable results without necessarily signaling an error.
	ErrBoundaryInsufficient = errors.New("insufficient base restraints")
)

// Side names a cantilever side. Front extends the X axis beyond the last
// bay; Right and Left extend the Y axis beyond the last and before the first
// bay respectively.
type Side int

const (
	SideFront Side = iota
	SideRight
	SideLeft
)

// String returns "front", "right" or "left".
func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideRight:
		return "right"
	default:
		return "left"
	}
}

// Cantilever configures one cantilevered bay extension.
type Cantilever struct {
	// Length is the horizontal extent beyond the core footprint, in meters.
	Length float64
	// EdgeBeamSection is the section tag for the side's connector and
	// border beams.
	EdgeBeamSection int
}

// Cantilevers holds the optional per-side cantilever configuration.
// A nil side is inactive.
type Cantilevers struct {
	Front *Cantilever
	Right *Cantilever
	Left  *Cantilever
}

// Active reports whether any side is configured.
func (c Cantilevers) Active() bool {
	return c.Front != nil || c.Right != nil || c.Left != nil
}

// Get returns the configuration for a side, or nil.
func (c Cantilevers) Get(s Side) *Cantilever {
	switch s {
	case SideFront:
		return c.Front
	case SideRight:
		return c.Right
	default:
		return c.Left
	}
}

// Spec is the geometric input to Generate. It is a plain value: the config
// loader produces one from a TOML file or from the interactive prompt.
type Spec struct {
	NumBayX  int
	NumBayY  int
	NumFloor int

	BayWidthsX   []float64 // length NumBayX
	BayWidthsY   []float64 // length NumBayY
	StoryHeights []float64 // length NumFloor

	Cantilevers Cantilevers
	Columns     section.GroupPolicy
}

// Check validates the spec's geometry arrays. It is called by Generate; a
// failure means no node has been created.
func (s Spec) Check() error {
	if s.NumBayX <= 0 || s.NumBayY <= 0 || s.NumFloor <= 0 {
		return fmt.Errorf("%w: bays %dx%d, floors %d", ErrConfiguration, s.NumBayX, s.NumBayY, s.NumFloor)
	}
	if len(s.BayWidthsX) != s.NumBayX {
		return fmt.Errorf("%w: %d X widths for %d bays", ErrConfiguration, len(s.BayWidthsX), s.NumBayX)
	}
	if len(s.BayWidthsY) != s.NumBayY {
		return fmt.Errorf("%w: %d Y widths for %d bays", ErrConfiguration, len(s.BayWidthsY), s.NumBayY)
	}
	if len(s.StoryHeights) != s.NumFloor {
		return fmt.Errorf("%w: %d story heights for %d floors", ErrConfiguration, len(s.StoryHeights), s.NumFloor)
	}
	for side := SideFront; side <= SideLeft; side++ {
		if c := s.Cantilevers.Get(side); c != nil && c.Length <= 0 {
			return fmt.Errorf("%w: %s cantilever length %g", ErrConfiguration, side, c.Length)
		}
	}
	return nil
}

// Tolerance returns the orthogonality tolerance ε for this geometry:
// 1e-3 of the smallest bay width, small enough that a real misalignment is
// caught and large enough that float round-off never triggers a rejection.
func (s Spec) Tolerance() float64 {
	smallest := 0.0
	for _, w := range append(append([]float64{}, s.BayWidthsX...), s.BayWidthsY...) {
		if w > 0 && (smallest == 0 || w < smallest) {
			smallest = w
		}
	}
	if smallest == 0 {
		smallest = 1
	}
	return smallest * 1e-3
}
