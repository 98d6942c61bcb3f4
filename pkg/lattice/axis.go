package lattice

import "fmt"

// BuildAxis turns per-bay widths into cumulative coordinates starting at 0.
// The result has len(widths)+1 entries and is strictly increasing.
// Returns ErrConfiguration on a non-positive width.
func BuildAxis(widths []float64) ([]float64, error) {
	coords := make([]float64, 0, len(widths)+1)
	coords = append(coords, 0)
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: bay %d width %g", ErrConfiguration, i+1, w)
		}
		coords = append(coords, coords[len(coords)-1]+w)
	}
	return coords, nil
}

// AppendCantilever extends an axis past its last coordinate by length.
// Used for the front (X) and right (Y) cantilevers.
func AppendCantilever(coords []float64, length float64) []float64 {
	out := make([]float64, len(coords), len(coords)+1)
	copy(out, coords)
	return append(out, coords[len(coords)-1]+length)
}

// PrependCantilever extends an axis before its first coordinate by length.
// Used for the left (Y) cantilever; the new coordinate is negative when the
// axis starts at the origin.
func PrependCantilever(coords []float64, length float64) []float64 {
	out := make([]float64, 0, len(coords)+1)
	out = append(out, coords[0]-length)
	return append(out, coords...)
}

// axes holds the resolved coordinate sequences for one generation run,
// together with the index bookkeeping the cantilever extensions introduce.
type axes struct {
	xs, ys, zs []float64

	nx, ny int // core bay counts
	yOff   int // 1 when a left cantilever occupies row index 0

	frontI int // X index of the front cantilever column line, -1 if none
	rightJ int // Y index of the right cantilever row, -1 if none
	leftJ  int // Y index of the left cantilever row (always 0), -1 if none
}

// buildAxes resolves the spec's axis coordinate sequences, including
// cantilever extensions. The core X indices are [0..nx]; core Y row indices
// are [yOff..yOff+ny].
func buildAxes(s Spec) (axes, error) {
	xs, err := BuildAxis(s.BayWidthsX)
	if err != nil {
		return axes{}, fmt.Errorf("X axis: %w", err)
	}
	ys, err := BuildAxis(s.BayWidthsY)
	if err != nil {
		return axes{}, fmt.Errorf("Y axis: %w", err)
	}
	zs, err := BuildAxis(s.StoryHeights)
	if err != nil {
		return axes{}, fmt.Errorf("Z axis: %w", err)
	}

	a := axes{xs: xs, ys: ys, zs: zs, nx: s.NumBayX, ny: s.NumBayY, frontI: -1, rightJ: -1, leftJ: -1}

	if c := s.Cantilevers.Front; c != nil {
		a.xs = AppendCantilever(a.xs, c.Length)
		a.frontI = len(a.xs) - 1
	}
	if c := s.Cantilevers.Right; c != nil {
		a.ys = AppendCantilever(a.ys, c.Length)
		a.rightJ = len(a.ys) - 1
	}
	if c := s.Cantilevers.Left; c != nil {
		a.ys = PrependCantilever(a.ys, c.Length)
		a.yOff = 1
		a.leftJ = 0
		if a.rightJ >= 0 {
			a.rightJ++
		}
	}
	return a, nil
}

// coreRow converts a core row number r ∈ [0..ny] to its lattice row index,
// applying the left-cantilever offset. Every consumer of the index map goes
// through this helper so the offset cannot be applied inconsistently.
func (a axes) coreRow(r int) int { return r + a.yOff }

// isCoreI reports whether x index i lies on the core footprint.
func (a axes) isCoreI(i int) bool { return i >= 0 && i <= a.nx }

// isCoreJ reports whether lattice row index j lies on the core footprint.
func (a axes) isCoreJ(j int) bool { return j >= a.yOff && j <= a.yOff+a.ny }

// lastCoreJ returns the lattice row index of the last core row.
func (a axes) lastCoreJ() int { return a.yOff + a.ny }

// levels returns the number of horizontal planes including the base.
func (a axes) levels() int { return len(a.zs) }
