package lattice

import "fmt"

// Finding is one advisory result from the cantilever stability check.
type Finding struct {
	Side    Side
	Blocker bool // true when the span is structurally unviable
	Message string
}

// Practical cantilever span limits, in meters. Spans past warnSpan need
// stiffened border beams; spans past maxSpan are rejected as unviable.
const (
	warnSpan         = 0.8
	maxSpan          = 1.0
	maxCombinedSides = 1.8
)

// CheckCantileverStability reviews the configured cantilever spans against
// practical limits. Findings are advisory: generation proceeds regardless,
// and callers decide whether blockers should stop the analysis.
func CheckCantileverStability(c Cantilevers) []Finding {
	var out []Finding
	for side := SideFront; side <= SideLeft; side++ {
		cfg := c.Get(side)
		if cfg == nil {
			continue
		}
		switch {
		case cfg.Length > maxSpan:
			out = append(out, Finding{
				Side:    side,
				Blocker: true,
				Message: fmt.Sprintf("%s cantilever span %.2fm exceeds the %.1fm limit", side, cfg.Length, maxSpan),
			})
		case cfg.Length > warnSpan:
			out = append(out, Finding{
				Side:    side,
				Message: fmt.Sprintf("%s cantilever span %.2fm needs stiffened border beams", side, cfg.Length),
			})
		}
	}
	if c.Right != nil && c.Left != nil {
		if total := c.Right.Length + c.Left.Length; total > maxCombinedSides {
			out = append(out, Finding{
				Side:    SideRight,
				Message: fmt.Sprintf("combined lateral spans %.2fm may need a dynamic analysis", total),
			})
		}
	}
	return out
}
