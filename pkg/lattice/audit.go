package lattice

import "fmt"

// SkipReason classifies a recoverable per-element failure.
type SkipReason int

const (
	// SkipGeometryLookup means an expected neighboring node did not exist in
	// the index map; the element was skipped.
	SkipGeometryLookup SkipReason = iota
	// SkipOrthogonality means a candidate beam's endpoints were not
	// axis-aligned within tolerance; the beam was skipped rather than being
	// materialized as a diagonal or inclined element.
	SkipOrthogonality
)

// String returns "geometry-lookup" or "orthogonality".
func (r SkipReason) String() string {
	if r == SkipOrthogonality {
		return "orthogonality"
	}
	return "geometry-lookup"
}

// SkipEvent records one skipped element for post-hoc audit.
type SkipEvent struct {
	Reason SkipReason
	Class  string // element class that was being created
	Level  int
	Detail string
}

// String formats the event for logs and reports.
func (e SkipEvent) String() string {
	return fmt.Sprintf("%s %s at level %d: %s", e.Class, e.Reason, e.Level, e.Detail)
}

// Audit accumulates counts and recoverable events over one generation run.
// Fatal errors abort generation directly and never appear here.
type Audit struct {
	Nodes      int
	Columns    int
	BeamsX     int
	BeamsY     int
	Connectors int
	Borders    int
	Fixed      int
	FixedWant  int

	Skips []SkipEvent
}

func (a *Audit) record(e SkipEvent) {
	a.Skips = append(a.Skips, e)
}

// Elements returns the total number of elements created.
func (a *Audit) Elements() int {
	return a.Columns + a.BeamsX + a.BeamsY + a.Connectors + a.Borders
}

// SkipCount returns the number of skipped elements for the given reason.
func (a *Audit) SkipCount(r SkipReason) int {
	n := 0
	for _, e := range a.Skips {
		if e.Reason == r {
			n++
		}
	}
	return n
}

// Skipped returns the total number of skipped elements.
func (a *Audit) Skipped() int { return len(a.Skips) }
