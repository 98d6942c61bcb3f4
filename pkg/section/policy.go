package section

import "fmt"

// Scheme selects how column positions map to section groups.
type Scheme int

const (
	// SchemeUniform assigns every column the same group (1).
	SchemeUniform Scheme = iota
	// SchemeExteriorInterior assigns perimeter columns group 1 and interior
	// columns group 2. A position is exterior iff it lies on the footprint
	// boundary: i ∈ {0, nx} or j ∈ {0, ny}.
	SchemeExteriorInterior
	// SchemeCustomGroups assigns each position its own group,
	// id = i*(ny+1) + j + 1, with dimensions supplied per group.
	SchemeCustomGroups
)

// String returns the scheme's configuration name.
func (s Scheme) String() string {
	switch s {
	case SchemeUniform:
		return "uniform"
	case SchemeExteriorInterior:
		return "exterior-interior"
	case SchemeCustomGroups:
		return "custom-groups"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Group ids reserved by the fixed schemes.
const (
	GroupUniform  = 1
	GroupExterior = 1
	GroupInterior = 2
)

// GroupPolicy resolves the section group for a core footprint position.
// The zero value is the uniform policy with no registered sections.
type GroupPolicy struct {
	Scheme Scheme
	// Sections carries the dimensions for every group the scheme can
	// produce. For custom groups a missing entry is fatal at resolution
	// time; the fixed schemes are validated up front instead.
	Sections *Registry
}

// GroupFor resolves the group id for core position (i, j) on an
// (nx+1)×(ny+1) footprint. For SchemeCustomGroups it returns
// ErrGroupUndefined when the computed id has no registered dimensions.
func (p GroupPolicy) GroupFor(i, j, nx, ny int) (int, error) {
	switch p.Scheme {
	case SchemeExteriorInterior:
		if i == 0 || i == nx || j == 0 || j == ny {
			return GroupExterior, nil
		}
		return GroupInterior, nil
	case SchemeCustomGroups:
		id := i*(ny+1) + j + 1
		if p.Sections == nil || !p.Sections.Has(id) {
			return 0, fmt.Errorf("%w: group %d at (%d,%d)", ErrGroupUndefined, id, i, j)
		}
		return id, nil
	default:
		return GroupUniform, nil
	}
}
