package lattice

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/IVANSLASH/framegen/pkg/model"
)

// TagAllocator hands out tags for nodes and elements from one monotonically
// increasing counter, so tag order equals creation order across both kinds.
// It is a value threaded through the run, never a process-wide global.
type TagAllocator struct {
	next int
}

// NewTagAllocator returns an allocator whose first tag is 1.
func NewTagAllocator() *TagAllocator {
	return &TagAllocator{next: 1}
}

// Next returns the next tag.
func (t *TagAllocator) Next() int {
	n := t.next
	t.next++
	return n
}

// Options configures a generation run.
type Options struct {
	// Logger receives progress and skip events. Nil discards output.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Generate builds the structural model for the spec: nodes first, then
// columns, then beams, then base restraints. Identical input produces an
// identical model and tag assignment order.
//
// Fatal failures (ErrConfiguration, section.ErrGroupUndefined,
// ErrBoundaryInsufficient) return a nil model. Recoverable per-element
// failures are skipped, logged, and accumulated on the returned Audit.
func Generate(s Spec, opts Options) (*model.Model, *Audit, error) {
	if err := s.Check(); err != nil {
		return nil, nil, err
	}
	ax, err := buildAxes(s)
	if err != nil {
		return nil, nil, err
	}

	r := &run{
		spec:   s,
		ax:     ax,
		eps:    s.Tolerance(),
		m:      model.New(),
		tags:   NewTagAllocator(),
		audit:  &Audit{},
		logger: opts.logger(),
	}

	r.createNodes()
	if err := r.connectColumns(); err != nil {
		return nil, nil, err
	}
	r.connectBeams()
	if err := r.applyBoundary(); err != nil {
		return nil, nil, err
	}

	r.logger.Info("model generated",
		"nodes", r.audit.Nodes,
		"elements", r.audit.Elements(),
		"skipped", r.audit.Skipped(),
		"fixed", r.audit.Fixed)
	return r.m, r.audit, nil
}

// run carries the mutable state of one generation.
type run struct {
	spec   Spec
	ax     axes
	eps    float64
	m      *model.Model
	tags   *TagAllocator
	audit  *Audit
	logger *log.Logger
}

// footprintAt decides whether a node exists at lattice position (i,j,k) and
// classifies it. Core nodes exist at every level. Cantilever nodes exist
// from level 1 upward, only where exactly one cantilever side applies; the
// diagonal corner positions where two sides would meet stay empty.
func (r *run) footprintAt(i, j, k int) (model.Footprint, bool) {
	if r.ax.isCoreI(i) && r.ax.isCoreJ(j) {
		return model.FootprintCore, true
	}
	if k == 0 {
		// Cantilevers never touch the base plane; foundation restraints
		// apply to the core footprint only.
		return 0, false
	}
	switch {
	case r.ax.leftJ >= 0 && j == r.ax.leftJ && r.ax.isCoreI(i):
		return model.FootprintCantilever, true
	case r.ax.rightJ >= 0 && j == r.ax.rightJ && r.ax.isCoreI(i):
		return model.FootprintCantilever, true
	case r.ax.frontI >= 0 && i == r.ax.frontI && r.ax.isCoreJ(j):
		return model.FootprintCantilever, true
	}
	return 0, false
}

// createNodes iterates the index space level by level, row by row, and
// creates every accepted node, recording the index→tag mapping.
func (r *run) createNodes() {
	for k := 0; k < r.ax.levels(); k++ {
		for j := range r.ax.ys {
			for i := range r.ax.xs {
				fp, ok := r.footprintAt(i, j, k)
				if !ok {
					continue
				}
				tag := model.NodeTag(r.tags.Next())
				n := model.Node{
					Tag:       tag,
					X:         r.ax.xs[i],
					Y:         r.ax.ys[j],
					Z:         r.ax.zs[k],
					Level:     k,
					Footprint: fp,
				}
				if err := r.m.AddNode(n, model.Index{I: i, J: j, K: k}); err != nil {
					// Tags come from a fresh allocator and each (i,j,k) is
					// visited once, so this indicates a generator bug.
					panic(fmt.Sprintf("lattice: %v", err))
				}
				r.audit.Nodes++
				r.logger.Debug("node", "tag", tag, "i", i, "j", j, "k", k, "fp", fp)
			}
		}
	}
}

// connectColumns creates one column per story per core footprint position.
// A missing endpoint is recorded and skipped; an undefined custom section
// group aborts generation.
func (r *run) connectColumns() error {
	for k := 0; k < r.spec.NumFloor; k++ {
		for i := 0; i <= r.ax.nx; i++ {
			for cj := 0; cj <= r.ax.ny; cj++ {
				j := r.ax.coreRow(cj)
				lo, okLo := r.m.TagAt(model.Index{I: i, J: j, K: k})
				hi, okHi := r.m.TagAt(model.Index{I: i, J: j, K: k + 1})
				if !okLo || !okHi {
					ev := SkipEvent{
						Reason: SkipGeometryLookup,
						Class:  model.ClassColumn.String(),
						Level:  k,
						Detail: fmt.Sprintf("missing endpoint at (%d,%d)", i, j),
					}
					r.audit.record(ev)
					r.logger.Warn("skipping column", "level", k, "i", i, "j", j)
					continue
				}
				group, err := r.spec.Columns.GroupFor(i, cj, r.ax.nx, r.ax.ny)
				if err != nil {
					return err
				}
				e := model.Element{
					Tag:          model.ElementTag(r.tags.Next()),
					NodeI:        lo,
					NodeJ:        hi,
					Class:        model.ClassColumn,
					SectionGroup: group,
				}
				if err := r.m.AddElement(e); err != nil {
					panic(fmt.Sprintf("lattice: %v", err))
				}
				r.audit.Columns++
			}
		}
	}
	return nil
}

// applyBoundary fixes all degrees of freedom on every core node at the base
// level and checks the restraint count against the footprint.
func (r *run) applyBoundary() error {
	want := (r.ax.nx + 1) * (r.ax.ny + 1)
	fixed := 0
	for cj := 0; cj <= r.ax.ny; cj++ {
		for i := 0; i <= r.ax.nx; i++ {
			tag, ok := r.m.TagAt(model.Index{I: i, J: r.ax.coreRow(cj), K: 0})
			if !ok {
				continue
			}
			if r.m.Fix(tag) {
				fixed++
			}
		}
	}
	r.audit.Fixed = fixed
	r.audit.FixedWant = want
	if fixed != want {
		return fmt.Errorf("%w: fixed %d of %d base nodes", ErrBoundaryInsufficient, fixed, want)
	}
	r.logger.Debug("boundary conditions applied", "fixed", fixed)
	return nil
}

// orthogonal reports whether the two nodes differ only along the given
// horizontal axis within tolerance. alongX selects the X direction.
func (r *run) orthogonal(a, b model.Node, alongX bool) bool {
	dz := math.Abs(a.Z - b.Z)
	if dz > r.eps {
		return false
	}
	if alongX {
		return math.Abs(a.Y-b.Y) <= r.eps
	}
	return math.Abs(a.X-b.X) <= r.eps
}
