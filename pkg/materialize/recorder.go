package materialize

import (
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/model"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// Call is one recorded engine primitive invocation.
type Call struct {
	Op   string // "section", "transf", "node", "fix", "element"
	Args string
}

// Recorder implements Engine by recording every call in order. It backs the
// materializer tests and doubles as a dry-run target for the CLI.
type Recorder struct {
	Calls []Call

	// FailOn, when non-empty, makes the named op return an error. Used to
	// test abort behavior.
	FailOn string
}

func (r *Recorder) record(op, format string, args ...any) error {
	if op == r.FailOn {
		return fmt.Errorf("recorder: forced %s failure", op)
	}
	r.Calls = append(r.Calls, Call{Op: op, Args: fmt.Sprintf(format, args...)})
	return nil
}

func (r *Recorder) Section(tag int, p section.Properties) error {
	return r.record("section", "%d A=%g Iz=%g Iy=%g J=%g", tag, p.A, p.Iz, p.Iy, p.J)
}

func (r *Recorder) GeomTransf(tag int) error {
	return r.record("transf", "%d", tag)
}

func (r *Recorder) Node(tag model.NodeTag, x, y, z float64) error {
	return r.record("node", "%d (%g,%g,%g)", tag, x, y, z)
}

func (r *Recorder) Fix(tag model.NodeTag) error {
	return r.record("fix", "%d", tag)
}

func (r *Recorder) Element(tag model.ElementTag, i, j model.NodeTag, sectionTag, transfTag int) error {
	return r.record("element", "%d %d-%d sec=%d transf=%d", tag, i, j, sectionTag, transfTag)
}

// Ops returns the recorded op names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

var _ Engine = (*Recorder)(nil)
