package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/IVANSLASH/framegen/pkg/model"
)

// WriteNodesCSV writes one row per node in tag order:
// tag, x, y, z, level, footprint, fixed.
func WriteNodesCSV(w io.Writer, m *model.Model) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tag", "x", "y", "z", "level", "footprint", "fixed"}); err != nil {
		return err
	}
	for _, n := range m.Nodes() {
		rec := []string{
			strconv.Itoa(int(n.Tag)),
			fmtF(n.X), fmtF(n.Y), fmtF(n.Z),
			strconv.Itoa(n.Level),
			n.Footprint.String(),
			strconv.FormatBool(n.Fixed),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteElementsCSV writes one row per element in tag order:
// tag, class, node_i, node_j, section_group, length.
func WriteElementsCSV(w io.Writer, m *model.Model) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tag", "class", "node_i", "node_j", "section_group", "length"}); err != nil {
		return err
	}
	for _, e := range m.Elements() {
		rec := []string{
			strconv.Itoa(int(e.Tag)),
			labelFor(e.Class),
			strconv.Itoa(int(e.NodeI)),
			strconv.Itoa(int(e.NodeJ)),
			strconv.Itoa(e.SectionGroup),
			fmtF(m.Length(e)),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtF(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
