// Package render turns a structural model into a connectivity diagram:
// Graphviz DOT text, optionally rendered to SVG. Levels become ranks and
// element classes are color-coded, which makes indexing mistakes (missing
// nodes, skipped beams) visible at a glance.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/IVANSLASH/framegen/pkg/model"
)

// Options configures DOT output.
type Options struct {
	// Detailed adds coordinates and footprint to node labels.
	// When false, only the tag is shown.
	Detailed bool
}

// class colors: columns grey, X beams blue, Y beams green, cantilever
// members orange shades.
var classColor = map[model.ElementClass]string{
	model.ClassColumn:              "grey40",
	model.ClassBeamX:               "dodgerblue3",
	model.ClassBeamY:               "forestgreen",
	model.ClassCantileverConnector: "darkorange2",
	model.ClassCantileverBorder:    "darkorange4",
}

// ToDOT converts the model to Graphviz DOT. Nodes of one level share a rank;
// fixed nodes are drawn filled. The result renders with [SVG].
func ToDOT(m *model.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph model {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=circle, fontsize=10, margin=0.02];\n")
	buf.WriteString("\n")

	maxLevel := 0
	for _, n := range m.Nodes() {
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}
	for k := 0; k <= maxLevel; k++ {
		fmt.Fprintf(&buf, "  { rank=same;")
		for _, n := range m.NodesAtLevel(k) {
			fmt.Fprintf(&buf, " n%d;", n.Tag)
		}
		buf.WriteString(" }\n")
	}
	buf.WriteString("\n")

	for _, n := range m.Nodes() {
		attrs := fmt.Sprintf("label=%q", nodeLabel(n, opts.Detailed))
		if n.Fixed {
			attrs += ", style=filled, fillcolor=grey80"
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.Tag, attrs)
	}

	buf.WriteString("\n")
	for _, e := range m.Elements() {
		fmt.Fprintf(&buf, "  n%d -- n%d [color=%s];\n", e.NodeI, e.NodeJ, classColor[e.Class])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n model.Node, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%d", n.Tag)
	}
	return fmt.Sprintf("%d\n(%.1f,%.1f,%.1f)\n%s", n.Tag, n.X, n.Y, n.Z, n.Footprint)
}

// SVG renders DOT text to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
