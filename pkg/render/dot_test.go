package render

import (
	"context"
	"strings"
	"testing"

	"github.com/IVANSLASH/framegen/pkg/model"
)

func twoLevel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()
	nodes := []struct {
		tag  model.NodeTag
		z    float64
		lvl  int
		at   model.Index
		foot model.Footprint
	}{
		{1, 0, 0, model.Index{I: 0, J: 0, K: 0}, model.FootprintCore},
		{2, 0, 0, model.Index{I: 1, J: 0, K: 0}, model.FootprintCore},
		{3, 3, 1, model.Index{I: 0, J: 0, K: 1}, model.FootprintCore},
		{4, 3, 1, model.Index{I: 1, J: 0, K: 1}, model.FootprintCore},
		{5, 3, 1, model.Index{I: 2, J: 0, K: 1}, model.FootprintCantilever},
	}
	xs := []float64{0, 5, 0, 5, 6.2}
	for i, n := range nodes {
		err := m.AddNode(model.Node{
			Tag: n.tag, X: xs[i], Z: n.z, Level: n.lvl, Footprint: n.foot,
		}, n.at)
		if err != nil {
			t.Fatal(err)
		}
	}
	m.Fix(1)
	m.Fix(2)

	elems := []model.Element{
		{Tag: 6, NodeI: 1, NodeJ: 3, Class: model.ClassColumn},
		{Tag: 7, NodeI: 2, NodeJ: 4, Class: model.ClassColumn},
		{Tag: 8, NodeI: 3, NodeJ: 4, Class: model.ClassBeamX},
		{Tag: 9, NodeI: 4, NodeJ: 5, Class: model.ClassCantileverConnector},
	}
	for _, e := range elems {
		if err := m.AddElement(e); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(twoLevel(t), Options{})

	if !strings.HasPrefix(dot, "graph model {") {
		t.Errorf("output does not open an undirected graph:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("output is not closed")
	}

	// One rank group per level.
	if got := strings.Count(dot, "rank=same"); got != 2 {
		t.Errorf("rank groups = %d, want 2", got)
	}

	// Fixed base nodes are filled, free nodes are not.
	for _, frag := range []string{
		`n1 [label="1", style=filled, fillcolor=grey80];`,
		`n3 [label="3"];`,
	} {
		if !strings.Contains(dot, frag) {
			t.Errorf("output missing %q:\n%s", frag, dot)
		}
	}

	// Edges carry per-class colors.
	for _, frag := range []string{
		"n1 -- n3 [color=grey40];",
		"n3 -- n4 [color=dodgerblue3];",
		"n4 -- n5 [color=darkorange2];",
	} {
		if !strings.Contains(dot, frag) {
			t.Errorf("output missing %q:\n%s", frag, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(twoLevel(t), Options{Detailed: true})

	if !strings.Contains(dot, "(6.2,0.0,3.0)") {
		t.Errorf("detailed label missing coordinates:\n%s", dot)
	}
	if !strings.Contains(dot, "cantilever") {
		t.Error("detailed label missing footprint")
	}
}

func TestToDOTEmptyModel(t *testing.T) {
	dot := ToDOT(model.New(), Options{})
	if !strings.Contains(dot, "graph model {") {
		t.Errorf("unexpected output for empty model:\n%s", dot)
	}
}

func TestSVGRejectsMalformedDOT(t *testing.T) {
	if _, err := SVG(context.Background(), "graph {"); err == nil {
		t.Error("expected error for malformed DOT")
	}
}
