// Package model defines the structural model value types produced by the
// lattice generator: nodes, frame elements, and the queries a downstream
// materializer, renderer, or reporter needs.
//
// A Model is a plain value. It carries no reference to any solving engine;
// applying it to an engine is the materializer's job. This keeps generation
// deterministic and testable: two runs with the same configuration produce
// byte-identical node and element tables.
package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDuplicateTag is returned by [Model.AddNode] and [Model.AddElement]
	// when a tag is already in use. Tags are unique across the model lifetime
	// and are never reused.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrUnknownNode is returned by [Model.AddElement] when an endpoint tag
	// does not refer to an existing node.
	ErrUnknownNode = errors.New("unknown node tag")

	// ErrDuplicateIndex is returned by [Model.AddNode] when the index triple
	// is already mapped to another node. The index→tag map is a bijection.
	ErrDuplicateIndex = errors.New("duplicate node index")
)

// NodeTag uniquely identifies a node. Tags are assigned in creation order.
type NodeTag int

// ElementTag uniquely identifies an element. Node and element tags are drawn
// from the same allocator, so ordering is stable across both kinds.
type ElementTag int

// Index addresses a lattice position: column line I, row line J, level K.
// Level 0 is the base plane. When a left cantilever is active, row 0 is the
// cantilever row and core rows start at 1; the generator owns that offset.
type Index struct {
	I, J, K int
}

// Footprint classifies the horizontal position of a node.
type Footprint int

const (
	// FootprintCore marks a node on the rectangular core grid.
	FootprintCore Footprint = iota
	// FootprintCantilever marks a node on a cantilever extension. Cantilever
	// nodes never exist at level 0.
	FootprintCantilever
)

// String returns "core" or "cantilever".
func (f Footprint) String() string {
	if f == FootprintCantilever {
		return "cantilever"
	}
	return "core"
}

// ElementClass identifies the structural role of an element. Renderers use it
// for color-coding and reporters for labeling result rows.
type ElementClass int

const (
	// ClassColumn is a vertical element connecting two stacked core nodes.
	ClassColumn ElementClass = iota
	// ClassBeamX is a horizontal element spanning one bay along X.
	ClassBeamX
	// ClassBeamY is a horizontal element spanning one bay along Y.
	ClassBeamY
	// ClassCantileverConnector joins the last core node to the adjacent
	// cantilever node in the same row or column.
	ClassCantileverConnector
	// ClassCantileverBorder runs along the free edge of a cantilever,
	// joining adjacent cantilever nodes.
	ClassCantileverBorder
)

// String returns a short lower-case name for the class.
func (c ElementClass) String() string {
	switch c {
	case ClassColumn:
		return "column"
	case ClassBeamX:
		return "beam-x"
	case ClassBeamY:
		return "beam-y"
	case ClassCantileverConnector:
		return "cantilever-connector"
	case ClassCantileverBorder:
		return "cantilever-border"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// IsBeam reports whether the class is any horizontal element.
func (c ElementClass) IsBeam() bool { return c != ClassColumn }

// Node is one lattice point. All fields except Fixed are immutable after
// creation; Fixed is set once by the boundary-condition step.
type Node struct {
	Tag       NodeTag
	X, Y, Z   float64
	Level     int
	Footprint Footprint
	Fixed     bool
}

// Element is one frame member. Endpoints are ordered low→high lattice index.
// SectionGroup selects the cross-section dimensions assigned by the active
// column-section policy (group 0 means the shared beam section).
type Element struct {
	Tag          ElementTag
	NodeI, NodeJ NodeTag
	Class        ElementClass
	SectionGroup int
}

// Model is the generated structural model: nodes, elements, and the
// index→tag map. Build it through AddNode/AddElement; the mutators enforce
// tag uniqueness and endpoint existence so a populated Model is internally
// consistent by construction. Model is not safe for concurrent mutation.
type Model struct {
	nodes    []Node
	elements []Element

	nodeByTag map[NodeTag]int // position in nodes; stable because nodes is append-only
	elemTags  map[ElementTag]struct{}
	tagByIdx  map[Index]NodeTag
	idxByTag  map[NodeTag]Index
}

// New returns an empty model.
func New() *Model {
	return &Model{
		nodeByTag: make(map[NodeTag]int),
		elemTags:  make(map[ElementTag]struct{}),
		tagByIdx:  make(map[Index]NodeTag),
		idxByTag:  make(map[NodeTag]Index),
	}
}

// AddNode appends a node and records its index mapping.
// Returns ErrDuplicateTag or ErrDuplicateIndex on collisions.
func (m *Model) AddNode(n Node, at Index) error {
	if _, exists := m.nodeByTag[n.Tag]; exists {
		return fmt.Errorf("%w: node %d", ErrDuplicateTag, n.Tag)
	}
	if prev, exists := m.tagByIdx[at]; exists {
		return fmt.Errorf("%w: (%d,%d,%d) already node %d", ErrDuplicateIndex, at.I, at.J, at.K, prev)
	}
	m.nodes = append(m.nodes, n)
	m.nodeByTag[n.Tag] = len(m.nodes) - 1
	m.tagByIdx[at] = n.Tag
	m.idxByTag[n.Tag] = at
	return nil
}

// AddElement appends an element. Both endpoints must already exist.
func (m *Model) AddElement(e Element) error {
	if _, exists := m.elemTags[e.Tag]; exists {
		return fmt.Errorf("%w: element %d", ErrDuplicateTag, e.Tag)
	}
	if _, ok := m.nodeByTag[e.NodeI]; !ok {
		return fmt.Errorf("%w: element %d endpoint %d", ErrUnknownNode, e.Tag, e.NodeI)
	}
	if _, ok := m.nodeByTag[e.NodeJ]; !ok {
		return fmt.Errorf("%w: element %d endpoint %d", ErrUnknownNode, e.Tag, e.NodeJ)
	}
	m.elements = append(m.elements, e)
	m.elemTags[e.Tag] = struct{}{}
	return nil
}

// Fix marks the node as fully restrained. It reports whether the node exists.
func (m *Model) Fix(tag NodeTag) bool {
	i, ok := m.nodeByTag[tag]
	if !ok {
		return false
	}
	m.nodes[i].Fixed = true
	return true
}

// Node returns the node with the given tag.
func (m *Model) Node(tag NodeTag) (Node, bool) {
	i, ok := m.nodeByTag[tag]
	if !ok {
		return Node{}, false
	}
	return m.nodes[i], true
}

// TagAt returns the node tag mapped to the lattice index, if any.
func (m *Model) TagAt(at Index) (NodeTag, bool) {
	t, ok := m.tagByIdx[at]
	return t, ok
}

// IndexOf returns the lattice index of a node tag, if any.
func (m *Model) IndexOf(tag NodeTag) (Index, bool) {
	at, ok := m.idxByTag[tag]
	return at, ok
}

// Nodes returns the nodes in creation (tag) order. The returned slice is the
// model's backing store; treat it as read-only.
func (m *Model) Nodes() []Node { return m.nodes }

// Elements returns the elements in creation order. Read-only view.
func (m *Model) Elements() []Element { return m.elements }

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int { return len(m.nodes) }

// ElementCount returns the number of elements.
func (m *Model) ElementCount() int { return len(m.elements) }

// NodesAtLevel returns the nodes at level k in creation order.
func (m *Model) NodesAtLevel(k int) []Node {
	var out []Node
	for _, n := range m.nodes {
		if n.Level == k {
			out = append(out, n)
		}
	}
	return out
}

// ElementsByClass returns the elements of the given class in creation order.
func (m *Model) ElementsByClass(c ElementClass) []Element {
	var out []Element
	for _, e := range m.elements {
		if e.Class == c {
			out = append(out, e)
		}
	}
	return out
}

// FixedNodes returns the fully restrained nodes in creation order.
func (m *Model) FixedNodes() []Node {
	var out []Node
	for _, n := range m.nodes {
		if n.Fixed {
			out = append(out, n)
		}
	}
	return out
}

// Length returns the distance between the element's endpoints.
func (m *Model) Length(e Element) float64 {
	a, okA := m.Node(e.NodeI)
	b, okB := m.Node(e.NodeJ)
	if !okA || !okB {
		return 0
	}
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
