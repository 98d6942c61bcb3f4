package model

import (
	"encoding/json"
	"fmt"
)

// wireModel is the serialized form of a Model. Nodes carry their lattice
// index inline so the index map survives the round trip.
type wireModel struct {
	Nodes    []wireNode `json:"nodes"`
	Elements []Element  `json:"elements"`
}

type wireNode struct {
	Node
	At Index `json:"at"`
}

// Marshal encodes the model as JSON, including the index map.
func Marshal(m *Model) ([]byte, error) {
	w := wireModel{
		Nodes:    make([]wireNode, 0, len(m.nodes)),
		Elements: m.elements,
	}
	for _, n := range m.nodes {
		at, ok := m.IndexOf(n.Tag)
		if !ok {
			return nil, fmt.Errorf("node %d has no lattice index", n.Tag)
		}
		w.Nodes = append(w.Nodes, wireNode{Node: n, At: at})
	}
	return json.Marshal(w)
}

// Unmarshal decodes a model produced by Marshal. The result passes the same
// consistency checks as a freshly built model: duplicate tags, duplicate
// indices, or dangling element endpoints fail decoding.
func Unmarshal(data []byte) (*Model, error) {
	var w wireModel
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	m := New()
	for _, n := range w.Nodes {
		if err := m.AddNode(n.Node, n.At); err != nil {
			return nil, err
		}
	}
	for _, e := range w.Elements {
		if err := m.AddElement(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}
