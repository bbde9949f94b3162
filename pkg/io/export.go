package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/fcviz/pkg/dag"
)

// Graph is the JSON form of a layered network graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one graph node.
type Node struct {
	ID    string `json:"id"`
	Row   int    `json:"row"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// Edge is one directed edge. Label is omitted for unlabeled edges.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// FromDAG converts g, keeping node and edge insertion order.
func FromDAG(g *dag.DAG) Graph {
	nodes := g.Nodes()
	edges := g.Edges()
	out := Graph{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = Node{ID: n.ID, Row: n.Row, Kind: n.Kind.String(), Label: n.Label}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{From: e.From, To: e.To, Label: e.Label}
	}
	return out
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDAG(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
