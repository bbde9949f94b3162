package io

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/matzehuels/fcviz/pkg/dag"
)

func TestWriteJSON(t *testing.T) {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "input.0", Row: 0, Label: "Input 0", Kind: dag.NodeKindInput})
	_ = g.AddNode(dag.Node{ID: "layer.0.node.0", Row: 1, Label: "Layer 0, Node 0\nNo activation"})
	_ = g.AddNode(dag.Node{ID: "output.0", Row: 2, Label: "Output 0", Kind: dag.NodeKindOutput})
	_ = g.AddEdge(dag.Edge{From: "input.0", To: "layer.0.node.0", Label: "Weight 0 0"})
	_ = g.AddEdge(dag.Edge{From: "layer.0.node.0", To: "output.0"})

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got Graph
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := Graph{
		Nodes: []Node{
			{ID: "input.0", Row: 0, Kind: "input", Label: "Input 0"},
			{ID: "layer.0.node.0", Row: 1, Kind: "unit", Label: "Layer 0, Node 0\nNo activation"},
			{ID: "output.0", Row: 2, Kind: "output", Label: "Output 0"},
		},
		Edges: []Edge{
			{From: "input.0", To: "layer.0.node.0", Label: "Weight 0 0"},
			{From: "layer.0.node.0", To: "output.0"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WriteJSON() = %+v, want %+v", got, want)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"to": "output.0",`)) {
		t.Error("unlabeled edge carries a label field")
	}
}
