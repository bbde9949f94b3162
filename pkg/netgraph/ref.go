package netgraph

import (
	"fmt"

	"github.com/matzehuels/fcviz/pkg/dag"
)

// Kind says which part of the network a node belongs to.
type Kind int

const (
	Input Kind = iota
	Unit
	Output
)

func (k Kind) dagKind() dag.NodeKind {
	switch k {
	case Input:
		return dag.NodeKindInput
	case Output:
		return dag.NodeKindOutput
	default:
		return dag.NodeKindUnit
	}
}

// NodeRef identifies a node structurally.
//
// For Unit refs Layer is the canonical layer index. For Output refs it is
// the index of the final layer, which places the output row directly
// after it. Input refs ignore Layer.
type NodeRef struct {
	Kind  Kind
	Layer int
	Unit  int
}

// InputRef refers to input feature u.
func InputRef(u int) NodeRef { return NodeRef{Kind: Input, Unit: u} }

// UnitRef refers to unit u of layer l.
func UnitRef(l, u int) NodeRef { return NodeRef{Kind: Unit, Layer: l, Unit: u} }

// OutputRef refers to output feature u produced by the final layer last.
func OutputRef(last, u int) NodeRef { return NodeRef{Kind: Output, Layer: last, Unit: u} }

// ID returns the graph node id.
func (r NodeRef) ID() string {
	switch r.Kind {
	case Input:
		return fmt.Sprintf("input.%d", r.Unit)
	case Output:
		return fmt.Sprintf("output.%d", r.Unit)
	default:
		return fmt.Sprintf("layer.%d.node.%d", r.Layer, r.Unit)
	}
}

// Row returns the graph row the node lives in.
func (r NodeRef) Row() int {
	switch r.Kind {
	case Input:
		return 0
	case Output:
		return r.Layer + 2
	default:
		return r.Layer + 1
	}
}
