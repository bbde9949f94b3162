// Package dag provides a directed acyclic graph organised into rows, used
// to hold the per-neuron view of a feed-forward network.
//
// # Overview
//
// Each row is one depth of the network: row 0 holds the input features,
// row L+1 the units of layer L, and the last row the output features. Edges
// connect nodes in consecutive rows only, which is exactly the shape of a
// fully-connected stack.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [DAG.AddNode] and edges with
// [DAG.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "input.0", Row: 0, Kind: dag.NodeKindInput})
//	g.AddNode(dag.Node{ID: "layer.0.node.0", Row: 1})
//	g.AddEdge(dag.Edge{From: "input.0", To: "layer.0.node.0", Label: "Weight 0 0"})
//
// Use [DAG.Validate] to verify the row constraint, that the graph starts at
// input nodes and ends at output nodes, and acyclicity before rendering.
//
// # Ordering
//
// [DAG.Nodes], [DAG.Edges], [DAG.NodesInRow], [DAG.Sources] and [DAG.Sinks]
// all return insertion order. Building the same network twice therefore
// yields byte-identical DOT output.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use.
package dag
