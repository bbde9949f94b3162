// Package io exports layered network graphs as JSON.
//
// The output lists nodes and edges in the order the graph builder created
// them:
//
//	{
//	  "nodes": [
//	    {"id": "input.0", "row": 0, "kind": "input", "label": "Input 0"},
//	    {"id": "layer.0.node.0", "row": 1, "kind": "unit", "label": "Layer 0, Node 0\nNo activation"}
//	  ],
//	  "edges": [
//	    {"from": "input.0", "to": "layer.0.node.0", "label": "Weight 0 0"}
//	  ]
//	}
//
// This is the graph description handed to renderers, for callers that
// want to draw it with their own tools instead of Graphviz.
package io
