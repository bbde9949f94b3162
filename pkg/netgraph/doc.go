// Package netgraph expands a canonical layer sequence into a per-neuron
// node/edge graph.
//
// Every node is addressed by a structured [NodeRef]; display text is
// produced only when the node is added to the graph. For a network with k
// layers the rows are:
//
//	row 0      input features     input.{u}        "Input {u}"
//	row L+1    units of layer L   layer.{L}.node.{u}
//	row k+1    output features    output.{u}       "Output {u}"
//
// Each unit is connected to every unit of the previous row, and each unit
// of the final layer to its own output feature.
//
// With [Options.ShowValues] unset the labels carry layer and unit indices
// only, which yields a structure-only diagram.
package netgraph
