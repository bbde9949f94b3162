// Package pkg provides the libraries behind fcviz, a visualizer for trained
// fully-connected neural networks.
//
// # Overview
//
// fcviz turns the parameters of a feed-forward network into a layered
// node/edge diagram: one row of input nodes, one row per linear layer, and
// one row of output nodes. Every unit is a node and every weight is an edge.
//
// # Architecture
//
// The data flow through fcviz:
//
//	Model file (json, toml, safetensors)
//	         ↓
//	    [model] package (parameter and module listings)
//	         ↓
//	    [layers] package (ordered layer records)
//	         ↓
//	    [netgraph] package (node/edge graph on a [dag.DAG])
//	         ↓
//	    [render/nodelink] package (DOT, then Graphviz)
//	         ↓
//	    SVG/PNG/JPG/GIF/DOT/JSON output
//
// [pipeline] runs these stages in order and is what the CLI calls.
//
// # Quick Start
//
//	m, err := model.Open("mlp.json")
//	if err != nil {
//	    return err
//	}
//	opts := pipeline.DefaultOptions()
//	opts.ShowValues = true
//	result, err := pipeline.Run(ctx, m, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("mlp.svg", result.Artifact, 0o644)
//
// # Main Packages
//
// [model] - Read-only model view and file sources.
//
// [layers] - Layer extraction: finds linear layers, attaches the activation
// that directly follows each one, and orders them by parameter registration.
//
// [netgraph] - Graph building: node identities, rows, labels and weight edges.
//
// [dag] - Row-layered directed acyclic graph used as the graph container.
//
// [render/nodelink] - DOT generation and Graphviz rendering.
//
// [io] - JSON export of the built graph.
//
// [errors] - Coded errors shared by every package.
//
// [pipeline] - extract → build → render orchestration with options and stats.
//
// [buildinfo] - Version metadata injected at build time.
//
// [model]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/model
// [layers]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/layers
// [netgraph]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/netgraph
// [dag]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/dag
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/pipeline
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/buildinfo
//
// [dag.DAG]: https://pkg.go.dev/github.com/matzehuels/fcviz/pkg/dag#DAG
package pkg
