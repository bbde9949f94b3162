// Package layers reconstructs the ordered sequence of fully-connected layers
// hidden in a model's parameter and module listings.
//
// # Overview
//
// Extraction runs three stages over a [model.Model]:
//
//  1. Collect: group "weight" and "bias" parameters by their owning module
//     path ("fc1.weight" → "fc1"). Other parameters are ignored.
//  2. Resolve: walk the modules in declaration order. A module whose type
//     is in the activation [Allowlist] is never a layer, even when it owns
//     parameters (PReLU). A layer whose immediate successor in the listing
//     is an activation gets that activation attached, plus the activation's
//     own "weight" parameter when it has one.
//  3. Normalize: renumber the surviving layers "layer.0", "layer.1", ...
//     in the order their parameters were first seen.
//
// Call [Extract] to run all three:
//
//	recs, err := layers.Extract(m, layers.DefaultAllowlist())
//	for _, r := range recs {
//	    fmt.Println(r.ID, r.InputSize, "→", r.OutputSize, r.ActivationName())
//	}
//
// # Adjacency
//
// Activation attachment is strictly positional. In the listing
//
//	""        Sequential
//	"0"       Linear
//	"1"       Dropout
//	"2"       ReLU
//
// layer "0" gets no activation: its successor is Dropout. Extraction never
// searches past the immediate successor.
//
// # Shapes
//
// A weight of shape [out, in] becomes an out×in matrix. A rank-1 weight of
// length n (normalization scales, mostly) is kept as an n×1 matrix with
// InputSize = OutputSize = n; drawing such a layer with n > 1 fails later
// with a shape error. Extraction itself never validates that adjacent layer
// sizes agree.
//
// Every call rebuilds its result from scratch and never modifies the model.
package layers
