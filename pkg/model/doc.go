// Package model describes a trained fully-connected network the way fcviz
// consumes it: as two ordered, read-only listings.
//
// # Overview
//
// A [Model] answers exactly two questions:
//
//   - [Model.Parameters]: every learnable parameter as a dotted path and a
//     tensor, e.g. "fc1.weight" → shape [4 3]
//   - [Model.Modules]: every submodule as a dotted path and a type name, in
//     declaration (depth-first, pre-order) order, including the root ""
//
// Anything that can answer these two queries can be visualized. The
// package does not care how the network was built or trained.
//
// # Sources
//
// A [Source] decodes a file into a [Model]. Three are built in:
//
//   - [JSONSource]: *.json files with "modules" and "parameters" arrays
//   - [TOMLSource]: *.toml files with [[modules]] and [[parameters]] tables
//   - [SafeTensorsSource]: *.safetensors weight files, with an optional
//     module listing stored in the "modules" metadata entry
//
// Use [Open] to detect the source from the file name and decode it:
//
//	m, err := model.Open("mlp.json")
//	if err != nil {
//	    return err
//	}
//	for _, p := range m.Parameters() {
//	    fmt.Println(p.Name, p.Tensor.Shape)
//	}
//
// # In-memory models
//
// [Static] is a plain value implementing [Model]. It is what every source
// returns and is convenient in tests:
//
//	m := &model.Static{
//	    Mods: []model.Module{{Name: "", Type: "Sequential"}, {Name: "0", Type: "Linear"}},
//	    Params: []model.Parameter{
//	        {Name: "0.weight", Tensor: model.Tensor{Shape: []int{1, 2}, Data: []float64{0.5, -0.5}}},
//	    },
//	}
package model
