package layers

import (
	"fmt"

	"github.com/matzehuels/fcviz/pkg/model"
)

// linear returns weight and bias parameters for a layer at path with
// deterministic values: weight (o, s) = o + s/10, bias o = -o.
func linear(path string, in, out int) []model.Parameter {
	w := make([]float64, in*out)
	for o := 0; o < out; o++ {
		for s := 0; s < in; s++ {
			w[o*in+s] = float64(o) + float64(s)/10
		}
	}
	b := make([]float64, out)
	for o := range b {
		b[o] = -float64(o)
	}
	return []model.Parameter{
		{Name: path + ".weight", Tensor: model.Tensor{Shape: []int{out, in}, Data: w}},
		{Name: path + ".bias", Tensor: model.Tensor{Shape: []int{out}, Data: b}},
	}
}

// sequential builds a Sequential of Linear layers chaining sizes, with the
// between modules declared after every layer except the last.
func sequential(sizes []int, between ...string) *model.Static {
	m := &model.Static{Mods: []model.Module{{Name: "", Type: "Sequential"}}}
	idx := 0
	for i := 0; i+1 < len(sizes); i++ {
		path := fmt.Sprint(idx)
		m.Mods = append(m.Mods, model.Module{Name: path, Type: "Linear"})
		m.Params = append(m.Params, linear(path, sizes[i], sizes[i+1])...)
		idx++
		for _, typ := range between {
			if i+2 == len(sizes) {
				break
			}
			m.Mods = append(m.Mods, model.Module{Name: fmt.Sprint(idx), Type: typ})
			idx++
		}
	}
	return m
}
