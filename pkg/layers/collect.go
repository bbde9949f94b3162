package layers

import (
	"slices"

	"github.com/matzehuels/fcviz/pkg/model"
)

const (
	weightName = "weight"
	biasName   = "bias"
)

// entry is the partial attribute set gathered for one module path.
type entry struct {
	path    string
	weights *model.Tensor
	biases  *model.Tensor

	activation      string
	activationParam []float64
}

// collection maps module paths to entries, remembering first-seen order.
type collection struct {
	order  []string
	byPath map[string]*entry
}

func newCollection() *collection {
	return &collection{byPath: make(map[string]*entry)}
}

func (c *collection) get(path string) (*entry, bool) {
	e, ok := c.byPath[path]
	return e, ok
}

func (c *collection) getOrCreate(path string) *entry {
	if e, ok := c.byPath[path]; ok {
		return e
	}
	e := &entry{path: path}
	c.byPath[path] = e
	c.order = append(c.order, path)
	return e
}

func (c *collection) len() int { return len(c.order) }

// entries returns the entries in first-seen order.
func (c *collection) entries() []*entry {
	out := make([]*entry, len(c.order))
	for i, p := range c.order {
		out[i] = c.byPath[p]
	}
	return out
}

// collect groups weight and bias parameters by owning module path.
// Parameters with any other final segment are skipped.
func collect(params []model.Parameter) (*collection, error) {
	c := newCollection()
	for _, p := range params {
		leaf := model.LeafName(p.Name)
		if leaf != weightName && leaf != biasName {
			continue
		}
		if err := p.Tensor.Validate(p.Name); err != nil {
			return nil, err
		}

		t := model.Tensor{Shape: slices.Clone(p.Tensor.Shape), Data: p.Tensor.Data}
		e := c.getOrCreate(model.OwnerPath(p.Name))
		if leaf == weightName {
			e.weights = &t
		} else {
			e.biases = &t
		}
	}
	return c, nil
}
