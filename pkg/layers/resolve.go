package layers

import (
	"slices"

	"github.com/matzehuels/fcviz/pkg/model"
)

// resolve refines the collected entries against the module listing and
// returns a new collection; the input is not modified.
//
// Two rules apply in declaration order:
//   - an entry whose module type is an activation is dropped
//   - a surviving entry whose next module is an activation gets that
//     activation, with the activation module's own weight if it has one
//
// The last module has no successor and never attaches anything.
func resolve(c *collection, mods []model.Module, allow Allowlist) *collection {
	excluded := make(map[string]bool)
	for _, m := range mods {
		if _, ok := c.get(m.Name); ok && allow.Contains(m.Type) {
			excluded[m.Name] = true
		}
	}

	attached := make(map[string]model.Module)
	for i := 0; i+1 < len(mods); i++ {
		cur, next := mods[i], mods[i+1]
		if _, ok := c.get(cur.Name); !ok || excluded[cur.Name] {
			continue
		}
		if allow.Contains(next.Type) {
			attached[cur.Name] = next
		}
	}

	out := newCollection()
	for _, e := range c.entries() {
		if excluded[e.path] {
			continue
		}
		ne := out.getOrCreate(e.path)
		ne.weights, ne.biases = e.weights, e.biases

		act, ok := attached[e.path]
		if !ok {
			continue
		}
		ne.activation = act.Type
		if src, ok := c.get(act.Name); ok && src.weights != nil {
			ne.activationParam = slices.Clone(src.weights.Data)
		}
	}
	return out
}
