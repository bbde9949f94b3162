package layers

import "strconv"

// idPrefix is the canonical layer id prefix.
const idPrefix = "layer."

// CanonicalID returns the canonical id of the layer at index i.
func CanonicalID(i int) string { return idPrefix + strconv.Itoa(i) }

// normalize renumbers entries in first-seen order and converts them into
// records. Original paths survive only in Record.Path.
func normalize(c *collection) []Record {
	recs := make([]Record, 0, c.len())
	for i, e := range c.entries() {
		r := Record{
			ID:              CanonicalID(i),
			Index:           i,
			Path:            e.path,
			Activation:      e.activation,
			ActivationParam: e.activationParam,
		}
		if e.weights != nil {
			r.Weights, r.InputSize, r.OutputSize = weightMatrix(*e.weights)
		}
		if e.biases != nil {
			r.Biases = biasVector(*e.biases)
		}
		recs = append(recs, r)
	}
	return recs
}
