package layers

import (
	"github.com/matzehuels/fcviz/pkg/errors"
	"github.com/matzehuels/fcviz/pkg/model"
)

// Extract reconstructs the canonical layer sequence of m.
//
// Records are ordered by the first appearance of their parameters and
// numbered from 0. An allowlist with no members falls back to
// [DefaultAllowlist].
//
// Extract returns an INVALID_MODEL error when a weight or bias tensor is
// malformed or when no layer survives.
func Extract(m model.Model, allow Allowlist) ([]Record, error) {
	if allow.Len() == 0 {
		allow = DefaultAllowlist()
	}

	c, err := collect(m.Parameters())
	if err != nil {
		return nil, err
	}
	recs := normalize(resolve(c, m.Modules(), allow))
	if len(recs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidModel, "model has no weight or bias parameters outside activation modules")
	}
	return recs, nil
}
