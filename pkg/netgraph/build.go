package netgraph

import (
	"github.com/matzehuels/fcviz/pkg/dag"
	"github.com/matzehuels/fcviz/pkg/errors"
	"github.com/matzehuels/fcviz/pkg/layers"
)

// Options controls label content.
type Options struct {
	// ShowValues adds weights, biases and activation parameters to labels.
	ShowValues bool
}

// Build expands recs into a validated layered graph.
//
// Records are taken in slice order; the i-th record is drawn as layer i.
// Build fails with an INVALID_SHAPE error when a layer has no weights, when
// adjacent sizes disagree, or when a weight or bias index falls outside the
// stored data. No partial graph is returned.
func Build(recs []layers.Record, opts Options) (*dag.DAG, error) {
	if len(recs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidModel, "no layers to build")
	}

	b := &builder{g: dag.New(), opts: opts}
	last := len(recs) - 1
	for i, r := range recs {
		if err := checkLayer(i, r, recs); err != nil {
			return nil, err
		}
		if i == 0 {
			for s := range r.InputSize {
				if err := b.node(InputRef(s), r); err != nil {
					return nil, err
				}
			}
		}

		for o := range r.OutputSize {
			dst := UnitRef(i, o)
			if err := b.node(dst, r); err != nil {
				return nil, err
			}
			if err := b.bias(i, o, r); err != nil {
				return nil, err
			}
			for s := range r.InputSize {
				src := InputRef(s)
				if i > 0 {
					src = UnitRef(i-1, s)
				}
				w, ok := r.Weight(o, s)
				if !ok {
					rows, cols := r.Weights.Dims()
					return nil, errors.New(errors.ErrCodeInvalidShape,
						"%s: weight index [%d, %d] out of range for %dx%d matrix", layers.CanonicalID(i), o, s, rows, cols)
				}
				if err := b.edge(src, dst, weightLabel(o, s, w, opts.ShowValues)); err != nil {
					return nil, err
				}
			}

			if i == last {
				out := OutputRef(i, o)
				if err := b.node(out, r); err != nil {
					return nil, err
				}
				if err := b.edge(dst, out, ""); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := b.g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "graph validation")
	}
	return b.g, nil
}

func checkLayer(i int, r layers.Record, recs []layers.Record) error {
	id := layers.CanonicalID(i)
	if r.Weights == nil {
		return errors.New(errors.ErrCodeInvalidShape, "%s (%s) has no weight", id, r.Path)
	}
	if r.InputSize <= 0 || r.OutputSize <= 0 {
		return errors.New(errors.ErrCodeInvalidShape, "%s has empty shape %d→%d", id, r.InputSize, r.OutputSize)
	}
	if rows, cols := r.Weights.Dims(); rows != r.OutputSize || cols != r.InputSize {
		return errors.New(errors.ErrCodeInvalidShape,
			"%s (%s) weight is %dx%d but the layer maps %d inputs to %d outputs",
			id, r.Path, rows, cols, r.InputSize, r.OutputSize)
	}
	if i > 0 && recs[i-1].OutputSize != r.InputSize {
		return errors.New(errors.ErrCodeInvalidShape,
			"%s expects %d inputs but %s produces %d", id, r.InputSize, layers.CanonicalID(i-1), recs[i-1].OutputSize)
	}
	return nil
}

type builder struct {
	g    *dag.DAG
	opts Options
}

func (b *builder) node(ref NodeRef, r layers.Record) error {
	err := b.g.AddNode(dag.Node{
		ID:    ref.ID(),
		Row:   ref.Row(),
		Label: label(ref, r, b.opts.ShowValues),
		Kind:  ref.Kind.dagKind(),
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "add node %s", ref.ID())
	}
	return nil
}

func (b *builder) edge(from, to NodeRef, text string) error {
	if err := b.g.AddEdge(dag.Edge{From: from.ID(), To: to.ID(), Label: text}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "add edge %s -> %s", from.ID(), to.ID())
	}
	return nil
}

// bias checks that a present bias vector covers unit o.
func (b *builder) bias(i, o int, r layers.Record) error {
	if !r.HasBias() {
		return nil
	}
	if _, ok := r.Bias(o); !ok {
		return errors.New(errors.ErrCodeInvalidShape,
			"%s: bias index %d out of range for length %d", layers.CanonicalID(i), o, r.Biases.Len())
	}
	return nil
}
