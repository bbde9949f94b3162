package layers

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/fcviz/pkg/model"
)

// Record is one logical fully-connected layer.
type Record struct {
	ID    string // canonical id, "layer.{Index}"
	Index int    // position in declaration order, from 0

	// Path is the originating module path. It is kept for diagnostics only;
	// graph building works from Index.
	Path string

	Weights    *mat.Dense    // OutputSize rows; nil if the layer had no weight
	Biases     *mat.VecDense // nil if the layer has no bias
	InputSize  int
	OutputSize int

	// Activation is the type name of the activation module declared
	// immediately after this layer, or "" if there is none.
	Activation string
	// ActivationParam holds the activation module's own weight (e.g. the
	// PReLU slope), or nil if it has none.
	ActivationParam []float64
}

// HasBias reports whether the layer has a bias vector.
func (r Record) HasBias() bool { return r.Biases != nil }

// HasActivation reports whether an activation was attached.
func (r Record) HasActivation() bool { return r.Activation != "" }

// ActivationName returns the activation type or "No" when there is none,
// so that "<name> activation" reads naturally.
func (r Record) ActivationName() string {
	if r.Activation == "" {
		return "No"
	}
	return r.Activation
}

// Weight returns the weight connecting input s to output o.
// ok is false when (o, s) lies outside the stored matrix.
func (r Record) Weight(o, s int) (w float64, ok bool) {
	if r.Weights == nil || o < 0 || s < 0 {
		return 0, false
	}
	rows, cols := r.Weights.Dims()
	if o >= rows || s >= cols {
		return 0, false
	}
	return r.Weights.At(o, s), true
}

// Bias returns the bias of output o.
// ok is false when there is no bias or o is out of range.
func (r Record) Bias(o int) (b float64, ok bool) {
	if r.Biases == nil || o < 0 || o >= r.Biases.Len() {
		return 0, false
	}
	return r.Biases.AtVec(o), true
}

// ActivationParamAt returns the activation parameter that applies to
// output o: the single value of a scalar parameter, or the o-th value of a
// per-unit parameter. ok is false otherwise.
func (r Record) ActivationParamAt(o int) (v float64, ok bool) {
	switch n := len(r.ActivationParam); {
	case n == 1:
		return r.ActivationParam[0], true
	case n > 1 && o >= 0 && o < n:
		return r.ActivationParam[o], true
	}
	return 0, false
}

// weightMatrix converts a weight tensor to a matrix with Dim(0) rows.
// It returns the matrix together with the (input, output) sizes.
func weightMatrix(t model.Tensor) (*mat.Dense, int, int) {
	rows := t.Dim(0)
	cols := t.Len() / rows
	data := make([]float64, t.Len())
	copy(data, t.Data)

	out := rows
	in := t.Dim(t.Rank() - 1)
	if t.Rank() == 1 {
		in = out
	}
	return mat.NewDense(rows, cols, data), in, out
}

func biasVector(t model.Tensor) *mat.VecDense {
	data := make([]float64, t.Len())
	copy(data, t.Data)
	return mat.NewVecDense(len(data), data)
}
