package model

import (
	"slices"

	"github.com/matzehuels/fcviz/pkg/errors"
)

// Tensor is a dense row-major array of float64 values.
// For a weight of shape [out, in], the value at (o, i) is Data[o*in+i].
type Tensor struct {
	Shape []int
	Data  []float64
}

// Rank returns the number of dimensions.
func (t Tensor) Rank() int { return len(t.Shape) }

// Len returns the number of stored values.
func (t Tensor) Len() int { return len(t.Data) }

// Dim returns the size of axis i, or 0 if the axis does not exist.
func (t Tensor) Dim(i int) int {
	if i < 0 || i >= len(t.Shape) {
		return 0
	}
	return t.Shape[i]
}

// Validate checks that the shape is well formed and matches the data length.
func (t Tensor) Validate(name string) error {
	return errors.ValidateShape(name, t.Shape, len(t.Data))
}

// Parameter is one learnable tensor identified by its dotted path.
type Parameter struct {
	Name   string // e.g. "layers.0.weight"
	Tensor Tensor
}

// Module is one submodule identified by its dotted path and type name.
type Module struct {
	Name string // "" for the root module
	Type string // e.g. "Linear", "ReLU", "Sequential"
}

// Model is the read-only view of a network consumed by layer extraction.
//
// Both listings must be returned in a stable order: Parameters in the order
// the model registers them, Modules in declaration (depth-first, pre-order)
// order with the root first. Implementations must not expect callers to
// modify the returned slices.
type Model interface {
	Parameters() []Parameter
	Modules() []Module
}

// Static is an in-memory [Model].
type Static struct {
	Params []Parameter
	Mods   []Module

	// SyntheticModules is set by sources that had to invent the module
	// listing (e.g. SafeTensors files without module metadata). Activation
	// modules cannot be detected in that case.
	SyntheticModules bool
}

// Parameters returns a copy of the parameter listing.
func (s *Static) Parameters() []Parameter { return slices.Clone(s.Params) }

// Modules returns a copy of the module listing.
func (s *Static) Modules() []Module { return slices.Clone(s.Mods) }

// Validate checks every name and tensor in the model.
func (s *Static) Validate() error {
	for _, m := range s.Mods {
		if err := errors.ValidateName(m.Name); err != nil {
			return err
		}
		if m.Type == "" {
			return errors.New(errors.ErrCodeInvalidModel, "module %q has no type", m.Name)
		}
	}
	for _, p := range s.Params {
		if p.Name == "" {
			return errors.New(errors.ErrCodeInvalidModel, "parameter without a name")
		}
		if err := errors.ValidateName(p.Name); err != nil {
			return err
		}
		if err := p.Tensor.Validate(p.Name); err != nil {
			return err
		}
	}
	return nil
}
