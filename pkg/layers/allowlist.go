package layers

import (
	"maps"
	"slices"
)

// TorchVersion identifies the built-in allowlist: the activation module
// classes exported by torch.nn.modules.activation.
const TorchVersion = "torch.nn.modules.activation"

var torchActivations = []string{
	"Threshold", "ReLU", "RReLU", "Hardtanh", "ReLU6",
	"Sigmoid", "Hardsigmoid", "Tanh", "SiLU", "Mish",
	"Hardswish", "ELU", "CELU", "SELU", "GLU", "GELU",
	"Hardshrink", "LeakyReLU", "LogSigmoid", "Softplus",
	"Softshrink", "MultiheadAttention", "PReLU", "Softsign",
	"Tanhshrink", "Softmin", "Softmax", "Softmax2d", "LogSoftmax",
}

// Allowlist is a versioned set of module type names recognised as
// activation functions. Membership is exact, case-sensitive string match.
//
// The zero value contains nothing.
type Allowlist struct {
	Version string
	names   map[string]struct{}
}

// NewAllowlist builds an allowlist from explicit names.
func NewAllowlist(version string, names ...string) Allowlist {
	a := Allowlist{Version: version, names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		a.names[n] = struct{}{}
	}
	return a
}

// DefaultAllowlist returns the PyTorch activation set.
func DefaultAllowlist() Allowlist {
	return NewAllowlist(TorchVersion, torchActivations...)
}

// Contains reports whether typeName is a recognised activation.
func (a Allowlist) Contains(typeName string) bool {
	_, ok := a.names[typeName]
	return ok
}

// With returns a new allowlist extended by names. The receiver is not
// modified. The version gets a "+custom" suffix when anything is added.
func (a Allowlist) With(names ...string) Allowlist {
	out := Allowlist{Version: a.Version, names: maps.Clone(a.names)}
	if out.names == nil {
		out.names = make(map[string]struct{}, len(names))
	}
	added := false
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := out.names[n]; !ok {
			out.names[n] = struct{}{}
			added = true
		}
	}
	if added {
		out.Version += "+custom"
	}
	return out
}

// Names returns the members in sorted order.
func (a Allowlist) Names() []string {
	return slices.Sorted(maps.Keys(a.names))
}

// Len returns the number of members.
func (a Allowlist) Len() int { return len(a.names) }
