package netgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/fcviz/pkg/layers"
)

// FormatValue renders a numeric label value with exactly four fractional
// digits. Rounding is on the exact binary value, so 0.12345 gives "0.1235".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func label(ref NodeRef, r layers.Record, showValues bool) string {
	switch ref.Kind {
	case Input:
		return fmt.Sprintf("Input %d", ref.Unit)
	case Output:
		return fmt.Sprintf("Output %d", ref.Unit)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Layer %d, Node %d\n", ref.Layer, ref.Unit)
	b.WriteString(r.ActivationName())
	b.WriteString(" activation")
	if !showValues {
		return b.String()
	}
	if p, ok := r.ActivationParamAt(ref.Unit); ok {
		fmt.Fprintf(&b, " (%s)", FormatValue(p))
	}
	if v, ok := r.Bias(ref.Unit); ok {
		fmt.Fprintf(&b, "\nBias: %s", FormatValue(v))
	} else {
		b.WriteString("\nNo bias")
	}
	return b.String()
}

func weightLabel(o, s int, w float64, showValues bool) string {
	if !showValues {
		return fmt.Sprintf("Weight %d %d", o, s)
	}
	return fmt.Sprintf("Weight %d %d: %s", o, s, FormatValue(w))
}
