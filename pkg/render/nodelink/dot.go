package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/fcviz/pkg/dag"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Direction sets rankdir. Empty means left-to-right.
	Direction Direction
}

// ToDOT converts a layered graph to Graphviz DOT source.
//
// Rows are pinned with rank=same so each network depth forms one column
// (or row, for top-to-bottom). Input and output features are drawn as
// grey ellipses, units as rounded boxes. Nodes and edges are written in
// graph insertion order.
func ToDOT(g *dag.DAG, opts Options) string {
	dir := opts.Direction
	if dir == "" {
		dir = LeftToRight
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dir)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=9, arrowsize=0.6];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(*n), ", "))
	}

	buf.WriteString("\n")
	for row := 0; row <= g.MaxRow(); row++ {
		nodes := g.NodesInRow(row)
		if len(nodes) < 2 {
			continue
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", quoteIDs(nodes))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Label == "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%s];\n", e.From, e.To, quote(e.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n dag.Node) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	attrs := []string{"label=" + quote(label)}
	if n.IsSynthetic() {
		attrs = append(attrs, "shape=ellipse", "fillcolor=lightgrey")
	}
	return attrs
}

func quoteIDs(nodes []*dag.Node) string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = fmt.Sprintf("%q", n.ID)
	}
	return strings.Join(ids, "; ")
}

// quote produces a DOT string literal. Newlines become \n, which Graphviz
// renders as centred line breaks.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")
	return `"` + r.Replace(s) + `"`
}
