package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/fcviz/pkg/dag"
	"github.com/matzehuels/fcviz/pkg/errors"
)

func sample() *dag.DAG {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "input.0", Row: 0, Label: "Input 0", Kind: dag.NodeKindInput})
	_ = g.AddNode(dag.Node{ID: "input.1", Row: 0, Label: "Input 1", Kind: dag.NodeKindInput})
	_ = g.AddNode(dag.Node{ID: "layer.0.node.0", Row: 1, Label: "Layer 0, Node 0\nNo activation"})
	_ = g.AddNode(dag.Node{ID: "output.0", Row: 2, Label: "Output 0", Kind: dag.NodeKindOutput})
	_ = g.AddEdge(dag.Edge{From: "input.0", To: "layer.0.node.0", Label: "Weight 0 0: 0.5000"})
	_ = g.AddEdge(dag.Edge{From: "input.1", To: "layer.0.node.0", Label: "Weight 0 1: 1.0000"})
	_ = g.AddEdge(dag.Edge{From: "layer.0.node.0", To: "output.0"})
	return g
}

func TestToDOT(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "default direction",
			opts: Options{},
			want: []string{
				"rankdir=LR;",
				`"input.0" [label="Input 0", shape=ellipse, fillcolor=lightgrey];`,
				`"layer.0.node.0" [label="Layer 0, Node 0\nNo activation"];`,
				`{ rank=same; "input.0"; "input.1"; }`,
				`"input.0" -> "layer.0.node.0" [label="Weight 0 0: 0.5000"];`,
				`"layer.0.node.0" -> "output.0";`,
			},
		},
		{
			name: "top to bottom",
			opts: Options{Direction: TopToBottom},
			want: []string{"rankdir=TB;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(sample(), tt.opts)
			for _, w := range tt.want {
				if !strings.Contains(dot, w) {
					t.Errorf("ToDOT() missing %q\n%s", w, dot)
				}
			}
		})
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	if ToDOT(sample(), Options{}) != ToDOT(sample(), Options{}) {
		t.Error("ToDOT() output differs between identical graphs")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", `"plain"`},
		{"a\nb", `"a\nb"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	dot := ToDOT(sample(), Options{})
	ctx := context.Background()

	t.Run("dot", func(t *testing.T) {
		out, err := Render(ctx, dot, FormatDOT)
		if err != nil || string(out) != dot {
			t.Errorf("Render(dot) = %d bytes, %v; want the source", len(out), err)
		}
	})

	t.Run("svg", func(t *testing.T) {
		out, err := Render(ctx, dot, FormatSVG)
		if err != nil {
			t.Fatalf("Render(svg) error: %v", err)
		}
		if !bytes.Contains(out, []byte("<svg")) || !bytes.Contains(out, []byte("Input 0")) {
			t.Errorf("Render(svg) output is not the expected SVG:\n%s", out)
		}
	})

	t.Run("png", func(t *testing.T) {
		out, err := Render(ctx, dot, FormatPNG)
		if err != nil {
			t.Fatalf("Render(png) error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("\x89PNG")) {
			t.Error("Render(png) output lacks PNG signature")
		}
	})

	t.Run("gif", func(t *testing.T) {
		out, err := Render(ctx, dot, FormatGIF)
		if err != nil {
			t.Fatalf("Render(gif) error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("GIF8")) {
			t.Error("Render(gif) output lacks GIF signature")
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := Render(ctx, dot, Format("pdf")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("Render(pdf) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
		}
	})

	t.Run("json", func(t *testing.T) {
		if _, err := Render(ctx, dot, FormatJSON); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("Render(json) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := Render(cctx, dot, FormatSVG); err == nil {
			t.Error("Render() with canceled context succeeded")
		}
	})
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("normalizeViewBox(no viewBox) = %s", got)
	}
}
