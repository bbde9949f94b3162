package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fcviz/pkg/errors"
	"github.com/matzehuels/fcviz/pkg/model"
	"github.com/matzehuels/fcviz/pkg/render/nodelink"
)

// countingModel records how often the pipeline reads it.
type countingModel struct {
	model.Static
	reads int
}

func (c *countingModel) Parameters() []model.Parameter {
	c.reads++
	return c.Static.Parameters()
}

// threeTwoOne returns a 3 → 2 → 1 network with a ReLU between the layers.
func threeTwoOne() *model.Static {
	return &model.Static{
		Mods: []model.Module{
			{Name: "", Type: "Sequential"},
			{Name: "0", Type: "Linear"},
			{Name: "1", Type: "ReLU"},
			{Name: "2", Type: "Linear"},
		},
		Params: []model.Parameter{
			{Name: "0.weight", Tensor: model.Tensor{Shape: []int{2, 3}, Data: []float64{0.12345, 0.2, 0.3, 0.4, 0.5, 0.6}}},
			{Name: "0.bias", Tensor: model.Tensor{Shape: []int{2}, Data: []float64{0.1, 0.2}}},
			{Name: "2.weight", Tensor: model.Tensor{Shape: []int{1, 2}, Data: []float64{1, -1}}},
			{Name: "2.bias", Tensor: model.Tensor{Shape: []int{1}, Data: []float64{0}}},
		},
	}
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
		wantFmt  nodelink.Format
		wantDir  nodelink.Direction
	}{
		{"zero value", Options{}, "", nodelink.FormatSVG, nodelink.LeftToRight},
		{"defaults", DefaultOptions(), "", nodelink.FormatSVG, nodelink.LeftToRight},
		{"png top-to-bottom", Options{Format: "png", Direction: "top-to-bottom"}, "", nodelink.FormatPNG, nodelink.TopToBottom},
		{"bad format", Options{Format: "bmp"}, errors.ErrCodeInvalidFormat, "", ""},
		{"bad direction", Options{Direction: "RL"}, errors.ErrCodeInvalidDirection, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("ValidateAndSetDefaults() error = %v, want %v", err, tt.wantCode)
				}
				if !errors.IsConfig(err) {
					t.Errorf("IsConfig(%v) = false", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAndSetDefaults() error: %v", err)
			}
			if opts.OutputFormat() != tt.wantFmt || opts.LayoutDirection() != tt.wantDir {
				t.Errorf("got (%s, %s), want (%s, %s)", opts.OutputFormat(), opts.LayoutDirection(), tt.wantFmt, tt.wantDir)
			}
			if opts.Logger == nil || opts.Activations.Len() == 0 {
				t.Error("logger or allowlist default not applied")
			}
		})
	}
}

func TestRun_ConfigErrorBeforeWork(t *testing.T) {
	m := &countingModel{Static: *threeTwoOne()}
	_, err := Run(context.Background(), m, Options{Format: "tiff"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("Run() error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
	if m.reads != 0 {
		t.Errorf("model read %d times before configuration error", m.reads)
	}
}

func TestBuild_Counts(t *testing.T) {
	result, err := Build(threeTwoOne(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := result.Stats
	if s.LayerCount != 2 || s.NodeCount != 7 || s.EdgeCount != 9 {
		t.Errorf("stats = %d layers, %d nodes, %d edges; want 2, 7, 9", s.LayerCount, s.NodeCount, s.EdgeCount)
	}
	if result.Artifact != nil || result.DOT != "" {
		t.Error("Build() rendered output")
	}
	if result.Layers[0].Activation != "ReLU" {
		t.Errorf("layer.0 activation = %q, want ReLU", result.Layers[0].Activation)
	}
}

func TestRun_DOT(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "dot"
	opts.Direction = "TB"

	result, err := Run(context.Background(), threeTwoOne(), opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if string(result.Artifact) != result.DOT {
		t.Error("dot artifact differs from DOT source")
	}
	for _, want := range []string{"rankdir=TB;", `label="Weight 0 0: 0.1235"`, `"layer.1.node.0" -> "output.0";`} {
		if !strings.Contains(result.DOT, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
	if result.Format != nodelink.FormatDOT {
		t.Errorf("Format = %s, want dot", result.Format)
	}
}

func TestRun_SVG(t *testing.T) {
	result, err := Run(context.Background(), threeTwoOne(), DefaultOptions())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !bytes.Contains(result.Artifact, []byte("<svg")) {
		t.Error("artifact is not SVG")
	}
}

func TestRun_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "json"
	opts.ShowValues = true

	result, err := Run(context.Background(), threeTwoOne(), opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	var got struct {
		Nodes []struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
		} `json:"nodes"`
		Edges []struct {
			Label string `json:"label"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(result.Artifact, &got); err != nil {
		t.Fatalf("artifact is not JSON: %v", err)
	}
	if len(got.Nodes) != result.Stats.NodeCount || len(got.Edges) != result.Stats.EdgeCount {
		t.Errorf("JSON has %d nodes / %d edges, want %d / %d",
			len(got.Nodes), len(got.Edges), result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if got.Nodes[0].ID != "input.0" || got.Nodes[0].Kind != "input" {
		t.Errorf("first node = %+v, want input.0", got.Nodes[0])
	}
	if got.Edges[0].Label != "Weight 0 0: 0.1235" {
		t.Errorf("first edge label = %q", got.Edges[0].Label)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, threeTwoOne(), DefaultOptions()); err == nil {
		t.Error("Run() with canceled context succeeded")
	}
}

func TestRun_Idempotent(t *testing.T) {
	m := threeTwoOne()
	opts := DefaultOptions()
	opts.Format = "dot"

	a, err := Run(context.Background(), m, opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	b, err := Run(context.Background(), m, opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.DOT != b.DOT {
		t.Error("DOT differs between runs on the same model")
	}
}

func TestBuild_ModelErrors(t *testing.T) {
	mismatch := threeTwoOne()
	mismatch.Params[2].Tensor = model.Tensor{Shape: []int{1, 5}, Data: make([]float64, 5)}
	rankThree := &model.Static{
		Mods: []model.Module{{Name: "", Type: "Sequential"}, {Name: "0", Type: "Linear"}},
		Params: []model.Parameter{
			{Name: "0.weight", Tensor: model.Tensor{Shape: []int{1, 2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}}},
		},
	}

	tests := []struct {
		name  string
		model model.Model
		want  errors.Code
	}{
		{"no layers", &model.Static{Mods: []model.Module{{Name: "", Type: "Sequential"}}}, errors.ErrCodeInvalidModel},
		{"size mismatch", mismatch, errors.ErrCodeInvalidShape},
		{"rank-3 weight", rankThree, errors.ErrCodeInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.model, DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtract_KeepsUnchainedLayers(t *testing.T) {
	mismatch := threeTwoOne()
	mismatch.Params[2].Tensor = model.Tensor{Shape: []int{1, 5}, Data: make([]float64, 5)}

	recs, err := Extract(mismatch, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(recs) != 2 || recs[1].InputSize != 5 {
		t.Errorf("Extract() = %d records, want 2 with layer.1 taking 5 inputs", len(recs))
	}

	opts := DefaultOptions()
	opts.Format = "pdf"
	if _, err := Extract(threeTwoOne(), opts); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Extract() error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestBuild_Logging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	if _, err := Build(threeTwoOne(), opts); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, want := range []string{"extracted layers", "built graph", "layer.1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}
