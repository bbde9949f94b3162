package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/fcviz/pkg/io"
	"github.com/matzehuels/fcviz/pkg/layers"
	"github.com/matzehuels/fcviz/pkg/model"
	"github.com/matzehuels/fcviz/pkg/netgraph"
	"github.com/matzehuels/fcviz/pkg/render/nodelink"
)

// Run executes extract → build → render for m.
//
// m is only read. A configuration error is returned before any stage
// starts; any other error aborts the run without a partial result.
func Run(ctx context.Context, m model.Model, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result, err := build(m, &opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	result.DOT = nodelink.ToDOT(result.Graph, nodelink.Options{Direction: opts.LayoutDirection()})
	artifact, err := renderArtifact(ctx, result, opts.OutputFormat())
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered graph",
		"format", result.Format,
		"direction", opts.LayoutDirection(),
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build runs extraction and graph building without rendering.
func Build(m model.Model, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return build(m, &opts)
}

// Extract runs only layer extraction. The records are returned even when
// adjacent layers do not chain; [Build] reports that.
func Extract(m model.Model, opts Options) ([]layers.Record, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	recs, _, err := extract(m, &opts)
	return recs, err
}

func extract(m model.Model, opts *Options) ([]layers.Record, time.Duration, error) {
	start := time.Now()
	recs, err := layers.Extract(m, opts.Activations)
	if err != nil {
		return nil, 0, fmt.Errorf("extract: %w", err)
	}
	elapsed := time.Since(start)

	opts.Logger.Debug("extracted layers",
		"layers", len(recs),
		"allowlist", opts.Activations.Version,
		"duration", elapsed)
	for _, r := range recs {
		opts.Logger.Debug("layer",
			"id", r.ID,
			"path", r.Path,
			"in", r.InputSize,
			"out", r.OutputSize,
			"activation", r.ActivationName())
	}
	return recs, elapsed, nil
}

func build(m model.Model, opts *Options) (*Result, error) {
	result := &Result{Format: opts.OutputFormat()}

	// Stage 1: Extract
	recs, elapsed, err := extract(m, opts)
	if err != nil {
		return nil, err
	}
	result.Layers = recs
	result.Stats.LayerCount = len(recs)
	result.Stats.ExtractTime = elapsed

	// Stage 2: Build
	buildStart := time.Now()
	g, err := netgraph.Build(recs, netgraph.Options{ShowValues: opts.ShowValues})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Debug("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	return result, nil
}

func renderArtifact(ctx context.Context, result *Result, f nodelink.Format) ([]byte, error) {
	if f != nodelink.FormatJSON {
		return nodelink.Render(ctx, result.DOT, f)
	}
	var buf bytes.Buffer
	if err := io.WriteJSON(result.Graph, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
