// Package pipeline runs the model → layers → graph → image pipeline.
//
// The CLI and library callers share this package so that option
// validation, defaults and stage order are identical everywhere.
//
// # Architecture
//
// A run has three stages:
//
//  1. Extract: reconstruct the canonical layer sequence ([layers.Extract])
//  2. Build: expand layers into a per-neuron graph ([netgraph.Build])
//  3. Render: produce DOT source and encode it ([nodelink.Render])
//
// Options are validated before any stage runs, so an unsupported format
// or direction is reported without touching the model.
//
// # Usage
//
//	opts := pipeline.DefaultOptions()
//	opts.Format = "png"
//	result, err := pipeline.Run(ctx, m, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("net.png", result.Artifact, 0o644)
//
// [Build] runs the first two stages only.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fcviz/pkg/dag"
	"github.com/matzehuels/fcviz/pkg/layers"
	"github.com/matzehuels/fcviz/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultFormat is the default output format.
	DefaultFormat = nodelink.FormatSVG

	// DefaultDirection is the default layout direction.
	DefaultDirection = nodelink.LeftToRight
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
//
// The zero value renders a structure-only SVG; use [DefaultOptions] to
// start with values shown.
type Options struct {
	// ShowValues includes weights, biases and activation parameters in labels.
	ShowValues bool `json:"show_values" ini:"show_values"`

	// Display asks the caller to present the rendered artifact. The
	// pipeline itself only carries the flag.
	Display bool `json:"display" ini:"display"`

	// Format is one of svg, png, jpg, gif, dot or json. Empty means svg.
	Format string `json:"format,omitempty" ini:"format"`

	// Direction is LR or TB (or left-to-right / top-to-bottom). Empty means LR.
	Direction string `json:"direction,omitempty" ini:"direction"`

	// Runtime options (not serialized)
	Activations layers.Allowlist `json:"-" ini:"-"`
	Logger      *log.Logger      `json:"-" ini:"-"`

	format    nodelink.Format
	direction nodelink.Direction
	validated bool
}

// DefaultOptions returns options with values shown, svg output and a
// left-to-right layout.
func DefaultOptions() Options {
	return Options{
		ShowValues:  true,
		Format:      string(DefaultFormat),
		Direction:   string(DefaultDirection),
		Activations: layers.DefaultAllowlist(),
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layers is the canonical layer sequence.
	Layers []layers.Record

	// Graph is the per-neuron graph.
	Graph *dag.DAG

	// DOT is the Graphviz source the artifact was rendered from.
	DOT string

	// Artifact holds the encoded output; nil after [Build].
	Artifact []byte

	// Format is the format of Artifact.
	Format nodelink.Format

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount  int
	NodeCount   int
	EdgeCount   int
	ExtractTime time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the format and direction and applies
// defaults. It returns an INVALID_FORMAT or INVALID_DIRECTION error for
// unsupported values. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = string(DefaultFormat)
	}
	if o.Direction == "" {
		o.Direction = string(DefaultDirection)
	}

	f, err := nodelink.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	d, err := nodelink.ParseDirection(o.Direction)
	if err != nil {
		return err
	}
	o.format, o.direction = f, d

	if o.Activations.Len() == 0 {
		o.Activations = layers.DefaultAllowlist()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// OutputFormat returns the parsed format. Valid after ValidateAndSetDefaults.
func (o *Options) OutputFormat() nodelink.Format { return o.format }

// LayoutDirection returns the parsed direction. Valid after ValidateAndSetDefaults.
func (o *Options) LayoutDirection() nodelink.Direction { return o.direction }
