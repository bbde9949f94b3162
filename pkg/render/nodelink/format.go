package nodelink

import (
	"slices"
	"strings"

	"github.com/matzehuels/fcviz/pkg/errors"
)

// Format is a rendered output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatGIF  Format = "gif"
	FormatDOT  Format = "dot"  // Graphviz source, no rendering
	FormatJSON Format = "json" // graph description, no Graphviz involved
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG, FormatJPG, FormatGIF, FormatDOT, FormatJSON}

// ParseFormat resolves a format name, case-insensitively. "jpeg" is an
// alias of jpg. Unknown names give an INVALID_FORMAT error.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "jpeg" {
		f = FormatJPG
	}
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (supported: svg, png, jpg, gif, dot, json)", s)
	}
	return f, nil
}

// IsRaster reports whether f is a raster image format.
func (f Format) IsRaster() bool {
	return f == FormatPNG || f == FormatJPG || f == FormatGIF
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Direction is the Graphviz rank direction.
type Direction string

const (
	LeftToRight Direction = "LR"
	TopToBottom Direction = "TB"
)

// ParseDirection accepts LR, TB, left-to-right and top-to-bottom in any
// case. Unknown names give an INVALID_DIRECTION error.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lr", "left-to-right":
		return LeftToRight, nil
	case "tb", "top-to-bottom":
		return TopToBottom, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection,
		"unsupported layout direction %q (supported: LR, TB)", s)
}
