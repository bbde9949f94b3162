// Package nodelink renders layered network graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Direction: nodelink.LeftToRight})
//	svg, err := nodelink.Render(ctx, dot, nodelink.FormatSVG)
//
// # Formats
//
// [Render] supports svg, png, jpg and gif, plus dot, which returns the
// source text untouched. Use [ParseFormat] and [ParseDirection] to turn
// user input into typed values; both return configuration errors from
// [github.com/matzehuels/fcviz/pkg/errors] for unknown names.
//
// # Dependencies
//
// Layout and rasterisation run in-process through
// [github.com/goccy/go-graphviz]. GIF output is encoded with
// [github.com/disintegration/imaging].
package nodelink
