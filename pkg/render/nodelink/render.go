package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fcviz/pkg/errors"
)

// Render lays out DOT source with Graphviz and encodes it in format f.
//
// SVG, PNG and JPG come straight from Graphviz. GIF is encoded from the
// rasterised image. FormatDOT returns the source unchanged.
func Render(ctx context.Context, dot string, f Format) ([]byte, error) {
	if f == FormatDOT {
		return []byte(dot), nil
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	if f == FormatJSON {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "json is not a Graphviz output format")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	switch f {
	case FormatGIF:
		img, err := gv.RenderImage(ctx, g)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render image")
		}
		if err := imaging.Encode(&buf, img, imaging.GIF); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode gif")
		}
	default:
		if err := gv.Render(ctx, g, graphviz.Format(f), &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", f)
		}
	}

	if f == FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales with
// its container instead of using Graphviz's point-based size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
