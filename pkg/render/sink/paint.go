package sink

import (
	"math"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// DefaultStrokeWidth is the outline width in viewport units.
const DefaultStrokeWidth = 2.0

// paint holds the visual settings shared by the SVG and PNG renderers.
type paint struct {
	style       string
	palette     render.Palette
	background  string
	strokeWidth float64
}

func defaultPaint() paint {
	return paint{
		style:       render.StyleFill,
		palette:     render.DefaultPalette(),
		strokeWidth: DefaultStrokeWidth,
	}
}

// PaintOption configures colors and style for [RenderSVG] and [RenderPNG].
type PaintOption func(*paint)

// WithStyle selects one of render.StyleFill, render.StyleOutline or render.StyleClip.
func WithStyle(s string) PaintOption { return func(p *paint) { p.style = s } }

// WithPalette sets the layer palette.
func WithPalette(pal render.Palette) PaintOption { return func(p *paint) { p.palette = pal } }

// WithBackground sets a "#rrggbb" background. Empty means transparent.
func WithBackground(c string) PaintOption { return func(p *paint) { p.background = c } }

// WithStrokeWidth sets the outline width used by render.StyleOutline.
func WithStrokeWidth(w float64) PaintOption {
	return func(p *paint) {
		if w > 0 {
			p.strokeWidth = w
		}
	}
}

// hexCenter is the geometric middle of a cell, halfway between its top and
// bottom vertices.
func hexCenter(c hexgrid.Cell) hexgrid.Point {
	return hexgrid.Point{X: c.Vertices[0].X, Y: (c.Vertices[0].Y + c.Vertices[3].Y) / 2}
}

// insetVertices shrinks a hexagon towards its middle by d.
func insetVertices(c hexgrid.Cell, d float64) [6]hexgrid.Point {
	m := hexCenter(c)
	var out [6]hexgrid.Point
	for i, v := range c.Vertices {
		dx, dy := v.X-m.X, v.Y-m.Y
		r := math.Hypot(dx, dy)
		k := 0.0
		if r > d {
			k = (r - d) / r
		}
		out[i] = hexgrid.Point{X: m.X + dx*k, Y: m.Y + dy*k}
	}
	return out
}

// gradientRadius is the distance from the viewport center to its corner.
func gradientRadius(vp hexgrid.Viewport) float64 {
	return math.Hypot(vp.Width/2, vp.Height/2)
}
