package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// DefaultScale renders PNGs at 2x the viewport size.
const DefaultScale = 2.0

// MaxPixels bounds the size of a rendered PNG.
const MaxPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	paint paint
	scale float64
}

// WithPNGPaint applies paint options to the rasterizer.
func WithPNGPaint(opts ...PaintOption) PNGOption {
	return func(r *pngRenderer) {
		for _, opt := range opts {
			opt(&r.paint)
		}
	}
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the layout with golang.org/x/image/vector.
func RenderPNG(l *hexgrid.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{paint: defaultPaint(), scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(l.Viewport.Width * r.scale))
	h := int(math.Ceil(l.Viewport.Height * r.scale))
	if w <= 0 || h <= 0 || w*h > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image of %dx%d pixels is out of range", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.paint.background != "" {
		bg, err := render.ParseColor(r.paint.background)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(opaque(bg)), image.Point{}, draw.Src)
	}

	rast := vector.NewRasterizer(w, h)
	rast.DrawOp = draw.Over

	switch r.paint.style {
	case render.StyleClip:
		for _, c := range l.Cells {
			addPolygon(rast, c.Vertices, r.scale, false)
		}
		grad := newRadialGradient(l.Viewport, r.scale, r.paint.palette)
		rast.Draw(img, img.Bounds(), grad, image.Point{})
	default:
		layers := l.LayerCount()
		for i, cells := range l.CellsByLayer() {
			if len(cells) == 0 {
				continue
			}
			rast.Reset(w, h)
			for _, c := range cells {
				if r.paint.style == render.StyleOutline {
					half := r.paint.strokeWidth / 2
					addPolygon(rast, insetVertices(c, -half), r.scale, false)
					addPolygon(rast, insetVertices(c, half), r.scale, true)
				} else {
					addPolygon(rast, c.Vertices, r.scale, false)
				}
			}
			src := image.NewUniform(r.paint.palette.RGBA(i+1, layers))
			rast.Draw(img, img.Bounds(), src, image.Point{})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// addPolygon appends a closed hexagon path. Reversed paths cancel the
// coverage of a forward path they overlap, which cuts the hole of an outline.
func addPolygon(z *vector.Rasterizer, vs [6]hexgrid.Point, scale float64, reverse bool) {
	pt := func(i int) (float32, float32) {
		if reverse {
			i = len(vs) - 1 - i
		}
		return float32(vs[i].X * scale), float32(vs[i].Y * scale)
	}
	z.MoveTo(pt(0))
	for i := 1; i < len(vs); i++ {
		z.LineTo(pt(i))
	}
	z.ClosePath()
}

func opaque(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// radialGradient is an image whose color moves from the inner palette color
// at the viewport center to the outer color at the corners.
type radialGradient struct {
	cx, cy, radius float64
	stops          [256]color.RGBA
}

func newRadialGradient(vp hexgrid.Viewport, scale float64, p render.Palette) *radialGradient {
	c := vp.Center()
	g := &radialGradient{cx: c.X * scale, cy: c.Y * scale, radius: gradientRadius(vp) * scale}
	for i := range g.stops {
		g.stops[i] = opaque(p.Inner.BlendHcl(p.Outer, float64(i)/255).Clamped())
	}
	return g
}

func (g *radialGradient) ColorModel() color.Model { return color.RGBAModel }

func (g *radialGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *radialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	t := 0.0
	if g.radius > 0 {
		t = min(d/g.radius, 1)
	}
	return g.stops[int(t*255)]
}
