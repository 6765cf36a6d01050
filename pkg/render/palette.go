package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

// Palette shades layers between an inner and an outer color.
type Palette struct {
	Inner colorful.Color
	Outer colorful.Color
}

// DefaultPalette returns the palette built from [DefaultInnerColor] and [DefaultOuterColor].
func DefaultPalette() Palette {
	p, _ := ParsePalette(DefaultInnerColor, DefaultOuterColor)
	return p
}

// ParsePalette builds a palette from two "#rrggbb" colors.
func ParsePalette(inner, outer string) (Palette, error) {
	in, err := ParseColor(inner)
	if err != nil {
		return Palette{}, err
	}
	out, err := ParseColor(outer)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Inner: in, Outer: out}, nil
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q (want #rrggbb)", s)
	}
	return c, nil
}

// Color returns the color of layer (1-based) out of layers.
func (p Palette) Color(layer, layers int) colorful.Color {
	if layers <= 1 {
		return p.Inner
	}
	t := float64(layer-1) / float64(layers-1)
	t = min(max(t, 0), 1)
	return p.Inner.BlendHcl(p.Outer, t).Clamped()
}

// Hex returns the color of layer as "#rrggbb".
func (p Palette) Hex(layer, layers int) string {
	return p.Color(layer, layers).Hex()
}

// RGBA returns the color of layer as an opaque color.RGBA.
func (p Palette) RGBA(layer, layers int) color.RGBA {
	r, g, b := p.Color(layer, layers).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
