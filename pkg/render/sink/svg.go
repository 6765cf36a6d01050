package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// ClipPathID is the id of the clip path emitted in render.StyleClip mode.
const ClipPathID = "hexagon-clip"

const gradientID = "honeycomb-gradient"

// SVGOption configures [RenderSVG].
type SVGOption = PaintOption

// RenderSVG renders the layout as a standalone SVG document sized to the
// viewport. Every hexagon becomes a polygon with class "layer-N" and
// data-row/data-col attributes.
func RenderSVG(l *hexgrid.Layout, opts ...SVGOption) []byte {
	p := defaultPaint()
	for _, opt := range opts {
		opt(&p)
	}

	w, h := l.Viewport.Width, l.Viewport.Height
	layers := l.LayerCount()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w), num(h))

	if p.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", p.background)
	}

	switch p.style {
	case render.StyleClip:
		renderClipped(&buf, l, p)
	case render.StyleOutline:
		buf.WriteString(`  <g class="honeycomb" fill="none" stroke-linejoin="round">` + "\n")
		for _, c := range l.Cells {
			writePolygon(&buf, c, fmt.Sprintf(` stroke="%s" stroke-width="%s"`, p.palette.Hex(c.Layer, layers), num(p.strokeWidth)))
		}
		buf.WriteString("  </g>\n")
	default:
		buf.WriteString(`  <g class="honeycomb">` + "\n")
		for _, c := range l.Cells {
			writePolygon(&buf, c, fmt.Sprintf(` fill="%s"`, p.palette.Hex(c.Layer, layers)))
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderClipped draws a radial gradient from the inner to the outer palette
// color, visible only through the hexagons.
func renderClipped(buf *bytes.Buffer, l *hexgrid.Layout, p paint) {
	c := l.Viewport.Center()
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`+"\n",
		gradientID, num(c.X), num(c.Y), num(gradientRadius(l.Viewport)))
	fmt.Fprintf(buf, `      <stop offset="0" stop-color="%s"/>`+"\n", p.palette.Inner.Hex())
	fmt.Fprintf(buf, `      <stop offset="1" stop-color="%s"/>`+"\n", p.palette.Outer.Hex())
	buf.WriteString("    </radialGradient>\n")
	fmt.Fprintf(buf, `    <clipPath id="%s">`+"\n", ClipPathID)
	for _, cell := range l.Cells {
		buf.WriteString("  ")
		writePolygon(buf, cell, "")
	}
	buf.WriteString("    </clipPath>\n")
	buf.WriteString("  </defs>\n")
	fmt.Fprintf(buf, `  <rect class="honeycomb" width="100%%" height="100%%" fill="url(#%s)" clip-path="url(#%s)"/>`+"\n",
		gradientID, ClipPathID)
}

func writePolygon(buf *bytes.Buffer, c hexgrid.Cell, attrs string) {
	fmt.Fprintf(buf, `    <polygon class="layer-%d" data-row="%d" data-col="%d" points="`, c.Layer, c.Row, c.Col)
	for i, v := range c.Vertices {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(num(v.X))
		buf.WriteByte(',')
		buf.WriteString(num(v.Y))
	}
	fmt.Fprintf(buf, `"%s/>`+"\n", attrs)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
