// Package render provides artwork rendering for honeycomb layouts.
//
// # Overview
//
// This package holds what every output format shares:
//
//   - Visual styles ([StyleFill], [StyleOutline], [StyleClip])
//   - Layer palettes ([Palette]) that shade layers from the center outwards
//   - Format conversion from SVG to PDF ([ToPDF])
//
// The [sink] subpackage turns a [hexgrid.Layout] into SVG, PNG, PDF or JSON.
//
// # Palettes
//
// A palette blends two colors in HCL space. Layer 1 (the center) gets the
// inner color, the outermost layer the outer color:
//
//	p, err := render.ParsePalette("#ffd166", "#26547c")
//	fill := p.Hex(layer, l.LayerCount())
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool (from
// librsvg). PNG output does not need it; see [sink.RenderPNG].
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//
// [hexgrid.Layout]: github.com/matzehuels/honeycomb/pkg/hexgrid.Layout
package render
