// Package sink writes computed honeycomb layouts to output formats.
//
// Every renderer takes a [hexgrid.Layout] and functional options:
//
//   - [RenderSVG] emits one polygon per hexagon, tagged with its layer class
//   - [RenderPNG] rasterizes in pure Go, no external tools needed
//   - [RenderPDF] converts the SVG with rsvg-convert
//   - [RenderJSON] exports the layout itself
//
// Paint options ([WithStyle], [WithPalette], [WithBackground],
// [WithStrokeWidth]) are shared by the SVG and PNG renderers so both
// formats draw the same picture.
//
// [hexgrid.Layout]: github.com/matzehuels/honeycomb/pkg/hexgrid.Layout
package sink
