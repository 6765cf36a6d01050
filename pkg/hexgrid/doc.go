// Package hexgrid computes honeycomb tilings for a rectangular viewport.
//
// A tiling is a grid of hexagons laid out row by row. Every hexagon owns a
// rectangular frame of [Config.FrameWidth] by [Config.FrameHeight]; the visible
// hexagon inside it is [Config.HexagonWidth] by [Config.HexagonHeight]. When
// the two sizes differ the honeycomb shows gaps (frame larger) or overlaps
// (frame smaller). Even rows are shifted right by half a frame, which gives
// the brick-style stagger that makes neighbouring rows interlock.
//
// # Grid Size
//
// The number of rows and columns is derived from the viewport with a 20%
// overscan so the honeycomb always bleeds past the viewport edges:
//
//	stagger = FrameHeight - (3*HexagonHeight/4 + (FrameWidth - HexagonHeight))
//	rows    = ceil(floor(Height / stagger) * 1.2)
//	cols    = ceil(floor(Width / FrameWidth) * 1.2)
//
// # Layers
//
// Hexagons are grouped into concentric layers around the cell under the
// viewport center. Layer k contains the cells whose distance from the center
// cell is at most k frame widths (and more than k-1). Cells beyond the last
// boundary share the outermost layer. Layers are 1-based; the center cell is
// always in layer 1. Renderers use the layer index to sequence reveal effects
// from the center outwards.
//
// Two distance metrics are available through [Config.LayerMode]:
//
//   - [LayerModeEuclidean]: straight-line distance between frame positions
//     (the default). Layers look like slightly squashed circles.
//   - [LayerModeHex]: exact hex-grid step distance, which yields perfectly
//     hexagonal rings.
//
// # Usage
//
//	l, err := hexgrid.Compute(hexgrid.Viewport{Width: 800, Height: 600}, hexgrid.DefaultConfig())
//	if err != nil {
//	    return err // always an INVALID_CONFIG error
//	}
//	for _, c := range l.Cells {
//	    fmt.Println(c.Row, c.Col, c.Layer, c.Vertices)
//	}
//
// [Compute] is a pure function: it holds no state between calls and may be
// called concurrently, e.g. once per resize event.
package hexgrid
