// Package pkg provides the core libraries for honeycomb.
//
// # Overview
//
// Honeycomb tiles a viewport with flat-top hexagons and groups them into
// concentric layers around the viewport center. The pkg directory is
// organized as follows:
//
//  1. [hexgrid] - Domain logic (tiling, center cell, layer classification)
//  2. [render] - Palettes and output sinks (SVG, PNG, PDF, JSON)
//  3. [pipeline] - Orchestration (layout → render) with caching
//  4. [cache], [preset], [settings] - Infrastructure and configuration
//
// # Architecture
//
// The typical data flow:
//
//	settings.toml / flags / query parameters
//	         ↓
//	    [hexgrid] package (compute layout)
//	         ↓
//	    [render/sink] package (paint layers)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/honeycomb/pkg/hexgrid"
//	    "github.com/matzehuels/honeycomb/pkg/render/sink"
//	)
//
//	l, err := hexgrid.Compute(hexgrid.Viewport{Width: 1200, Height: 800}, hexgrid.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l, sink.WithStyle("outline"))
//
// # Main Packages
//
// [hexgrid] - Grid sizing with 20% overscan, staggered cell positions, the
// center cell, layer boundaries and per-cell layer assignment. Layouts
// serialize to JSON.
//
// [render] - Layer palettes interpolated in HCL space, style names and
// SVG → PDF conversion. [render/sink] writes SVG, rasterizes PNG in pure Go,
// and exports layout JSON.
//
// [pipeline] - The layout → render pipeline used by the CLI, the HTTP API
// and the terminal preview. A [pipeline.Runner] adds caching and hooks.
//
// [cache] - Cache interface with null, file and Redis implementations.
//
// [preset] - Named settings stored in memory, as files or in MongoDB.
//
// [settings] - TOML settings file.
//
// [observability] - Hooks for pipeline stages, cache events and HTTP requests.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/hexgrid   # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [hexgrid]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/hexgrid
// [render]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/cache
// [preset]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/preset
// [settings]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/settings
// [observability]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/honeycomb/pkg/errors
package pkg
