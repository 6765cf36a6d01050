// Package pipeline provides the layout → render pipeline for honeycomb.
//
// This package runs the same two stages for the CLI, the HTTP API and the
// terminal preview:
//
//  1. Layout: tile the viewport and classify hexagons into layers ([hexgrid.Compute])
//  2. Render: produce artifacts (SVG, PNG, PDF, JSON) from the layout
//
// Each stage can be run independently or as part of the complete pipeline.
// A [Runner] adds caching and observability hooks around both stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:   1920,
//	    Height:  1080,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.GenerateLayout(ctx, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
//
// [hexgrid.Compute]: github.com/matzehuels/honeycomb/pkg/hexgrid.Compute
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/honeycomb/pkg/cache"
	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
	"github.com/matzehuels/honeycomb/pkg/render/sink"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Preview
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultStyle is the default visual style.
	DefaultStyle = render.StyleFill
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width  float64        `json:"width,omitempty"`
	Height float64        `json:"height,omitempty"`
	Grid   hexgrid.Config `json:"grid"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	InnerColor  string   `json:"inner_color,omitempty"`
	OuterColor  string   `json:"outer_color,omitempty"`
	Background  string   `json:"background,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Scale       float64  `json:"scale,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// OptionsFromSettings converts a settings file into pipeline options.
func OptionsFromSettings(s settings.Settings) Options {
	return Options{
		Width:       s.Viewport.Width,
		Height:      s.Viewport.Height,
		Grid:        s.Grid,
		Style:       s.Render.Style,
		InnerColor:  s.Render.InnerColor,
		OuterColor:  s.Render.OuterColor,
		Background:  s.Render.Background,
		StrokeWidth: s.Render.StrokeWidth,
		Scale:       s.Render.Scale,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed honeycomb.
	Layout *hexgrid.Layout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Cols       int
	CellCount  int
	LayerCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills zero layout fields. Grid fields are filled one
// by one so a request may override only the frame width.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	def := hexgrid.DefaultConfig()
	if o.Grid.FrameWidth == 0 {
		o.Grid.FrameWidth = def.FrameWidth
	}
	if o.Grid.FrameHeight == 0 {
		o.Grid.FrameHeight = def.FrameHeight
	}
	if o.Grid.HexagonWidth == 0 {
		o.Grid.HexagonWidth = def.HexagonWidth
	}
	if o.Grid.HexagonHeight == 0 {
		o.Grid.HexagonHeight = def.HexagonHeight
	}
	if o.Grid.LayerMode == "" {
		o.Grid.LayerMode = def.LayerMode
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := o.Grid.Validate(); err != nil {
		return err
	}
	return o.Viewport().Validate()
}

// SetRenderDefaults sets default values for rendering. An empty background
// stays transparent.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.InnerColor == "" {
		o.InnerColor = render.DefaultInnerColor
	}
	if o.OuterColor == "" {
		o.OuterColor = render.DefaultOuterColor
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = sink.DefaultStrokeWidth
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return o.renderSettings().Validate()
}

// Viewport returns the viewport described by Width and Height.
func (o *Options) Viewport() hexgrid.Viewport {
	return hexgrid.Viewport{Width: o.Width, Height: o.Height}
}

func (o *Options) renderSettings() settings.Render {
	return settings.Render{
		Style:       o.Style,
		InnerColor:  o.InnerColor,
		OuterColor:  o.OuterColor,
		Background:  o.Background,
		StrokeWidth: o.StrokeWidth,
		Scale:       o.Scale,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:         o.Width,
		Height:        o.Height,
		FrameWidth:    o.Grid.FrameWidth,
		FrameHeight:   o.Grid.FrameHeight,
		HexagonWidth:  o.Grid.HexagonWidth,
		HexagonHeight: o.Grid.HexagonHeight,
		LayerMode:     string(o.Grid.Mode()),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		InnerColor:  o.InnerColor,
		OuterColor:  o.OuterColor,
		Background:  o.Background,
		StrokeWidth: o.StrokeWidth,
		Scale:       o.Scale,
	}
}
