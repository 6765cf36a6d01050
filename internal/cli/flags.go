package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// layoutFlags are the grid and viewport flags shared by the layout, render
// and preview commands. Flags override the settings file only when set.
type layoutFlags struct {
	width         float64
	height        float64
	frameWidth    float64
	frameHeight   float64
	hexagonWidth  float64
	hexagonHeight float64
	layerMode     string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	def := settings.Default()
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", def.Viewport.Width, "viewport width")
	fs.Float64Var(&f.height, "height", def.Viewport.Height, "viewport height")
	fs.Float64Var(&f.frameWidth, "frame-width", def.Grid.FrameWidth, "width of the tiling frame")
	fs.Float64Var(&f.frameHeight, "frame-height", def.Grid.FrameHeight, "height of the tiling frame")
	fs.Float64Var(&f.hexagonWidth, "hexagon-width", def.Grid.HexagonWidth, "width of the drawn hexagon")
	fs.Float64Var(&f.hexagonHeight, "hexagon-height", def.Grid.HexagonHeight, "height of the drawn hexagon")
	fs.StringVar(&f.layerMode, "layer-mode", string(def.Grid.LayerMode), "layer distance: euclidean (default), hex")
}

func (f *layoutFlags) apply(cmd *cobra.Command, s *settings.Settings) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		s.Viewport.Width = f.width
	}
	if fs.Changed("height") {
		s.Viewport.Height = f.height
	}
	if fs.Changed("frame-width") {
		s.Grid.FrameWidth = f.frameWidth
	}
	if fs.Changed("frame-height") {
		s.Grid.FrameHeight = f.frameHeight
	}
	if fs.Changed("hexagon-width") {
		s.Grid.HexagonWidth = f.hexagonWidth
	}
	if fs.Changed("hexagon-height") {
		s.Grid.HexagonHeight = f.hexagonHeight
	}
	if fs.Changed("layer-mode") {
		s.Grid.LayerMode = hexgrid.LayerMode(f.layerMode)
	}
}

// renderFlags are the artwork flags shared by the visualize and render commands.
type renderFlags struct {
	style       string
	innerColor  string
	outerColor  string
	background  string
	strokeWidth float64
	scale       float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	def := settings.Default().Render
	fs := cmd.Flags()
	fs.StringVar(&f.style, "style", def.Style, "visual style: fill (default), outline, clip")
	fs.StringVar(&f.innerColor, "inner-color", def.InnerColor, "color of the center layer")
	fs.StringVar(&f.outerColor, "outer-color", def.OuterColor, "color of the outermost layer")
	fs.StringVar(&f.background, "background", def.Background, "background color (empty for transparent)")
	fs.Float64Var(&f.strokeWidth, "stroke-width", def.StrokeWidth, "outline stroke width")
	fs.Float64Var(&f.scale, "scale", def.Scale, "PNG scale factor")
}

func (f *renderFlags) apply(cmd *cobra.Command, s *settings.Settings) {
	fs := cmd.Flags()
	if fs.Changed("style") {
		s.Render.Style = f.style
	}
	if fs.Changed("inner-color") {
		s.Render.InnerColor = f.innerColor
	}
	if fs.Changed("outer-color") {
		s.Render.OuterColor = f.outerColor
	}
	if fs.Changed("background") {
		s.Render.Background = f.background
	}
	if fs.Changed("stroke-width") {
		s.Render.StrokeWidth = f.strokeWidth
	}
	if fs.Changed("scale") {
		s.Render.Scale = f.scale
	}
}
