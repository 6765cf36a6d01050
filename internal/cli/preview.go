package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

const (
	// defaultZoom is the number of viewport pixels per terminal column.
	defaultZoom = 8.0

	// charAspect is the height of a terminal cell relative to its width.
	charAspect = 2.0

	// panelWidth is the outer width of the settings panel.
	panelWidth = 34

	// chromeHeight covers the header and help lines.
	chromeHeight = 2

	// dimensionStep is the +/- increment for grid dimensions.
	dimensionStep = 2.0
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags layoutFlags
		zoom  float64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the honeycomb in the terminal",
		Long: `Preview the honeycomb in the terminal.

The terminal window is the viewport: every character stands for a block of
pixels and is colored by the layer of the hexagon under it. Resizing the
window recomputes the layout.

Keys:
  tab      open or close the settings panel
  ↑/↓      select a setting
  +/-      adjust the selected setting
  enter    apply the edited settings
  esc      discard edits
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			flags.apply(cmd, &s)

			m := newPreviewModel(s, zoom, c.Logger)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&zoom, "zoom", defaultZoom, "viewport pixels per terminal column")

	return cmd
}

// =============================================================================
// Model
// =============================================================================

// previewDraft is the editable part of the preview state.
type previewDraft struct {
	Grid hexgrid.Config
	Zoom float64
}

// previewField is one row of the settings panel.
type previewField struct {
	label  string
	value  func(d previewDraft) string
	adjust func(d *previewDraft, dir float64)
}

var previewFields = []previewField{
	{
		label:  "Frame width",
		value:  func(d previewDraft) string { return formatFloat(d.Grid.FrameWidth) },
		adjust: func(d *previewDraft, dir float64) { d.Grid.FrameWidth += dir * dimensionStep },
	},
	{
		label:  "Frame height",
		value:  func(d previewDraft) string { return formatFloat(d.Grid.FrameHeight) },
		adjust: func(d *previewDraft, dir float64) { d.Grid.FrameHeight += dir * dimensionStep },
	},
	{
		label:  "Hexagon width",
		value:  func(d previewDraft) string { return formatFloat(d.Grid.HexagonWidth) },
		adjust: func(d *previewDraft, dir float64) { d.Grid.HexagonWidth += dir * dimensionStep },
	},
	{
		label:  "Hexagon height",
		value:  func(d previewDraft) string { return formatFloat(d.Grid.HexagonHeight) },
		adjust: func(d *previewDraft, dir float64) { d.Grid.HexagonHeight += dir * dimensionStep },
	},
	{
		label: "Layer mode",
		value: func(d previewDraft) string { return string(d.Grid.Mode()) },
		adjust: func(d *previewDraft, _ float64) {
			if d.Grid.Mode() == hexgrid.LayerModeHex {
				d.Grid.LayerMode = hexgrid.LayerModeEuclidean
			} else {
				d.Grid.LayerMode = hexgrid.LayerModeHex
			}
		},
	},
	{
		label:  "Zoom",
		value:  func(d previewDraft) string { return formatFloat(d.Zoom) },
		adjust: func(d *previewDraft, dir float64) { d.Zoom += dir },
	},
}

// previewModel is the bubbletea model of the preview command. The panel's
// open state is owned here and survives recomputation.
type previewModel struct {
	applied previewDraft
	draft   previewDraft
	palette render.Palette
	logger  *log.Logger

	open   bool
	cursor int

	width, height int

	layout *hexgrid.Layout
	cells  [][]int
	styles []lipgloss.Style
	err    error
}

func newPreviewModel(s settings.Settings, zoom float64, logger *log.Logger) previewModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pal, err := s.Render.Palette()
	if err != nil {
		pal = render.DefaultPalette()
	}
	d := previewDraft{Grid: s.Grid, Zoom: zoom}
	return previewModel{
		applied: d,
		draft:   d,
		palette: pal,
		logger:  logger,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.recompute()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.open = !m.open
			m.recompute()
		}
		if !m.open {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(previewFields)-1 {
				m.cursor++
			}
		case "+", "=", "right", "l":
			previewFields[m.cursor].adjust(&m.draft, 1)
		case "-", "_", "left", "h":
			previewFields[m.cursor].adjust(&m.draft, -1)
		case "enter":
			m.applied = m.draft
			m.recompute()
		case "esc":
			m.draft = m.applied
		}
	}
	return m, nil
}

// gridArea returns the size in characters available for the honeycomb.
func (m previewModel) gridArea() (cols, rows int) {
	cols = m.width
	if m.open {
		cols -= panelWidth
	}
	return cols, m.height - chromeHeight
}

// recompute lays out the applied settings over the current grid area.
func (m *previewModel) recompute() {
	m.layout, m.cells, m.styles, m.err = nil, nil, nil, nil

	cols, rows := m.gridArea()
	if cols <= 0 || rows <= 0 {
		return
	}
	if err := errors.ValidateDimension("zoom", m.applied.Zoom); err != nil {
		m.err = err
		return
	}

	pxW, pxH := m.applied.Zoom, m.applied.Zoom*charAspect
	vp := hexgrid.Viewport{Width: float64(cols) * pxW, Height: float64(rows) * pxH}
	l, err := hexgrid.Compute(vp, m.applied.Grid)
	if err != nil {
		m.logger.Debug("preview layout failed", "err", err)
		m.err = err
		return
	}

	m.layout = l
	m.cells = rasterize(l, cols, rows, pxW, pxH)

	layers := l.LayerCount()
	m.styles = make([]lipgloss.Style, layers+1)
	for layer := 1; layer <= layers; layer++ {
		m.styles[layer] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Hex(layer, layers)))
	}
	m.logger.Debug("preview recomputed", "viewport", fmt.Sprintf("%gx%g", vp.Width, vp.Height), "cells", len(l.Cells))
}

// rasterize samples the layout at the center of every character and
// returns the layer under it, or 0 for the gaps between hexagons.
func rasterize(l *hexgrid.Layout, cols, rows int, pxW, pxH float64) [][]int {
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
	}
	for _, c := range l.Cells {
		v := c.Vertices
		x0 := max(int(math.Floor(v[5].X/pxW)), 0)
		x1 := min(int(math.Ceil(v[1].X/pxW)), cols-1)
		y0 := max(int(math.Floor(v[0].Y/pxH)), 0)
		y1 := min(int(math.Ceil(v[3].Y/pxH)), rows-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := hexgrid.Point{X: (float64(x) + 0.5) * pxW, Y: (float64(y) + 0.5) * pxH}
				if insideHexagon(v, p) {
					grid[y][x] = c.Layer
				}
			}
		}
	}
	return grid
}

// insideHexagon reports whether p lies within the clockwise outline v.
func insideHexagon(v [6]hexgrid.Point, p hexgrid.Point) bool {
	for i := range v {
		a, b := v[i], v[(i+1)%len(v)]
		if (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) < 0 {
			return false
		}
	}
	return true
}

// =============================================================================
// View
// =============================================================================

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Padding(0, 1).
	Width(panelWidth - 2)

var (
	fieldSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	fieldNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

func (m previewModel) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	body := m.grid()
	if m.open {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panel())
	}
	b.WriteString(body)
	b.WriteString("\n")

	help := "tab settings  q quit"
	if m.open {
		help = "↑/↓ select  +/- adjust  ⏎ apply  esc reset  tab close  q quit"
	}
	b.WriteString(StyleDim.Render(help))
	return b.String()
}

func (m previewModel) header() string {
	title := StyleTitle.Render(appName)
	if m.layout == nil {
		return title
	}
	d := m.layout.Dimensions
	stats := fmt.Sprintf("  %d×%d grid · %d cells · %d layers", d.Rows, d.Cols, len(m.layout.Cells), m.layout.LayerCount())
	return title + StyleDim.Render(stats)
}

func (m previewModel) grid() string {
	cols, rows := m.gridArea()
	if cols <= 0 || rows <= 0 {
		return ""
	}
	area := lipgloss.NewStyle().Width(cols).Height(rows)

	if m.err != nil {
		msg := styleIconError.Render(iconError) + " " + errors.UserMessage(m.err)
		return area.Render(lipgloss.NewStyle().Width(cols).Render(msg))
	}

	lines := make([]string, len(m.cells))
	for y, row := range m.cells {
		var line strings.Builder
		for x := 0; x < len(row); {
			layer := row[x]
			n := 1
			for x+n < len(row) && row[x+n] == layer {
				n++
			}
			if layer == 0 {
				line.WriteString(strings.Repeat(" ", n))
			} else {
				line.WriteString(m.styles[layer].Render(strings.Repeat("█", n)))
			}
			x += n
		}
		lines[y] = line.String()
	}
	return area.Render(strings.Join(lines, "\n"))
}

func (m previewModel) panel() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Settings"))
	b.WriteString("\n\n")

	for i, f := range previewFields {
		cursor := "  "
		style := fieldNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = fieldSelectedStyle
		}
		value := f.value(m.draft)
		if value != f.value(m.applied) {
			value += "*"
		}
		label := fmt.Sprintf("%-15s", f.label)
		b.WriteString(cursor + style.Render(label) + " " + StyleValue.Render(value) + "\n")
	}

	b.WriteString("\n")
	if m.draft != m.applied {
		b.WriteString(StyleWarning.Render("⏎ to apply"))
	} else {
		b.WriteString(StyleDim.Render("applied"))
	}
	return panelStyle.Render(b.String())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
