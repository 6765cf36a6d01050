package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("214")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for headings such as preset names.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for names the user chose.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for separators and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for grid counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for completed steps and cache hits.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warnings and pending edits.
	StyleWarning = lipgloss.NewStyle().Foreground(colorAmber)
)

var (
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleFieldKey    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCell    = "⬢"

	statusCached = "cached"
	statusFresh  = "fresh"
)

// =============================================================================
// Console
// =============================================================================

// console writes human-oriented status lines. Layout JSON and settings TOML
// are written to the command's output directly and never pass through it.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) console {
	return console{w: w}
}

func (c console) line(icon string, style lipgloss.Style, msg string) {
	fmt.Fprintln(c.w, style.Render(icon)+" "+msg)
}

func (c console) success(format string, args ...any) {
	c.line(iconSuccess, StyleSuccess, fmt.Sprintf(format, args...))
}

func (c console) failure(format string, args ...any) {
	c.line(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func (c console) warning(format string, args ...any) {
	c.line(iconWarning, StyleWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (c console) info(format string, args ...any) {
	c.line(iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// detail prints an indented, dimmed line under the previous status.
func (c console) detail(format string, args ...any) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (c console) file(path string) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func (c console) field(key, value string) {
	fmt.Fprintln(c.w, styleFieldKey.Render(key)+" "+StyleValue.Render(value))
}

// nextStep suggests the command to run after this one.
func (c console) nextStep(description, cmd string) {
	fmt.Fprintln(c.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func (c console) blank() {
	fmt.Fprintln(c.w)
}

// =============================================================================
// Grid Summary
// =============================================================================

// gridSummary is the one-line description printed after a layout is
// produced.
type gridSummary struct {
	Rows, Cols int
	Cells      int
	Layers     int
	Cached     bool

	// Palette, when set, adds a swatch with one hexagon per layer.
	Palette *render.Palette
}

func summarizeLayout(l *hexgrid.Layout, cached bool) gridSummary {
	return gridSummary{
		Rows:   l.Dimensions.Rows,
		Cols:   l.Dimensions.Cols,
		Cells:  len(l.Cells),
		Layers: l.LayerCount(),
		Cached: cached,
	}
}

func summarizeStats(st pipeline.Stats, cached bool) gridSummary {
	return gridSummary{
		Rows:   st.Rows,
		Cols:   st.Cols,
		Cells:  st.CellCount,
		Layers: st.LayerCount,
		Cached: cached,
	}
}

// String renders the summary as rows×cols, e.g.
// "20×11 grid · 220 cells · 6 layers · fresh".
func (s gridSummary) String() string {
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleNumber.Render(fmt.Sprintf("%d×%d", s.Rows, s.Cols)) + StyleDim.Render(" grid"),
		StyleNumber.Render(fmt.Sprint(s.Cells)) + StyleDim.Render(" cells"),
		StyleNumber.Render(fmt.Sprint(s.Layers)) + StyleDim.Render(" layers"),
	}
	if s.Cached {
		parts = append(parts, StyleSuccess.Render(statusCached))
	} else {
		parts = append(parts, StyleDim.Render(statusFresh))
	}
	return strings.Join(parts, sep)
}

// swatch renders one hexagon per layer in its palette color, innermost first.
func (s gridSummary) swatch() string {
	if s.Palette == nil || s.Layers == 0 {
		return ""
	}
	var b strings.Builder
	for layer := 1; layer <= s.Layers; layer++ {
		color := lipgloss.Color(s.Palette.Hex(layer, s.Layers))
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(iconCell))
	}
	return b.String()
}

func (c console) summary(s gridSummary) {
	fmt.Fprintln(c.w, "  "+s.String())
	if sw := s.swatch(); sw != "" {
		fmt.Fprintln(c.w, "  "+sw)
	}
}
