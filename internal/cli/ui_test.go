package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/render"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestGridSummaryString(t *testing.T) {
	tests := []struct {
		name    string
		summary gridSummary
		want    string
	}{
		{
			name:    "fresh",
			summary: gridSummary{Rows: 20, Cols: 11, Cells: 220, Layers: 6},
			want:    "20×11 grid · 220 cells · 6 layers · fresh",
		},
		{
			name:    "cached",
			summary: gridSummary{Rows: 1, Cols: 1, Cells: 1, Layers: 1, Cached: true},
			want:    "1×1 grid · 1 cells · 1 layers · cached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(tt.summary.String()); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeLayoutMatchesStats(t *testing.T) {
	opts := pipeline.Options{}
	l, err := pipeline.GenerateLayout(opts)
	if err != nil {
		t.Fatal(err)
	}
	fromLayout := summarizeLayout(l, false)
	fromStats := summarizeStats(pipeline.Stats{
		Rows:       l.Dimensions.Rows,
		Cols:       l.Dimensions.Cols,
		CellCount:  len(l.Cells),
		LayerCount: l.LayerCount(),
	}, false)

	if fromLayout != fromStats {
		t.Errorf("summarizeLayout = %+v, summarizeStats = %+v", fromLayout, fromStats)
	}
	if fromLayout.Cells != fromLayout.Rows*fromLayout.Cols {
		t.Errorf("cells = %d, want rows*cols = %d", fromLayout.Cells, fromLayout.Rows*fromLayout.Cols)
	}
}

func TestGridSummarySwatch(t *testing.T) {
	s := gridSummary{Layers: 4}
	if s.swatch() != "" {
		t.Error("swatch without palette should be empty")
	}

	pal := render.DefaultPalette()
	s.Palette = &pal
	if got := strings.Count(plain(s.swatch()), iconCell); got != 4 {
		t.Errorf("swatch has %d cells, want 4", got)
	}
}

func TestConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	ui := newConsole(&buf)

	ui.success("Layout complete")
	ui.file("layout.json")
	ui.field("ID", "abc")
	ui.warning("Presets are kept in memory")
	ui.nextStep("Render", "honeycomb visualize layout.json")

	got := strings.Split(strings.TrimSpace(plain(buf.String())), "\n")
	want := []string{
		iconSuccess + " Layout complete",
		"  " + iconArrow + " layout.json",
		"ID           abc",
		iconWarning + " Presets are kept in memory",
		"Render: honeycomb visualize layout.json",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConsoleSummaryWithPalette(t *testing.T) {
	var buf bytes.Buffer
	l, err := hexgrid.Compute(hexgrid.Viewport{Width: 800, Height: 600}, hexgrid.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := summarizeLayout(l, true)
	pal := render.DefaultPalette()
	s.Palette = &pal

	newConsole(&buf).summary(s)

	lines := strings.Split(strings.TrimRight(plain(buf.String()), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want summary and swatch:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  20×11 grid · 220 cells") || !strings.HasSuffix(lines[0], "cached") {
		t.Errorf("summary line = %q", lines[0])
	}
	if n := strings.Count(lines[1], iconCell); n != l.LayerCount() {
		t.Errorf("swatch has %d cells, want %d", n, l.LayerCount())
	}
}
