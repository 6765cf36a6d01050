package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "pdf", "png", "json"}, false},
		{"invalid format", []string{"gif"}, true},
		{"mixed valid invalid", []string{"svg", "gif"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "layout.json", "layout"},
		{"", "out/grid.layout.json", "out/grid.layout"},
		{"art.svg", "layout.json", "art"},
		{"art.png", "layout.json", "art"},
		{"art", "layout.json", "art"},
		{"art.v2", "layout.json", "art.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")}
	var status bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.ui = newConsole(&status)

	t.Run("single format to output", func(t *testing.T) {
		out := filepath.Join(dir, "single.svg")
		err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg"},
			input:     "ignored.json",
			output:    out,
		})
		if err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(out)
		if err != nil || string(data) != "<svg/>" {
			t.Errorf("single.svg = %q, %v", data, err)
		}
		if !strings.Contains(status.String(), "Rendered svg (fresh)") {
			t.Errorf("status = %q, want rendered line", status.String())
		}
	})

	t.Run("multiple formats share a base", func(t *testing.T) {
		base := filepath.Join(dir, "multi")
		err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg", "json"},
			output:    base + ".svg",
		})
		if err != nil {
			t.Fatal(err)
		}
		for _, ext := range []string{".svg", ".json"} {
			if _, err := os.Stat(base + ext); err != nil {
				t.Errorf("missing %s: %v", base+ext, err)
			}
		}
	})

	t.Run("missing artifact", func(t *testing.T) {
		err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"png"},
			output:    filepath.Join(dir, "x.png"),
		})
		if err == nil {
			t.Error("expected error for missing artifact")
		}
	})
}

func TestFlagsOverrideSettings(t *testing.T) {
	var (
		lf layoutFlags
		rf renderFlags
	)
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	lf.register(cmd)
	rf.register(cmd)
	cmd.SetArgs([]string{"--frame-width", "90", "--layer-mode", "hex", "--style", "outline"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	s := settings.Default()
	s.Viewport.Width = 1024
	lf.apply(cmd, &s)
	rf.apply(cmd, &s)

	if s.Grid.FrameWidth != 90 {
		t.Errorf("frame width = %v, want 90", s.Grid.FrameWidth)
	}
	if s.Grid.LayerMode != hexgrid.LayerModeHex {
		t.Errorf("layer mode = %q, want hex", s.Grid.LayerMode)
	}
	if s.Render.Style != "outline" {
		t.Errorf("style = %q, want outline", s.Render.Style)
	}
	if s.Viewport.Width != 1024 {
		t.Errorf("unset flag overrode viewport width: %v", s.Viewport.Width)
	}
	if s.Grid.HexagonWidth != hexgrid.DefaultHexagonWidth {
		t.Errorf("unset flag changed hexagon width: %v", s.Grid.HexagonWidth)
	}
}

func TestLayoutThenVisualize(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	ctx := context.Background()

	layoutPath := filepath.Join(dir, "layout.json")
	if err := c.runLayout(ctx, settings.Default(), layoutPath, true, false); err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	l, err := hexgrid.ReadLayoutFile(layoutPath)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.Dimensions.Rows != 20 || l.Dimensions.Cols != 11 {
		t.Errorf("grid = %dx%d, want 20x11", l.Dimensions.Rows, l.Dimensions.Cols)
	}

	if err := c.runVisualize(ctx, layoutPath, settings.Default(), []string{"svg", "png"}, "", true); err != nil {
		t.Fatalf("runVisualize: %v", err)
	}
	for _, name := range []string{"layout.svg", "layout.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	c := New(&bytes.Buffer{}, LogInfo)

	out := filepath.Join(dir, "art")
	if err := c.runRender(context.Background(), settings.Default(), []string{"svg", "png"}, out, true, false); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	for _, ext := range []string{".svg", ".png"} {
		info, err := os.Stat(out + ext)
		if err != nil {
			t.Fatalf("missing %s: %v", out+ext, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", out+ext)
		}
	}
}

func TestRunRenderInvalidSettings(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	s := settings.Default()
	s.Grid.FrameWidth = -1

	err := c.runRender(context.Background(), s, []string{"svg"}, filepath.Join(t.TempDir(), "x"), true, false)
	if err == nil {
		t.Fatal("expected error for negative frame width")
	}
}
