package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
)

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if s.Grid != hexgrid.DefaultConfig() {
		t.Errorf("Grid = %+v, want default config", s.Grid)
	}
	if s.Viewport.Width != 800 || s.Viewport.Height != 600 {
		t.Errorf("Viewport = %+v, want 800x600", s.Viewport)
	}
}

func TestDecodePartial(t *testing.T) {
	in := `
[grid]
frame_width = 60.0
layer_mode = "hex"

[render]
style = "outline"
`
	s, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if s.Grid.FrameWidth != 60 {
		t.Errorf("FrameWidth = %v, want 60", s.Grid.FrameWidth)
	}
	if s.Grid.FrameHeight != hexgrid.DefaultFrameHeight {
		t.Errorf("FrameHeight = %v, want default", s.Grid.FrameHeight)
	}
	if s.Grid.LayerMode != hexgrid.LayerModeHex {
		t.Errorf("LayerMode = %q, want hex", s.Grid.LayerMode)
	}
	if s.Render.Style != "outline" {
		t.Errorf("Style = %q, want outline", s.Render.Style)
	}
	if s.Render.Scale != Default().Render.Scale {
		t.Errorf("Scale = %v, want default", s.Render.Scale)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"bad toml", "[grid\nframe_width = 1", errors.ErrCodeInvalidFormat},
		{"wrong type", "[grid]\nframe_width = \"wide\"", errors.ErrCodeInvalidFormat},
		{"zero frame", "[grid]\nframe_width = 0.0", errors.ErrCodeInvalidConfig},
		{"negative viewport", "[viewport]\nwidth = -1.0", errors.ErrCodeInvalidConfig},
		{"unknown mode", "[grid]\nlayer_mode = \"manhattan\"", errors.ErrCodeInvalidConfig},
		{"bad style", "[render]\nstyle = \"sketch\"", errors.ErrCodeInvalidStyle},
		{"bad color", "[render]\ninner_color = \"gold\"", errors.ErrCodeInvalidInput},
		{"zero scale", "[render]\nscale = 0.0", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	s := Default()
	s.Grid.FrameWidth = 70
	s.Viewport = hexgrid.Viewport{Width: 1920, Height: 1080}
	s.Render.Style = "clip"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("Load() = %+v, want %+v", got, s)
	}
}

func TestSaveInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s := Default()
	s.Grid.HexagonHeight = -5

	if err := s.Save(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Save() error = %v, want INVALID_CONFIG", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid settings were written")
	}
}

func TestLoadMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("Load(missing) = %+v, want defaults", s)
	}
}

func TestEncodeKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out := buf.String()
	for _, key := range []string{"[grid]", "frame_width", "hexagon_height", "[viewport]", "[render]", "inner_color"} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded settings missing %q", key)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "honeycomb", FileName); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
}

func TestPaintOptions(t *testing.T) {
	opts, err := Default().Render.PaintOptions()
	if err != nil {
		t.Fatalf("PaintOptions() error: %v", err)
	}
	if len(opts) != 4 {
		t.Errorf("PaintOptions() len = %d, want 4", len(opts))
	}
}
