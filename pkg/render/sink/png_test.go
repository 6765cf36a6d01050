package sink

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	return img
}

func TestRenderPNGSize(t *testing.T) {
	l := testLayout(t)

	tests := []struct {
		name  string
		opts  []PNGOption
		wantW int
		wantH int
	}{
		{"default scale", nil, 1600, 1200},
		{"scale 1", []PNGOption{WithScale(1)}, 800, 600},
		{"scale 0.5", []PNGOption{WithScale(0.5)}, 400, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(l, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			b := decodePNG(t, data).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNGPixels(t *testing.T) {
	l := testLayout(t)
	pal, err := render.ParsePalette("#ff0000", "#0000ff")
	if err != nil {
		t.Fatal(err)
	}

	data, err := RenderPNG(l, WithScale(1), WithPNGPaint(WithPalette(pal), WithBackground("#00ff00")))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img := decodePNG(t, data)

	// Middle of the center hexagon carries the inner color.
	center := centerCell(t, l)
	m := hexCenter(center)
	r, g, b, _ := img.At(int(m.X), int(m.Y)).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("center pixel = (%d,%d,%d), want inner red", r>>8, g>>8, b>>8)
	}

	// The frame gap between two hexagons of a row shows the background:
	// hexagons are 84 wide in 88-wide frames.
	gapX := int(center.Vertices[1].X) + 2
	r, g, b, _ = img.At(gapX, int(m.Y)).RGBA()
	if r>>8 != 0 || g>>8 != 0xff || b>>8 != 0 {
		t.Errorf("gap pixel = (%d,%d,%d), want background green", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGStyles(t *testing.T) {
	l := testLayout(t)
	for _, style := range []string{render.StyleFill, render.StyleOutline, render.StyleClip} {
		t.Run(style, func(t *testing.T) {
			data, err := RenderPNG(l, WithScale(0.5), WithPNGPaint(WithStyle(style)))
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			decodePNG(t, data)
		})
	}
}

func TestRenderPNGOutlineHole(t *testing.T) {
	l := testLayout(t)
	data, err := RenderPNG(l, WithScale(1), WithPNGPaint(WithStyle(render.StyleOutline)))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img := decodePNG(t, data)

	m := hexCenter(centerCell(t, l))
	if _, _, _, a := img.At(int(m.X), int(m.Y)).RGBA(); a != 0 {
		t.Errorf("outline interior alpha = %d, want transparent", a)
	}
}

func TestRenderPNGInvalid(t *testing.T) {
	l := testLayout(t)

	tests := []struct {
		name string
		opts []PNGOption
	}{
		{"zero scale", []PNGOption{WithScale(0)}},
		{"negative scale", []PNGOption{WithScale(-1)}},
		{"huge scale", []PNGOption{WithScale(1000)}},
		{"bad background", []PNGOption{WithPNGPaint(WithBackground("green"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderPNG(l, tt.opts...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("RenderPNG() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func centerCell(t *testing.T, l *hexgrid.Layout) hexgrid.Cell {
	t.Helper()
	for _, c := range l.Cells {
		if c.Row == l.Dimensions.CenterRow && c.Col == l.Dimensions.CenterCol {
			return c
		}
	}
	t.Fatal("center cell missing")
	return hexgrid.Cell{}
}
