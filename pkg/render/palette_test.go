package render

import (
	"testing"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name         string
		inner, outer string
		wantErr      bool
	}{
		{"defaults", DefaultInnerColor, DefaultOuterColor, false},
		{"black and white", "#000000", "#ffffff", false},
		{"missing hash", "ffd166", "#26547c", true},
		{"short form", "#fff", "#26547c", true},
		{"garbage outer", "#ffd166", "teal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette(tt.inner, tt.outer)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePalette() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ParsePalette() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestPaletteEndpoints(t *testing.T) {
	p, err := ParsePalette("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("ParsePalette() error: %v", err)
	}

	if got := p.Hex(1, 5); got != "#000000" {
		t.Errorf("Hex(1, 5) = %s, want #000000", got)
	}
	if got := p.Hex(5, 5); got != "#ffffff" {
		t.Errorf("Hex(5, 5) = %s, want #ffffff", got)
	}
	if got := p.Hex(1, 1); got != "#000000" {
		t.Errorf("Hex(1, 1) = %s, want inner color", got)
	}
}

func TestPaletteMonotonicLightness(t *testing.T) {
	p, err := ParsePalette("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("ParsePalette() error: %v", err)
	}

	prev := -1.0
	for layer := 1; layer <= 10; layer++ {
		l, _, _ := p.Color(layer, 10).Hcl()
		if l < prev {
			t.Errorf("layer %d lightness %v below layer %d lightness %v", layer, l, layer-1, prev)
		}
		prev = l
	}
}

func TestPaletteRGBA(t *testing.T) {
	p := DefaultPalette()
	c := p.RGBA(1, 3)
	if c.A != 0xff {
		t.Errorf("RGBA() alpha = %d, want 255", c.A)
	}
	if c.R != 0xff || c.G != 0xd1 || c.B != 0x66 {
		t.Errorf("RGBA(1, 3) = %v, want inner color #ffd166", c)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"fill", false},
		{"outline", false},
		{"clip", false},
		{"handdrawn", true},
		{"FILL", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}
