package hexgrid

import (
	"slices"
	"testing"
)

func TestLayerBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		rows int
		want Boundaries
	}{
		{1, Boundaries{}},
		{2, Boundaries{}},
		{3, Boundaries{88}},
		{6, Boundaries{88, 176}},
		{7, Boundaries{88, 176, 264}},
	}

	for _, tt := range tests {
		got := LayerBoundaries(tt.rows, cfg)
		if !slices.Equal(got, tt.want) {
			t.Errorf("LayerBoundaries(%d) = %v, want %v", tt.rows, got, tt.want)
		}
	}

	if got := len(LayerBoundaries(20, cfg)); got != 9 {
		t.Errorf("LayerBoundaries(20) has %d boundaries, want 9", got)
	}
}

func TestBoundariesLayer(t *testing.T) {
	b := Boundaries{88, 176, 264}
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"center", 0, 1},
		{"inside first", 50, 1},
		{"on first boundary", 88, 1},
		{"just past first", 88.01, 2},
		{"on last boundary", 264, 3},
		{"beyond all", 1000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Layer(tt.distance); got != tt.want {
				t.Errorf("Layer(%v) = %d, want %d", tt.distance, got, tt.want)
			}
		})
	}

	if got := (Boundaries{}).Layer(500); got != 1 {
		t.Errorf("empty boundaries: Layer() = %d, want 1", got)
	}
}

func TestHexDistance(t *testing.T) {
	tests := []struct {
		name   string
		r1, c1 int
		r2, c2 int
		want   int
	}{
		{"same cell", 4, 5, 4, 5, 0},
		{"same row neighbour", 4, 5, 4, 6, 1},
		{"even row to odd row below left", 0, 0, 1, 0, 1},
		{"even row to odd row below right", 0, 0, 1, 1, 1},
		{"odd row to even row below left", 1, 1, 2, 0, 1},
		{"odd row to even row below right", 1, 1, 2, 1, 1},
		{"two rows straight down", 0, 0, 2, 0, 2},
		{"far", 0, 0, 4, 6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexDistance(tt.r1, tt.c1, tt.r2, tt.c2); got != tt.want {
				t.Errorf("HexDistance() = %d, want %d", got, tt.want)
			}
			if got := HexDistance(tt.r2, tt.c2, tt.r1, tt.c1); got != tt.want {
				t.Errorf("HexDistance() reversed = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDistanceEuclidean(t *testing.T) {
	cfg := DefaultConfig()

	if got := Distance(4, 5, 4, 5, cfg, LayerModeEuclidean); got != 0 {
		t.Errorf("Distance(center) = %v, want 0", got)
	}
	if got := Distance(4, 7, 4, 5, cfg, LayerModeEuclidean); got != 176 {
		t.Errorf("Distance(two columns) = %v, want 176", got)
	}
	// one row is 100 - 100/4 = 75 pixels apart
	if got := Distance(7, 5, 4, 5, cfg, LayerModeEuclidean); got != 225 {
		t.Errorf("Distance(three rows) = %v, want 225", got)
	}
}

func TestLayersMonotonicInDistance(t *testing.T) {
	for _, mode := range []LayerMode{LayerModeEuclidean, LayerModeHex} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LayerMode = mode
			l, err := Compute(Viewport{Width: 1440, Height: 900}, cfg)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}

			type ranked struct {
				distance float64
				layer    int
			}
			d := l.Dimensions
			cells := make([]ranked, len(l.Cells))
			for i, c := range l.Cells {
				cells[i] = ranked{Distance(c.Row, c.Col, d.CenterRow, d.CenterCol, cfg, mode), c.Layer}
			}
			slices.SortFunc(cells, func(a, b ranked) int {
				if a.distance != b.distance {
					if a.distance < b.distance {
						return -1
					}
					return 1
				}
				return a.layer - b.layer
			})

			for i := 1; i < len(cells); i++ {
				if cells[i].layer < cells[i-1].layer {
					t.Fatalf("distance %v got layer %d, closer distance %v got layer %d",
						cells[i].distance, cells[i].layer, cells[i-1].distance, cells[i-1].layer)
				}
			}
		})
	}
}

func TestHexModeRings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerMode = LayerModeHex
	l, err := Compute(Viewport{Width: 800, Height: 600}, cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	d := l.Dimensions
	for _, c := range l.Cells {
		steps := HexDistance(c.Row, c.Col, d.CenterRow, d.CenterCol)
		want := max(steps, 1)
		if want > len(l.Boundaries) {
			want = len(l.Boundaries) + 1
		}
		if c.Layer != want {
			t.Errorf("cell (%d,%d) at %d steps: layer %d, want %d", c.Row, c.Col, steps, c.Layer, want)
		}
	}
}

func TestCellsByLayer(t *testing.T) {
	l, err := Compute(Viewport{Width: 800, Height: 600}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	groups := l.CellsByLayer()
	if len(groups) != l.LayerCount() {
		t.Fatalf("CellsByLayer() returned %d groups, want %d", len(groups), l.LayerCount())
	}

	total := 0
	for i, g := range groups {
		for _, c := range g {
			if c.Layer != i+1 {
				t.Errorf("group %d contains cell with layer %d", i+1, c.Layer)
			}
		}
		total += len(g)
	}
	if total != len(l.Cells) {
		t.Errorf("CellsByLayer() holds %d cells, want %d", total, len(l.Cells))
	}
	if len(groups[0]) == 0 {
		t.Error("layer 1 should not be empty")
	}
}
