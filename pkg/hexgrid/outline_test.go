package hexgrid

import "testing"

func TestVertices(t *testing.T) {
	got := Vertices(Point{100, 100}, 84, 100)
	want := [6]Point{
		{100, 100}, // top
		{142, 125}, // upper-right
		{142, 175}, // lower-right
		{100, 200}, // bottom
		{58, 175},  // lower-left
		{58, 125},  // upper-left
	}
	if got != want {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

func TestComputeCellVertices(t *testing.T) {
	cfg := DefaultConfig()
	l, err := Compute(Viewport{Width: 400, Height: 300}, cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for _, c := range l.Cells {
		if want := Vertices(c.Center, cfg.HexagonWidth, cfg.HexagonHeight); c.Vertices != want {
			t.Fatalf("cell (%d,%d) vertices = %v, want %v", c.Row, c.Col, c.Vertices, want)
		}
	}
}

func TestBounds(t *testing.T) {
	l, err := Compute(Viewport{Width: 800, Height: 600}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	minP, maxP := l.Bounds()
	// row 1 starts at x=0, so its left vertices reach -42
	if minP.X != -42 || minP.Y != 0 {
		t.Errorf("Bounds() min = %v, want {-42 0}", minP)
	}
	// even rows put the last anchor at 10*88+44, plus half a hexagon
	if maxP.X != 966 {
		t.Errorf("Bounds() max.X = %v, want 966", maxP.X)
	}
	if want := 19*79.0 + 100; maxP.Y != want {
		t.Errorf("Bounds() max.Y = %v, want %v", maxP.Y, want)
	}

	empty := &Layout{}
	if a, b := empty.Bounds(); a != (Point{}) || b != (Point{}) {
		t.Errorf("empty Bounds() = %v, %v, want zero points", a, b)
	}
}
