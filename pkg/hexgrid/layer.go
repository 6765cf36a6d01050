package hexgrid

import "math"

// Boundaries are increasing distance thresholds; boundary i closes layer i+1.
type Boundaries []float64

// LayerBoundaries returns floor((rows-1)/2) boundaries spaced one frame width
// apart: FrameWidth, 2*FrameWidth, ...
func LayerBoundaries(rows int, cfg Config) Boundaries {
	n := (rows - 1) / 2
	if n <= 0 {
		return Boundaries{}
	}
	b := make(Boundaries, n)
	for i := range b {
		b[i] = float64(i+1) * cfg.FrameWidth
	}
	return b
}

// Layer returns the 1-based index of the first boundary that distance does
// not exceed, or len(b)+1 when it lies beyond all of them.
func (b Boundaries) Layer(distance float64) int {
	for i, limit := range b {
		if distance <= limit {
			return i + 1
		}
	}
	return len(b) + 1
}

// Count returns the number of layers the boundaries define.
func (b Boundaries) Count() int {
	return len(b) + 1
}

// Distance measures how far (row, col) is from (centerRow, centerCol) in
// pixels, using the metric selected by mode.
func Distance(row, col, centerRow, centerCol int, cfg Config, mode LayerMode) float64 {
	if mode == LayerModeHex {
		return float64(HexDistance(row, col, centerRow, centerCol)) * cfg.FrameWidth
	}
	dx := math.Abs(float64(col-centerCol)) * cfg.FrameWidth
	dy := math.Abs(float64(row-centerRow)) * centerRowSpacing(cfg)
	return math.Sqrt(dx*dx + dy*dy)
}

// HexDistance returns the number of steps between two cells of the grid.
// Rows are offset with even rows shifted right, so offsets are converted to
// axial coordinates before measuring.
func HexDistance(row1, col1, row2, col2 int) int {
	q1, r1 := toAxial(row1, col1)
	q2, r2 := toAxial(row2, col2)
	dq, dr := q1-q2, r1-r2
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func toAxial(row, col int) (q, r int) {
	return col - (row+(row&1))/2, row
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
