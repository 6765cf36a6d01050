package hexgrid

import (
	"math"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

// overscan is the 1.2 coverage margin expressed as an exact fraction, so that
// ceil(n * 1.2) never picks up an extra row from floating point noise.
const (
	overscanNum = 6
	overscanDen = 5
)

// Cell is one hexagon of a computed layout.
type Cell struct {
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	Center   Point    `json:"center"`
	Layer    int      `json:"layer"`
	Vertices [6]Point `json:"vertices"`
}

// Dimensions are the grid measurements shared by all cells of a layout.
type Dimensions struct {
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	RowStep         float64 `json:"row_step"`
	VerticalStagger float64 `json:"vertical_stagger"`
	CenterRow       int     `json:"center_row"`
	CenterCol       int     `json:"center_col"`
}

// Layout is the result of [Compute]: the grid, its layer boundaries and its
// cells in row-major order.
type Layout struct {
	Viewport   Viewport   `json:"viewport"`
	Config     Config     `json:"config"`
	Dimensions Dimensions `json:"dimensions"`
	Boundaries Boundaries `json:"boundaries"`
	Cells      []Cell     `json:"cells"`
}

// Compute tiles vp with hexagons described by cfg and assigns every hexagon
// to a layer. It returns an INVALID_CONFIG error for degenerate input and
// never produces NaN or infinite coordinates.
func Compute(vp Viewport, cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	rows, cols := GridSize(vp, cfg)
	if rows > MaxCells/cols {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"grid of %dx%d exceeds %d cells; increase frame size or shrink viewport", rows, cols, MaxCells)
	}

	centerRow, centerCol := CenterCell(vp, cfg)
	boundaries := LayerBoundaries(rows, cfg)

	l := &Layout{
		Viewport: vp,
		Config:   cfg,
		Dimensions: Dimensions{
			Rows:            rows,
			Cols:            cols,
			RowStep:         RowStep(cfg),
			VerticalStagger: VerticalStagger(cfg),
			CenterRow:       centerRow,
			CenterCol:       centerCol,
		},
		Boundaries: boundaries,
		Cells:      make([]Cell, 0, rows*cols),
	}

	mode := cfg.Mode()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := CellPosition(row, col, cfg)
			d := Distance(row, col, centerRow, centerCol, cfg, mode)
			l.Cells = append(l.Cells, Cell{
				Row:      row,
				Col:      col,
				Center:   center,
				Layer:    boundaries.Layer(d),
				Vertices: Vertices(center, cfg.HexagonWidth, cfg.HexagonHeight),
			})
		}
	}
	return l, nil
}

// VerticalStagger is the vertical distance used to decide how many rows are
// needed to cover the viewport.
func VerticalStagger(cfg Config) float64 {
	quarter := cfg.HexagonHeight / 4
	return cfg.FrameHeight - (3*quarter + (cfg.FrameWidth - cfg.HexagonHeight))
}

// RowStep is the vertical distance between the anchors of consecutive rows.
func RowStep(cfg Config) float64 {
	quarter := cfg.HexagonHeight / 4
	return cfg.FrameHeight - (cfg.FrameHeight - 3*quarter - (cfg.FrameWidth - cfg.HexagonWidth))
}

// centerRowSpacing is the row pitch used when locating the center cell and
// when measuring vertical distance between cells.
func centerRowSpacing(cfg Config) float64 {
	return cfg.FrameHeight - cfg.HexagonHeight/4
}

// GridSize returns the number of rows and columns needed to cover vp with a
// 20% overscan. Both are at least 1. cfg must be valid.
//
// Counts are capped just above MaxCells before the overscan, so a huge
// viewport yields a grid that [Compute] rejects rather than a wrapped value.
func GridSize(vp Viewport, cfg Config) (rows, cols int) {
	rows = overscan(span(vp.Height / VerticalStagger(cfg)))
	cols = overscan(span(vp.Width / cfg.FrameWidth))
	return rows, cols
}

func span(q float64) int {
	return int(math.Min(math.Floor(q), MaxCells+1))
}

func overscan(n int) int {
	n = (n*overscanNum + overscanDen - 1) / overscanDen
	return max(n, 1)
}

// CellPosition returns the anchor of the hexagon at (row, col). Even rows
// are shifted right by half a frame width.
func CellPosition(row, col int, cfg Config) Point {
	x := float64(col) * cfg.FrameWidth
	if row%2 == 0 {
		x += cfg.FrameWidth / 2
	}
	return Point{X: x, Y: float64(row) * RowStep(cfg)}
}

// CenterCell returns the row and column of the cell under the viewport
// center. The result may lie outside the grid for unusual geometries; layer
// classification still works because it only measures distance to it.
func CenterCell(vp Viewport, cfg Config) (row, col int) {
	c := vp.Center()
	col = int(math.Round(c.X / cfg.FrameWidth))
	row = int(math.Round(c.Y / centerRowSpacing(cfg)))
	return row, col
}
