package hexgrid

// Point is a 2D coordinate in viewport pixels, y pointing down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vertices returns the outline of a hexagon anchored at p, clockwise from the
// top: top, upper-right, lower-right, bottom, lower-left, upper-left. The top
// vertex sits on p and the outline extends width/2 to either side and height
// downwards.
func Vertices(p Point, width, height float64) [6]Point {
	half := width / 2
	quarter := height / 4
	return [6]Point{
		{p.X, p.Y},
		{p.X + half, p.Y + quarter},
		{p.X + half, p.Y + 3*quarter},
		{p.X, p.Y + height},
		{p.X - half, p.Y + 3*quarter},
		{p.X - half, p.Y + quarter},
	}
}

// LayerCount returns the number of layers of l, including the outermost one.
func (l *Layout) LayerCount() int {
	return l.Boundaries.Count()
}

// CellsByLayer groups cells by layer; index 0 holds layer 1. Cells keep
// their row-major order within each group.
func (l *Layout) CellsByLayer() [][]Cell {
	groups := make([][]Cell, l.LayerCount())
	for _, c := range l.Cells {
		groups[c.Layer-1] = append(groups[c.Layer-1], c)
	}
	return groups
}

// Bounds returns the top-left and bottom-right corners of the box enclosing
// every hexagon outline. An empty layout yields two zero points.
func (l *Layout) Bounds() (minP, maxP Point) {
	if len(l.Cells) == 0 {
		return Point{}, Point{}
	}
	minP = l.Cells[0].Vertices[0]
	maxP = minP
	for _, c := range l.Cells {
		for _, v := range c.Vertices {
			minP.X = min(minP.X, v.X)
			minP.Y = min(minP.Y, v.Y)
			maxP.X = max(maxP.X, v.X)
			maxP.Y = max(maxP.Y, v.Y)
		}
	}
	return minP, maxP
}
