package gridgraph

import (
	"strconv"
	"strings"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values does not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular for invalid shapes.
func NewGrid(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]int(nil), row...)
	}

	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{Width: w, Height: h, Conn: conn, cells: cells, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value at p. p must be in bounds.
func (g *Grid) At(p Point) int { return g.cells[p.Y][p.X] }

// Set stores v at p. p must be in bounds.
func (g *Grid) Set(p Point, v int) { g.cells[p.Y][p.X] = v }

// Add increments the value at p by delta and returns the new value.
func (g *Grid) Add(p Point, delta int) int {
	g.cells[p.Y][p.X] += delta
	return g.cells[p.Y][p.X]
}

// Len returns the number of cells.
func (g *Grid) Len() int { return g.Width * g.Height }

// Neighbors returns the in-bounds neighbours of p under the grid's
// connectivity, clockwise from north.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Points returns every coordinate in row-major order.
func (g *Grid) Points() []Point {
	out := make([]Point, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}

	return out
}

// Values returns a deep copy of the cell values.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.Height)
	for y, row := range g.cells {
		out[y] = append([]int(nil), row...)
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.Values()

	return &c
}

// String renders the grid one row per line. When every cell holds a single
// digit the row is written as a digit block, otherwise values are space
// separated.
func (g *Grid) String() string {
	sep := ""
	for _, row := range g.cells {
		for _, v := range row {
			if v < 0 || v > 9 {
				sep = " "
			}
		}
	}

	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}
