package core

// Grid stores a 2D grid of binary cell values in row-major order. Its
// dimensions are fixed at creation; a grid of another size is a new Grid.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Zero or
// negative dimensions produce an empty grid.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.Rows == 0 || g.Cols == 0 }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates. It must not be
// called on an empty grid.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap.
func (g *Grid) Alive(row, col int) bool {
	if g.Empty() {
		return false
	}
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)] == 1
}

// Set stores the cell state at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.Contains(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols}
	if g.data != nil {
		out.data = append([]uint8(nil), g.data...)
	}
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
