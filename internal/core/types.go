package core

import "time"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Empty reports whether the size describes a grid without cells.
func (s Size) Empty() bool { return s.Rows <= 0 || s.Cols <= 0 }

// FitGrid converts a surface extent into the number of whole cells of the
// given size that fit in it.
func FitGrid(width, height, cellW, cellH int) Size {
	if cellW <= 0 || cellH <= 0 || width <= 0 || height <= 0 {
		return Size{}
	}
	return Size{Rows: height / cellH, Cols: width / cellW}
}

// Renderer is the view a controller keeps in sync with the logical grid.
type Renderer interface {
	RebuildGrid(rows, cols int)
	RenderCell(row, col int, alive bool)
}

// Timer is the single repeating tick source driving a running simulation.
// Every tick it delivers must carry the token it was started with.
type Timer interface {
	Start(interval time.Duration, token uint64)
	Stop()
}
