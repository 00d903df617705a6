package ui

import "mad-life/internal/core"

// CellAt maps a pointer position to grid coordinates for a grid drawn at
// (0, offsetY) with square cells.
func CellAt(x, y, cellSize, offsetY int, size core.Size) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < offsetY {
		return 0, 0, false
	}
	row = (y - offsetY) / cellSize
	col = x / cellSize
	if row >= size.Rows || col >= size.Cols {
		return 0, 0, false
	}
	return row, col, true
}
