package render

import "image/color"

// CellView is a headless Renderer: it mirrors the logical grid as one byte per
// cell so a painter can upload it in one go.
type CellView struct {
	rows, cols int
	cells      []uint8
	dirty      bool
}

// NewCellView returns an empty view.
func NewCellView() *CellView { return &CellView{} }

// RebuildGrid discards the old cells and allocates rows*cols dead ones.
func (v *CellView) RebuildGrid(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	v.rows, v.cols = rows, cols
	v.cells = make([]uint8, rows*cols)
	v.dirty = true
}

// RenderCell records the state of a single cell.
func (v *CellView) RenderCell(row, col int, alive bool) {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return
	}
	var c uint8
	if alive {
		c = 1
	}
	idx := row*v.cols + col
	if v.cells[idx] != c {
		v.cells[idx] = c
		v.dirty = true
	}
}

// Size returns the view dimensions as (rows, cols).
func (v *CellView) Size() (int, int) { return v.rows, v.cols }

// Cells exposes the mirrored cell values in row-major order.
func (v *CellView) Cells() []uint8 { return v.cells }

// Alive reports the displayed state of a cell.
func (v *CellView) Alive(row, col int) bool {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return false
	}
	return v.cells[row*v.cols+col] == 1
}

// TakeDirty reports whether the view changed since the last call.
func (v *CellView) TakeDirty() bool {
	d := v.dirty
	v.dirty = false
	return d
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
