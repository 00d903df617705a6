//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a CellView into an image, one pixel per cell, and
// draws it scaled to the cell size.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter returns a painter; its image is allocated on first Blit.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit draws the view at (0, offsetY) with cellSize pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, view *CellView, on, off color.Color, cellSize, offsetY int) {
	rows, cols := view.Size()
	if rows == 0 || cols == 0 {
		return
	}
	dirty := view.TakeDirty()
	if gp.img == nil || gp.rows != rows || gp.cols != cols {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.rows, gp.cols = rows, cols
		gp.img = ebiten.NewImage(cols, rows)
		gp.buf = make([]byte, 4*rows*cols)
		dirty = true
	}
	if dirty {
		fillBinaryRGBA(gp.buf, view.Cells(), on, off)
		gp.img.WritePixels(gp.buf)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(0, float64(offsetY))
	dst.DrawImage(gp.img, op)
}
