//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the part of the simulation the overlay reads.
type Status interface {
	Size() core.Size
	Progressing() bool
}

// Overlay draws the optional cell lattice, the hovered cell and a badge once
// the run has settled.
type Overlay struct {
	sim      Status
	cellSize int
	offsetY  int
	showGrid bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim Status, cellSize, offsetY int) *Overlay {
	o := &Overlay{sim: sim, cellSize: cellSize, offsetY: offsetY, showGrid: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the lattice with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.Empty() || o.cellSize <= 0 {
		return
	}
	w := float64(size.Cols * o.cellSize)
	h := float64(size.Rows * o.cellSize)
	top := float64(o.offsetY)

	if o.showGrid && o.cellSize >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for c := 0; c <= size.Cols; c++ {
			o.fillRect(screen, float64(c*o.cellSize), top, 1, h, line)
		}
		for r := 0; r <= size.Rows; r++ {
			o.fillRect(screen, 0, top+float64(r*o.cellSize), w, 1, line)
		}
	}

	mx, my := ebiten.CursorPosition()
	if row, col, ok := CellAt(mx, my, o.cellSize, o.offsetY, size); ok {
		hover := color.RGBA{R: 90, G: 160, B: 220, A: 90}
		o.fillRect(screen, float64(col*o.cellSize), top+float64(row*o.cellSize), float64(o.cellSize), float64(o.cellSize), hover)
	}

	if !o.sim.Progressing() {
		face := basicfont.Face7x13
		label := "settled"
		bounds := text.BoundString(face, label)
		x := int(w) - bounds.Dx() - 8
		o.fillRect(screen, float64(x-4), top+4, float64(bounds.Dx()+8), float64(bounds.Dy()+8), color.RGBA{R: 16, G: 16, B: 20, A: 200})
		text.Draw(screen, label, face, x, int(top)+8+bounds.Dy(), color.RGBA{R: 255, G: 200, B: 90, A: 255})
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
