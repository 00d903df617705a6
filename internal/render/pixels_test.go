package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestCellViewTracksCells(t *testing.T) {
	v := NewCellView()
	v.RebuildGrid(2, 3)
	if rows, cols := v.Size(); rows != 2 || cols != 3 {
		t.Fatalf("size = %dx%d", rows, cols)
	}
	if !v.TakeDirty() {
		t.Fatal("rebuild should mark the view dirty")
	}
	v.RenderCell(1, 2, false)
	if v.TakeDirty() {
		t.Fatal("rendering an unchanged cell should not dirty the view")
	}
	v.RenderCell(1, 2, true)
	v.RenderCell(5, 5, true)
	if !v.TakeDirty() || !v.Alive(1, 2) {
		t.Fatal("rendered cell not recorded")
	}
	if !slices.Equal(v.Cells(), []uint8{0, 0, 0, 0, 0, 1}) {
		t.Fatalf("cells = %v", v.Cells())
	}
	v.RebuildGrid(1, 1)
	if v.Alive(1, 2) || len(v.Cells()) != 1 {
		t.Fatal("rebuild must discard old cells")
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{A: 255}
	fillBinaryRGBA(buf, []uint8{1, 0}, on, off)
	if !slices.Equal(buf, []byte{10, 20, 30, 255, 0, 0, 0, 255}) {
		t.Fatalf("pixels = %v", buf)
	}
}
