package core

import (
	"testing"
	"time"
)

func TestGridWrap(t *testing.T) {
	g := NewGrid(4, 6)
	cases := []struct{ r, c, wr, wc int }{
		{-1, 0, 3, 0},
		{4, 6, 0, 0},
		{0, -1, 0, 5},
		{-9, 13, 3, 1},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.r, tc.c, r, c, tc.wr, tc.wc)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal source")
	}
	g.Set(0, 0, true)
	if c.Alive(0, 0) || c.Equal(g) {
		t.Fatal("clone shares storage with source")
	}
	if g.Population() != 2 {
		t.Fatalf("population = %d, expected 2", g.Population())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear should kill every cell")
	}
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid(0, 4)
	if !g.Empty() || len(g.Cells()) != 0 {
		t.Fatal("zero rows should give an empty grid")
	}
	if g.Alive(0, 0) {
		t.Fatal("empty grid has no live cells")
	}
	g.Set(0, 0, true)
	if g.Equal(NewGrid(1, 1)) {
		t.Fatal("grids of different sizes are not equal")
	}
}

func TestFitGrid(t *testing.T) {
	if got := FitGrid(805, 419, 20, 20); got != (Size{Rows: 20, Cols: 40}) {
		t.Fatalf("FitGrid = %+v", got)
	}
	if got := FitGrid(10, 10, 20, 20); !got.Empty() {
		t.Fatalf("tiny surface should fit no cells, got %+v", got)
	}
	if got := FitGrid(100, 100, 0, 20); !got.Empty() {
		t.Fatal("zero cell size must not divide")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedStepFiresPerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep()
	fs.now = clock.now

	if _, ok := fs.Due(); ok {
		t.Fatal("stopped timer must not fire")
	}
	fs.Start(100*time.Millisecond, 7)
	clock.t = clock.t.Add(50 * time.Millisecond)
	if _, ok := fs.Due(); ok {
		t.Fatal("fired before the interval elapsed")
	}
	clock.t = clock.t.Add(60 * time.Millisecond)
	tok, ok := fs.Due()
	if !ok || tok != 7 {
		t.Fatalf("Due = (%d,%v), expected (7,true)", tok, ok)
	}

	// A long stall yields one tick per frame, not a burst.
	clock.t = clock.t.Add(time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if _, ok := fs.Due(); ok {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("fired %d times after a stall, expected 2", fired)
	}

	fs.Stop()
	clock.t = clock.t.Add(time.Second)
	if _, ok := fs.Due(); ok || fs.Active() {
		t.Fatal("stopped timer fired")
	}
}

func TestFixedStepShortIntervalCapsAtFrameRate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep()
	fs.now = clock.now
	fs.Start(10*time.Millisecond, 1)

	fired := 0
	for i := 0; i < 10; i++ {
		clock.t = clock.t.Add(16 * time.Millisecond)
		if _, ok := fs.Due(); ok {
			fired++
		}
	}
	if fired != 10 {
		t.Fatalf("fired %d times over 10 frames, expected one per frame", fired)
	}
}

func TestFixedStepRestartReplacesToken(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep()
	fs.now = clock.now
	fs.Start(10*time.Millisecond, 1)
	clock.t = clock.t.Add(8 * time.Millisecond)
	fs.Start(20*time.Millisecond, 2)
	clock.t = clock.t.Add(12 * time.Millisecond)
	if _, ok := fs.Due(); ok {
		t.Fatal("restart must discard time accumulated by the old run")
	}
	clock.t = clock.t.Add(8 * time.Millisecond)
	if tok, ok := fs.Due(); !ok || tok != 2 {
		t.Fatalf("Due = (%d,%v), expected (2,true)", tok, ok)
	}
}
