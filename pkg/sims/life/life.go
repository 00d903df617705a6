package life

import (
	"mad-life/internal/core"
	rng "mad-life/pkg/core"
)

// Next computes the following generation of g under Conway's rule with
// toroidal wrapping. g is not modified.
func Next(g *core.Grid) *core.Grid {
	rows, cols := g.Rows, g.Cols
	nxt := core.NewGrid(rows, cols)
	if g.Empty() {
		return nxt
	}
	cur := g.Cells()
	out := nxt.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny := (y + dy + rows) % rows
					nx := (x + dx + cols) % cols
					neighbors += int(cur[ny*cols+nx])
				}
			}
			idx := y*cols + x
			alive := cur[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = 1
			}
		}
	}
	return nxt
}

// Engine holds one run of the simulation: the current generation, the recent
// history used to spot short cycles and the iteration counter.
type Engine struct {
	grid        *core.Grid
	history     *History
	progressing bool
	iterations  int
}

// New returns an Engine with an all-dead grid built from cfg.
func New(cfg Config) *Engine {
	e := &Engine{history: NewHistory(cfg.HistoryWindow)}
	e.Reset(core.Size{Rows: cfg.Rows, Cols: cfg.Cols})
	return e
}

// Reset replaces the grid with a fresh all-dead one and starts a new run.
func (e *Engine) Reset(size core.Size) {
	e.grid = core.NewGrid(size.Rows, size.Cols)
	e.history.Clear()
	e.progressing = true
	e.iterations = 0
}

// Randomize starts a new run on a grid seeded deterministically from seed.
func (e *Engine) Randomize(size core.Size, seed int64, density float64) {
	e.Reset(size)
	rng.NewRNG(seed).FillBinary(e.grid.Cells(), density)
}

// Grid exposes the current generation.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// History exposes the snapshot buffer.
func (e *Engine) History() *History { return e.history }

// Iterations returns the number of generations counted while progressing.
func (e *Engine) Iterations() int { return e.iterations }

// Progressing reports whether the run has not yet settled into a fixed point
// or a cycle short enough for the history window to catch.
func (e *Engine) Progressing() bool { return e.progressing }

// Population counts live cells in the current generation.
func (e *Engine) Population() int { return e.grid.Population() }

// Toggle flips a single cell and returns its new state. Coordinates outside
// the grid are ignored.
func (e *Engine) Toggle(row, col int) bool {
	if !e.grid.Contains(row, col) {
		return false
	}
	alive := !e.grid.Alive(row, col)
	e.grid.Set(row, col, alive)
	return alive
}

// Step advances the simulation by one generation. It returns false without
// doing anything when the grid has no cells.
func (e *Engine) Step() bool {
	if e.grid.Empty() {
		return false
	}
	next := Next(e.grid)
	if next.Equal(e.grid) || e.history.Contains(next) {
		e.progressing = false
	}
	e.grid = next
	if e.progressing {
		e.iterations++
	}
	e.history.Push(next)
	return true
}
