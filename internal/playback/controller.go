// Package playback owns a Life engine together with its view and tick source
// and turns user input into engine mutations.
package playback

import (
	"log"
	"strconv"
	"time"

	"mad-life/internal/core"
	"mad-life/pkg/sims/life"
)

// State is the playback state of a Controller.
type State int

const (
	Stopped State = iota
	Running
)

// String returns "running" or "stopped".
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Speed bounds, in milliseconds between ticks.
const (
	MinSpeed     = 10
	MaxSpeed     = 2000
	DefaultSpeed = 100
	speedStep    = 10
)

// Options configure a Controller.
type Options struct {
	Life  life.Config
	Speed int
	// Logger receives one line per state transition when set.
	Logger *log.Logger
}

// Controller is the play/pause/reset state machine sitting between input,
// the engine, the renderer and the timer. It is not safe for concurrent use;
// every call is expected to come from the host's event loop.
type Controller struct {
	engine   *life.Engine
	view     core.Renderer
	timer    core.Timer
	logger   *log.Logger
	cfg      life.Config
	state    State
	speed    int
	token    uint64
	painting bool
	lastRow  int
	lastCol  int
}

// New builds a stopped Controller, creates the initial grid and renders it.
func New(opts Options, view core.Renderer, timer core.Timer) *Controller {
	c := &Controller{
		engine: life.New(opts.Life),
		view:   view,
		timer:  timer,
		logger: opts.Logger,
		cfg:    opts.Life,
		speed:  clampSpeed(opts.Speed),
	}
	if opts.Speed == 0 {
		c.speed = DefaultSpeed
	}
	c.rebuild()
	return c
}

// Engine exposes the simulation engine.
func (c *Controller) Engine() *life.Engine { return c.engine }

// State returns the playback state.
func (c *Controller) State() State { return c.state }

// Running reports whether the timer is live.
func (c *Controller) Running() bool { return c.state == Running }

// Speed returns the tick interval in milliseconds.
func (c *Controller) Speed() int { return c.speed }

// Iterations returns the displayed iteration count.
func (c *Controller) Iterations() int { return c.engine.Iterations() }

// Token identifies the live timer run; zero before the first Play.
func (c *Controller) Token() uint64 { return c.token }

// Label is the text for the play/pause control.
func (c *Controller) Label() string {
	if c.state == Running {
		return "Pause"
	}
	return "Play"
}

// Play starts the timer. It is a no-op while running.
func (c *Controller) Play() {
	if c.state == Running {
		return
	}
	c.state = Running
	c.startTimer()
	c.logf("play: every %dms", c.speed)
}

// Pause stops the timer before returning. It is a no-op while stopped.
func (c *Controller) Pause() {
	if c.state == Stopped {
		return
	}
	c.timer.Stop()
	c.state = Stopped
	c.logf("pause at iteration %d", c.engine.Iterations())
}

// TogglePlay flips between Play and Pause.
func (c *Controller) TogglePlay() {
	if c.state == Running {
		c.Pause()
		return
	}
	c.Play()
}

// SetSpeed changes the tick interval. While running the live timer is
// replaced by a new one.
func (c *Controller) SetSpeed(ms int) {
	ms = clampSpeed(ms)
	if ms == c.speed {
		return
	}
	c.speed = ms
	if c.state == Running {
		c.timer.Stop()
		c.startTimer()
	}
	c.logf("speed: %dms", ms)
}

// Reset stops playback and starts over on a fresh all-dead grid.
func (c *Controller) Reset() {
	c.Pause()
	c.painting = false
	c.engine.Reset(c.engine.Size())
	c.rebuild()
	c.logf("reset %dx%d", c.engine.Size().Rows, c.engine.Size().Cols)
}

// Randomize stops playback and starts over on a seeded random grid.
func (c *Controller) Randomize(seed int64) {
	c.Pause()
	c.painting = false
	c.engine.Randomize(c.engine.Size(), seed, c.cfg.Density)
	c.rebuild()
	c.logf("randomize seed=%d", seed)
}

// Resize discards the current pattern and re-creates grid and view at the
// new size. A running simulation keeps running on a fresh timer.
func (c *Controller) Resize(size core.Size) {
	wasRunning := c.state == Running
	if wasRunning {
		c.timer.Stop()
	}
	c.painting = false
	c.engine.Reset(size)
	c.rebuild()
	if wasRunning {
		c.startTimer()
	}
	c.logf("resize %dx%d", size.Rows, size.Cols)
}

// Tick runs one generation for the timer run identified by token. Ticks from
// a cancelled run, or arriving while stopped, are dropped and reported false.
func (c *Controller) Tick(token uint64) bool {
	if c.state != Running || token != c.token {
		return false
	}
	return c.advance()
}

// StepOnce runs a single generation while stopped.
func (c *Controller) StepOnce() bool {
	if c.state == Running {
		return false
	}
	return c.advance()
}

// BeginPaint starts a paint gesture and toggles the cell under the pointer.
func (c *Controller) BeginPaint(row, col int) {
	if !c.engine.Grid().Contains(row, col) {
		return
	}
	c.painting = true
	c.paint(row, col)
}

// PaintEnter toggles the cell the pointer entered during a gesture.
func (c *Controller) PaintEnter(row, col int) {
	if !c.painting || (row == c.lastRow && col == c.lastCol) {
		return
	}
	if !c.engine.Grid().Contains(row, col) {
		return
	}
	c.paint(row, col)
}

// EndPaint finishes the current gesture.
func (c *Controller) EndPaint() { c.painting = false }

// Painting reports whether a paint gesture is active.
func (c *Controller) Painting() bool { return c.painting }

// Parameters reports the values shown on the control bar.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "speed", Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(c.speed)},
		{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Value: strconv.Itoa(c.engine.Iterations())},
		{Key: "progressing", Label: "Progressing", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.engine.Progressing())},
	}}
}

// ParameterControls lists the adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "speed",
		Label:  "Speed (ms)",
		Type:   core.ParamTypeInt,
		Step:   speedStep,
		Min:    MinSpeed,
		Max:    MaxSpeed,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies a control bar adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		c.SetSpeed(value)
		return true
	}
	return false
}

func (c *Controller) startTimer() {
	c.token++
	c.timer.Start(time.Duration(c.speed)*time.Millisecond, c.token)
}

func (c *Controller) advance() bool {
	prev := c.engine.Grid()
	wasProgressing := c.engine.Progressing()
	if !c.engine.Step() {
		return false
	}
	next := c.engine.Grid()
	before, after := prev.Cells(), next.Cells()
	cols := next.Cols
	for i, v := range after {
		if before[i] != v {
			c.view.RenderCell(i/cols, i%cols, v == 1)
		}
	}
	if wasProgressing && !c.engine.Progressing() {
		c.logf("settled after %d iterations", c.engine.Iterations())
	}
	return true
}

func (c *Controller) paint(row, col int) {
	alive := c.engine.Toggle(row, col)
	c.lastRow, c.lastCol = row, col
	c.view.RenderCell(row, col, alive)
}

func (c *Controller) rebuild() {
	g := c.engine.Grid()
	c.view.RebuildGrid(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for col := 0; col < g.Cols; col++ {
			c.view.RenderCell(r, col, g.Alive(r, col))
		}
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func clampSpeed(ms int) int {
	if ms < MinSpeed {
		return MinSpeed
	}
	if ms > MaxSpeed {
		return MaxSpeed
	}
	return ms
}
