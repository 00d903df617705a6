//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/playback"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a playback controller to the ebiten.Game interface.
type Game struct {
	ctrl    *playback.Controller
	view    *render.CellView
	clock   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	cellSize int
	// Surface size last applied to the grid, and the one Layout saw most
	// recently. Resizes are applied from Update, never from Layout.
	outW, outH         int
	pendingW, pendingH int
}

// New constructs a Game sized for cfg.Width x cfg.Height pixels.
func New(cfg *Config, logger *log.Logger) *Game {
	size := core.FitGrid(cfg.Width, cfg.Height-ui.BarHeight, cfg.CellSize, cfg.CellSize)
	view := render.NewCellView()
	clock := core.NewFixedStep()
	ctrl := playback.New(playback.Options{
		Life:   cfg.Life(size.Rows, size.Cols),
		Speed:  cfg.Speed,
		Logger: logger,
	}, view, clock)
	return &Game{
		ctrl:     ctrl,
		view:     view,
		clock:    clock,
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(ctrl),
		overlay:  ui.NewOverlay(ctrl.Engine(), cfg.CellSize, ui.BarHeight),
		onColor:  color.RGBA{R: 240, G: 200, B: 90, A: 255},
		offColor: color.RGBA{R: 24, G: 24, B: 30, A: 255},
		cellSize: cfg.CellSize,
		outW:     cfg.Width,
		outH:     cfg.Height,
		pendingW: cfg.Width,
		pendingH: cfg.Height,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.pendingW != g.outW || g.pendingH != g.outH {
		g.outW, g.outH = g.pendingW, g.pendingH
		g.ctrl.Resize(core.FitGrid(g.outW, g.outH-ui.BarHeight, g.cellSize, g.cellSize))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ctrl.SetSpeed(g.ctrl.Speed() - 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ctrl.SetSpeed(g.ctrl.Speed() + 10)
	}

	consumed := g.hud.Update(g.outW)
	g.updatePaint(consumed)
	g.overlay.Update()

	if token, ok := g.clock.Due(); ok {
		g.ctrl.Tick(token)
	}
	return nil
}

func (g *Game) updatePaint(consumed bool) {
	size := g.ctrl.Engine().Size()
	mx, my := ebiten.CursorPosition()
	row, col, inside := ui.CellAt(mx, my, g.cellSize, ui.BarHeight, size)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !consumed && inside {
			g.ctrl.BeginPaint(row, col)
		}
	case g.ctrl.Painting() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if inside {
			g.ctrl.PaintEnter(row, col)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.EndPaint()
	}
}

// Draw renders the control bar and the grid.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 12, A: 255})
	g.painter.Blit(screen, g.view, g.onColor, g.offColor, g.cellSize, ui.BarHeight)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout records the window size and uses it as the logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
