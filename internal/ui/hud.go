//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is what the control bar drives.
type Controls interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	Parameters() core.ParameterSnapshot
	Label() string
	TogglePlay()
	Reset()
}

// BarHeight is the height of the control bar above the grid, in pixels.
const BarHeight = panelPadding*2 + buttonSize

// HUD renders the control bar: play/pause, reset, speed and the iteration
// counter.
type HUD struct {
	ctrl     Controls
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls  []hudControlState
	playRect  image.Rectangle
	resetRect image.Rectangle
	counterX  int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided controls.
func NewHUD(ctrl Controls) *HUD {
	h := &HUD{ctrl: ctrl}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	controls := ctrl.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, c := range controls {
		h.controls[i] = hudControlState{control: c, value: "--"}
	}
	h.layoutControls()
	return h
}

// Update refreshes the cached snapshot and handles clicks inside the bar. It
// reports whether the pointer press was consumed by the bar.
func (h *HUD) Update(width int) bool {
	if h == nil {
		return false
	}
	h.width = width
	h.snapshot = h.ctrl.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the bar across the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, BarHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawButton(h.playRect, h.ctrl.Label(), true)
	h.drawButton(h.resetRect, "Reset", true)
	h.drawControls()
	h.drawCounter()
	screen.DrawImage(h.panel, nil)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < 0 || my >= BarHeight {
		return false
	}
	switch {
	case pointInRect(mx, my, h.playRect):
		h.ctrl.TogglePlay()
	case pointInRect(mx, my, h.resetRect):
		h.ctrl.Reset()
	default:
		for i := range h.controls {
			state := &h.controls[i]
			if !state.hasValue {
				continue
			}
			if pointInRect(mx, my, state.minusRect) {
				h.applyAdjustment(state, -1)
				break
			}
			if pointInRect(mx, my, state.plusRect) {
				h.applyAdjustment(state, 1)
				break
			}
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if state == nil || direction == 0 {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if target == state.intValue {
		return
	}
	if h.ctrl.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	return state.control.Clamp(target) != state.intValue
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := panelPadding + labelBaseline
		text.Draw(h.panel, state.control.Label, face, state.labelX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawCounter() {
	face := basicfont.Face7x13
	label := "Iterations: --"
	if p, ok := h.snapshot.Lookup("iterations"); ok {
		label = "Iterations: " + p.Value
	}
	text.Draw(h.panel, label, face, h.counterX, panelPadding+labelBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutControls places, left to right: play, reset, each adjustable control
// as "label value [-][+]", then the counter.
func (h *HUD) layoutControls() {
	x := panelPadding
	y := panelPadding
	h.playRect = image.Rect(x, y, x+wideButton, y+buttonSize)
	x += wideButton + buttonGap
	h.resetRect = image.Rect(x, y, x+wideButton, y+buttonSize)
	x += wideButton + sectionGap
	for i := range h.controls {
		state := &h.controls[i]
		state.labelX = x
		x += len(state.control.Label)*glyphWidth + buttonGap + valueWidth + buttonGap
		state.minusRect = image.Rect(x, y, x+buttonSize, y+buttonSize)
		x += buttonSize + buttonGap
		state.plusRect = image.Rect(x, y, x+buttonSize, y+buttonSize)
		x += buttonSize + sectionGap
	}
	h.counterX = x
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	labelX    int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding  = 8
	buttonSize    = 24
	wideButton    = 64
	buttonGap     = 6
	sectionGap    = 18
	labelBaseline = 17
	glyphWidth    = 7
	valueWidth    = 4 * glyphWidth
)
