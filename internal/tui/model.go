// Package tui is a terminal front end for the playback controller built on
// bubbletea. Each cell is two columns wide.
package tui

import (
	"strconv"
	"strings"

	"mad-life/internal/core"
	"mad-life/internal/playback"
	"mad-life/internal/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth = 2
	// Title and control lines above the grid, help line below it.
	headerLines = 2
	footerLines = 1
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	settledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	aliveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	deadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type action int

const (
	actionPlay action = iota
	actionReset
	actionSpeedDown
	actionSpeedUp
)

// button is a clickable span of the control line.
type button struct {
	x0, x1 int
	act    action
}

// Model is the bubbletea model wrapping a Controller.
type Model struct {
	ctrl  *playback.Controller
	view  *render.CellView
	timer *Timer
	seed  int64

	// pressed is set from the first MouseLeft until MouseRelease; the
	// terminal repeats MouseLeft while the button is held and moved.
	pressed bool

	width, height int
	buttons       []button
}

// New builds a Model; the grid is sized on the first WindowSizeMsg.
func New(opts playback.Options) *Model {
	view := render.NewCellView()
	timer := &Timer{}
	return &Model{
		ctrl:  playback.New(opts, view, timer),
		view:  view,
		timer: timer,
		seed:  opts.Life.Seed,
	}
}

// Controller exposes the wrapped controller.
func (m *Model) Controller() *playback.Controller { return m.ctrl }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ctrl.Resize(gridSize(msg.Width, msg.Height))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctrl.Pause()
			return m, tea.Quit
		case " ", "p":
			m.do(actionPlay)
		case "r":
			m.do(actionReset)
		case "s":
			m.ctrl.Randomize(m.seed)
			m.seed++
		case "n":
			m.ctrl.StepOnce()
		case "-", "_":
			m.do(actionSpeedDown)
		case "+", "=":
			m.do(actionSpeedUp)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		if !m.ctrl.Tick(msg.token) {
			return m, nil
		}
		return m, m.timer.Rearm(msg.token)
	}
	return m, m.timer.Cmd()
}

func (m *Model) do(a action) {
	switch a {
	case actionPlay:
		m.ctrl.TogglePlay()
	case actionReset:
		m.ctrl.Reset()
	case actionSpeedDown:
		m.ctrl.SetSpeed(m.ctrl.Speed() - 10)
	case actionSpeedUp:
		m.ctrl.SetSpeed(m.ctrl.Speed() + 10)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	row, col := msg.Y-headerLines, msg.X/cellWidth
	switch msg.Type {
	case tea.MouseLeft:
		if m.pressed {
			m.ctrl.PaintEnter(row, col)
			return
		}
		m.pressed = true
		if msg.Y == headerLines-1 {
			for _, b := range m.buttons {
				if msg.X >= b.x0 && msg.X < b.x1 {
					m.do(b.act)
					return
				}
			}
			return
		}
		m.ctrl.BeginPaint(row, col)
	case tea.MouseMotion:
		m.ctrl.PaintEnter(row, col)
	case tea.MouseRelease:
		m.pressed = false
		m.ctrl.EndPaint()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Conway's Game of Life"))
	b.WriteByte('\n')
	b.WriteString(m.controlLine())
	b.WriteByte('\n')

	rows, cols := m.view.Size()
	for r := 0; r < rows; r++ {
		writeRow(&b, m.view, r, cols)
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("space play/pause · r reset · s random · n step · -/+ interval · drag to paint · q quit"))
	return b.String()
}

// controlLine renders the control line and records its clickable spans.
func (m *Model) controlLine() string {
	m.buttons = m.buttons[:0]
	var parts []string
	x := 0
	add := func(s string, act action, clickable bool) {
		if len(parts) > 0 {
			parts = append(parts, " ")
			x++
		}
		w := lipgloss.Width(s)
		if clickable {
			m.buttons = append(m.buttons, button{x0: x, x1: x + w, act: act})
		}
		parts = append(parts, s)
		x += w
	}
	add(buttonStyle.Render(m.ctrl.Label()), actionPlay, true)
	add(buttonStyle.Render("Reset"), actionReset, true)
	add(labelStyle.Render("speed"), 0, false)
	add(buttonStyle.Render("-"), actionSpeedDown, true)
	add(valueStyle.Render(strconv.Itoa(m.ctrl.Speed())+"ms"), 0, false)
	add(buttonStyle.Render("+"), actionSpeedUp, true)
	add(labelStyle.Render("Iterations:")+" "+valueStyle.Render(strconv.Itoa(m.ctrl.Iterations())), 0, false)
	if !m.ctrl.Engine().Progressing() {
		add(settledStyle.Render("settled"), 0, false)
	}
	return strings.Join(parts, "")
}

// writeRow renders one grid row, styling runs of equal cells together.
func writeRow(b *strings.Builder, view *render.CellView, row, cols int) {
	start := 0
	for c := 1; c <= cols; c++ {
		if c < cols && view.Alive(row, c) == view.Alive(row, start) {
			continue
		}
		n := c - start
		if view.Alive(row, start) {
			b.WriteString(aliveStyle.Render(strings.Repeat("█", n*cellWidth)))
		} else {
			b.WriteString(deadStyle.Render(strings.Repeat("·", n*cellWidth)))
		}
		start = c
	}
}

func gridSize(width, height int) core.Size {
	return core.FitGrid(width, height-headerLines-footerLines, cellWidth, 1)
}
