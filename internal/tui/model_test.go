package tui

import (
	"strings"
	"testing"
	"time"

	"mad-life/internal/playback"
	"mad-life/pkg/sims/life"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	m := New(playback.Options{Life: life.Config{HistoryWindow: 3, Density: 0.3}})
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 13})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeRebuildsGrid(t *testing.T) {
	m := newModel(t)
	size := m.Controller().Engine().Size()
	if size.Rows != 10 || size.Cols != 10 {
		t.Fatalf("grid is %dx%d, expected 10x10", size.Rows, size.Cols)
	}
	if rows, cols := m.view.Size(); rows != 10 || cols != 10 {
		t.Fatalf("view is %dx%d, expected 10x10", rows, cols)
	}

	m.Update(tea.WindowSizeMsg{Width: 2, Height: 2})
	if !m.Controller().Engine().Size().Empty() {
		t.Fatal("a terminal too small for the chrome should give an empty grid")
	}
}

func TestMouseDragPaints(t *testing.T) {
	m := newModel(t)
	m.Update(tea.MouseMsg{X: 4, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 5, Y: 4, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{X: 4, Y: 5, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{X: 4, Y: 5, Type: tea.MouseRelease})
	m.Update(tea.MouseMsg{X: 0, Y: 2, Type: tea.MouseMotion})

	g := m.Controller().Engine().Grid()
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !g.Alive(rc[0], rc[1]) || !m.view.Alive(rc[0], rc[1]) {
			t.Fatalf("cell %v should be painted", rc)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, expected 3", g.Population())
	}
}

func TestPlayTickCycle(t *testing.T) {
	m := newModel(t)
	m.Update(tea.MouseMsg{X: 4, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 4, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{X: 4, Y: 5, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{Type: tea.MouseRelease})

	if _, cmd := m.Update(key(" ")); cmd == nil {
		t.Fatal("play should schedule the first tick")
	}
	c := m.Controller()
	if c.State() != playback.Running || !m.timer.Active() {
		t.Fatal("controller should be running")
	}

	token := c.Token()
	if _, cmd := m.Update(tickMsg{token: token}); cmd == nil {
		t.Fatal("accepted tick should re-arm the timer")
	}
	if c.Iterations() != 1 {
		t.Fatalf("iterations = %d, expected 1", c.Iterations())
	}
	if !strings.Contains(m.View(), "Iterations:") {
		t.Fatal("view should show the counter")
	}

	m.Update(key("+"))
	if c.Speed() != playback.DefaultSpeed+10 {
		t.Fatalf("speed = %d", c.Speed())
	}
	if _, cmd := m.Update(tickMsg{token: token}); cmd != nil || c.Iterations() != 1 {
		t.Fatal("tick from the replaced timer must be dropped")
	}

	m.Update(key("p"))
	if c.State() != playback.Stopped || m.timer.Active() {
		t.Fatal("pause should stop the timer")
	}
	if _, cmd := m.Update(tickMsg{token: c.Token()}); cmd != nil {
		t.Fatal("tick after pause must not re-arm")
	}
}

func TestControlLineButtons(t *testing.T) {
	m := newModel(t)
	m.View()
	m.Update(tea.MouseMsg{X: 1, Y: 1, Type: tea.MouseLeft})
	if m.Controller().State() != playback.Running {
		t.Fatal("clicking the play button should start playback")
	}
	if m.Controller().Engine().Population() != 0 {
		t.Fatal("clicks on the control line must not paint")
	}
	m.View()
	if !strings.Contains(m.View(), "Pause") {
		t.Fatal("button label should switch to Pause")
	}
}

func TestHeldClickFiresButtonOnce(t *testing.T) {
	m := newModel(t)
	m.View()
	m.Update(tea.MouseMsg{X: 1, Y: 1, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 2, Y: 1, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 2, Y: 1, Type: tea.MouseRelease})
	if m.Controller().State() != playback.Running {
		t.Fatalf("state = %v after one held click, expected running", m.Controller().State())
	}
}

func TestPressOnButtonDoesNotPaintGrid(t *testing.T) {
	m := newModel(t)
	m.View()
	m.Update(tea.MouseMsg{X: 1, Y: 1, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 1, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 3, Y: 4, Type: tea.MouseLeft})
	c := m.Controller()
	if c.Painting() || c.Engine().Population() != 0 {
		t.Fatalf("painting=%v pop=%d after dragging off a button", c.Painting(), c.Engine().Population())
	}
	m.Update(tea.MouseMsg{Type: tea.MouseRelease})

	// The next press on the grid starts a fresh gesture.
	m.Update(tea.MouseMsg{X: 1, Y: 3, Type: tea.MouseLeft})
	if !c.Painting() || c.Engine().Population() != 1 {
		t.Fatalf("painting=%v pop=%d after pressing a cell", c.Painting(), c.Engine().Population())
	}
}

func TestHeldLeftDragPaints(t *testing.T) {
	m := newModel(t)
	m.Update(tea.MouseMsg{X: 4, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 5, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 4, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 5, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 5, Type: tea.MouseRelease})

	g := m.Controller().Engine().Grid()
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !g.Alive(rc[0], rc[1]) {
			t.Fatalf("cell %v should be painted", rc)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, expected 3", g.Population())
	}
}

func TestResetAndRandomizeKeys(t *testing.T) {
	m := newModel(t)
	m.Update(key("s"))
	c := m.Controller()
	if c.Engine().Population() == 0 {
		t.Fatal("randomize should seed live cells")
	}
	first := c.Engine().Grid().Clone()
	m.Update(key("s"))
	if c.Engine().Grid().Equal(first) {
		t.Fatal("each randomize should use a new seed")
	}
	m.Update(key("n"))
	if c.Iterations() == 0 && c.Engine().Progressing() {
		t.Fatal("step key should advance the run")
	}
	m.Update(key("r"))
	if c.Engine().Population() != 0 || c.Iterations() != 0 {
		t.Fatal("reset should clear the grid and counter")
	}
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestTimerRearmOnlyLiveRun(t *testing.T) {
	var tm Timer
	if tm.Cmd() != nil || tm.Rearm(0) != nil {
		t.Fatal("idle timer must not schedule")
	}
	tm.Start(50*time.Millisecond, 3)
	if tm.Rearm(3) != nil {
		t.Fatal("first tick comes from Cmd, not Rearm")
	}
	if tm.Cmd() == nil || tm.Cmd() != nil {
		t.Fatal("Cmd should yield exactly one first tick")
	}
	if tm.Rearm(2) != nil || tm.Rearm(3) == nil {
		t.Fatal("only the live token re-arms")
	}
	tm.Stop()
	if tm.Rearm(3) != nil {
		t.Fatal("stopped timer must not re-arm")
	}
}
