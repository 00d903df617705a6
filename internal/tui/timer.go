package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{ token uint64 }

// Timer implements core.Timer with one-shot tea.Tick commands. Start only
// records the run; the command is collected with Cmd after the controller
// call returns, and each accepted tick is re-armed with Rearm.
type Timer struct {
	interval time.Duration
	token    uint64
	active   bool
	armed    bool
}

// Start replaces the live run.
func (t *Timer) Start(interval time.Duration, token uint64) {
	t.interval = interval
	t.token = token
	t.active = true
	t.armed = true
}

// Stop cancels the live run. A tick already in flight still arrives but
// carries a token the controller rejects.
func (t *Timer) Stop() {
	t.active = false
	t.armed = false
}

// Active reports whether a run is live.
func (t *Timer) Active() bool { return t.active }

// Cmd returns the first tick of a run started since the last call.
func (t *Timer) Cmd() tea.Cmd {
	if !t.armed {
		return nil
	}
	t.armed = false
	return t.next()
}

// Rearm schedules the tick following the one for token, if that run is
// still live.
func (t *Timer) Rearm(token uint64) tea.Cmd {
	if !t.active || t.armed || token != t.token {
		return nil
	}
	return t.next()
}

func (t *Timer) next() tea.Cmd {
	token := t.token
	return tea.Tick(t.interval, func(time.Time) tea.Msg { return tickMsg{token: token} })
}
