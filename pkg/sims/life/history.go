package life

import "mad-life/internal/core"

// DefaultHistoryWindow is the number of recent generations compared against
// each new one. Cycles longer than the window are not detected.
const DefaultHistoryWindow = 3

// History is a bounded FIFO of grid snapshots.
type History struct {
	limit int
	snaps []*core.Grid
}

// NewHistory returns an empty History holding at most limit snapshots.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryWindow
	}
	return &History{limit: limit, snaps: make([]*core.Grid, 0, limit)}
}

// Cap returns the maximum number of snapshots kept.
func (h *History) Cap() int { return h.limit }

// Len returns the number of snapshots currently stored.
func (h *History) Len() int { return len(h.snaps) }

// Push stores a copy of g, evicting the oldest snapshot when full.
func (h *History) Push(g *core.Grid) {
	if len(h.snaps) == h.limit {
		copy(h.snaps, h.snaps[1:])
		h.snaps = h.snaps[:len(h.snaps)-1]
	}
	h.snaps = append(h.snaps, g.Clone())
}

// Contains reports whether any stored snapshot equals g.
func (h *History) Contains(g *core.Grid) bool {
	for _, s := range h.snaps {
		if s.Equal(g) {
			return true
		}
	}
	return false
}

// Snapshots returns the stored grids from oldest to newest.
func (h *History) Snapshots() []*core.Grid {
	return append([]*core.Grid(nil), h.snaps...)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	for i := range h.snaps {
		h.snaps[i] = nil
	}
	h.snaps = h.snaps[:0]
}
