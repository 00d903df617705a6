//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// BarHeight is zero in the headless build.
const BarHeight = 0

// NewHUD returns nil in the headless build.
func NewHUD(any) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
