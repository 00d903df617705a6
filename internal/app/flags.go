package app

import (
	"flag"
	"fmt"

	"mad-life/internal/playback"
	"mad-life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Speed    int
	CellSize int
	Width    int
	Height   int
	Window   int
	Seed     int64
	Density  float64
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Speed:    playback.DefaultSpeed,
		CellSize: 20,
		Width:    960,
		Height:   640,
		Window:   life.DefaultHistoryWindow,
		Seed:     42,
		Density:  0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "milliseconds between generations")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.Window, "window", c.Window, "generations kept for oscillation detection")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize action")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the randomize action")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log playback transitions")
}

// Validate rejects values no surface can work with.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.Window < 1 {
		return fmt.Errorf("oscillation window must be at least 1, got %d", c.Window)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0,1], got %g", c.Density)
	}
	return nil
}

// Life returns the engine configuration for a surface of rows x cols cells.
func (c *Config) Life(rows, cols int) life.Config {
	return life.Config{
		Rows:          rows,
		Cols:          cols,
		HistoryWindow: c.Window,
		Seed:          c.Seed,
		Density:       c.Density,
	}
}
