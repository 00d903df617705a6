package life

import "strconv"

// Config holds parameters for a Life run.
type Config struct {
	Rows          int
	Cols          int
	HistoryWindow int
	Seed          int64
	Density       float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rows: 32, Cols: 48, HistoryWindow: DefaultHistoryWindow, Seed: 42, Density: 0.25}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["window"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.HistoryWindow = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
