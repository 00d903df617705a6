package main

import (
	"flag"
	"fmt"
	"log"

	"mad-life/internal/core"
	"mad-life/pkg/sims/life"
)

func main() {
	rows := flag.Int("rows", 32, "grid rows")
	cols := flag.Int("cols", 48, "grid columns")
	seed := flag.Int64("seed", 42, "seed for the initial pattern")
	density := flag.Float64("density", 0.25, "live cell probability")
	window := flag.Int("window", life.DefaultHistoryWindow, "generations kept for oscillation detection")
	maxSteps := flag.Int("max", 10000, "give up after this many generations")
	flag.Parse()

	if *rows < 0 || *cols < 0 || *maxSteps < 0 {
		log.Fatalf("rows, cols and max must not be negative")
	}

	e := life.New(life.Config{Rows: *rows, Cols: *cols, HistoryWindow: *window})
	e.Randomize(core.Size{Rows: *rows, Cols: *cols}, *seed, *density)
	start := e.Population()

	steps := 0
	for steps < *maxSteps && e.Progressing() {
		if !e.Step() {
			break
		}
		steps++
	}

	status := "settled"
	if e.Progressing() {
		status = "still progressing"
	}
	fmt.Printf("%dx%d seed=%d: %s after %d iterations (%d generations stepped), population %d -> %d\n",
		*rows, *cols, *seed, status, e.Iterations(), steps, start, e.Population())
}
