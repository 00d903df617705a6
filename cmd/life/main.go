//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	out := io.Discard
	if cfg.Verbose {
		out = os.Stderr
	}
	game := app.New(cfg, log.New(out, "life: ", log.LstdFlags))

	ebiten.SetWindowTitle("mad-life - Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
