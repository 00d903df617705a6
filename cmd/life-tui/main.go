package main

import (
	"flag"
	"io"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/playback"
	"mad-life/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write playback logs to this file")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "life")
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	model := tui.New(playback.Options{
		Life:   cfg.Life(0, 0),
		Speed:  cfg.Speed,
		Logger: logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
