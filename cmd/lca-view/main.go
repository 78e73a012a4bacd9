//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"lca/internal/app"
	"lca/internal/config"
	"lca/internal/logging"
	"lca/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s, err := loadSettings(cfg.Settings)
	if err != nil {
		log.Fatalf("Invalid argument: %v", err)
	}
	logger := logging.NewLogger(s.Logging.Level, os.Stderr)

	in, err := openInput(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}
	hood, _ := s.Neighborhood()
	setup, err := config.Decode(in, config.WithNeighborhood(hood), config.WithMaxCells(s.Limits.MaxCells))
	in.Close()
	if err != nil {
		log.Fatalf("Invalid argument: %v", err)
	}

	sim := app.NewHistory(setup.Automaton, cfg.Rows, setup.Generations)
	logger.Debug("starting viewer", "cells", setup.Automaton.Len(), "generations", setup.Generations, "rows", cfg.Rows)

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("lca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadSettings(path string) (*settings.Settings, error) {
	var (
		s   *settings.Settings
		err error
	)
	if path != "" {
		s, err = settings.LoadFromFile(path)
	} else {
		s, err = settings.Load()
	}
	if err != nil {
		return nil, err
	}
	return s, s.Validate()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
