// Package driver runs an automaton for a fixed number of generations and
// hands each one to a renderer.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lca/internal/logging"
	"lca/internal/render"
)

// Stepper is what the driver needs from an automaton.
type Stepper interface {
	AppendGeneration(dst []uint8) []uint8
	Evolve()
}

// Run renders generation 0, then evolves and renders until gens generations
// have been emitted. gens below 1 renders nothing. Rendering of a generation
// completes before the next Evolve call.
func Run(s Stepper, gens int, r render.Renderer, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx := context.Background()
	var buf []uint8
	for g := 0; g < gens; g++ {
		if g > 0 {
			s.Evolve()
		}
		buf = s.AppendGeneration(buf[:0])
		if err := r.Render(buf); err != nil {
			return fmt.Errorf("rendering generation %d: %w", g, err)
		}
		log.Log(ctx, logging.LevelTrace, "generation rendered", "gen", g)
	}
	return nil
}
