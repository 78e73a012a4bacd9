package app

import (
	"fmt"

	"lca/internal/automaton"
	"lca/internal/core"
)

// History projects an automaton onto a scrolling 2D buffer: generation 0 at
// the top, each new generation appended at the bottom once the window fills.
type History struct {
	auto    *automaton.Automaton
	initial []uint8
	grid    *core.ByteGrid
	width   int
	rows    int
	filled  int
	gen     int
	limit   int
}

// NewHistory wraps a configured automaton. rows is the number of visible
// generations; limit caps the total generations produced (0 for no cap).
func NewHistory(a *automaton.Automaton, rows, limit int) *History {
	if rows <= 0 {
		rows = 1
	}
	h := &History{
		auto:    a,
		initial: a.Generation(),
		grid:    core.NewByteGrid(a.Len(), rows),
		width:   a.Len(),
		rows:    rows,
		limit:   limit,
	}
	h.place()
	return h
}

// Name returns the window title suffix.
func (h *History) Name() string {
	return fmt.Sprintf("type %s, rules %s", h.auto.Type(), h.auto.Rules())
}

// Size returns the buffer dimensions. An empty automaton has width 0.
func (h *History) Size() core.Size { return core.Size{W: h.width, H: h.rows} }

// Cells exposes the history buffer, width*rows values.
func (h *History) Cells() []uint8 { return h.grid.Cells()[:h.width*h.rows] }

// Generation returns the index of the newest generation.
func (h *History) Generation() int { return h.gen }

// Done reports whether the generation cap has been reached.
func (h *History) Done() bool { return h.limit > 0 && h.gen+1 >= h.limit }

// Reset restores the configured initial cells and clears the history.
func (h *History) Reset() {
	h.auto.Resize(len(h.initial))
	for i, c := range h.initial {
		if c != 0 {
			_ = h.auto.SetCell(i, 1)
		}
	}
	h.grid.Clear()
	h.filled = 0
	h.gen = 0
	h.place()
}

// Step evolves one generation and records it. It does nothing once Done.
func (h *History) Step() {
	if h.Done() {
		return
	}
	h.auto.Evolve()
	h.gen++
	h.place()
}

// place writes the current generation below the previous one, scrolling
// when the window is full.
func (h *History) place() {
	cur := h.auto.Generation()
	if h.filled < h.rows {
		copy(h.grid.Row(h.filled), cur)
		h.filled++
		return
	}
	h.grid.PushRow(cur)
}

// Status returns the lines shown in the HUD panel.
func (h *History) Status() []string {
	lines := []string{
		fmt.Sprintf("Type      %s", h.auto.Type()),
		fmt.Sprintf("Rules     %s (%d)", h.auto.Rules(), h.auto.Rules().Number()),
		fmt.Sprintf("Neighbors %s", h.auto.Neighborhood()),
		fmt.Sprintf("Cells     %d", h.auto.Len()),
	}
	if h.limit > 0 {
		lines = append(lines, fmt.Sprintf("Gen       %d/%d", h.gen+1, h.limit))
	} else {
		lines = append(lines, fmt.Sprintf("Gen       %d", h.gen+1))
	}
	return lines
}
