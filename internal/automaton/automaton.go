// Package automaton implements a finite one-dimensional binary cellular
// automaton with an 8-entry rule table.
//
// Cells outside the row read as 0; the row never wraps. The zero value is an
// empty automaton of type U with an all-false rule table.
package automaton

import (
	"errors"
	"fmt"

	"lca/internal/render"
)

var (
	// ErrInvalidType is returned for a type token other than "A", "B" or "U".
	ErrInvalidType = errors.New("invalid automaton type")
	// ErrIndexOutOfRange is returned when a cell or rule index is outside the table.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Neighborhood selects how the rule table index is built for a cell.
type Neighborhood int

const (
	// Pair indexes the table with (cell<<1)|right.
	Pair Neighborhood = iota
	// Triple indexes the table with (left<<2)|(cell<<1)|right.
	Triple
)

// ParseNeighborhood maps "pair" or "triple" to a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch s {
	case "pair", "":
		return Pair, nil
	case "triple":
		return Triple, nil
	}
	return Pair, fmt.Errorf("unknown neighborhood %q (valid: pair, triple)", s)
}

func (n Neighborhood) String() string {
	if n == Triple {
		return "triple"
	}
	return "pair"
}

// Automaton owns a rule table and a row of cells holding 0 or 1.
type Automaton struct {
	typ   Type
	rules RuleTable
	hood  Neighborhood
	cells []uint8
	prev  []uint8
}

// New creates an automaton of the given type with n cleared cells.
func New(t Type, n int) *Automaton {
	a := &Automaton{}
	a.SetType(t)
	a.Resize(n)
	return a
}

// Type returns the currently selected type.
func (a *Automaton) Type() Type { return a.typ }

// SelectType parses name and switches to that type, reloading the rule table.
// An unknown name leaves the automaton untouched.
func (a *Automaton) SelectType(name string) error {
	t, err := ParseType(name)
	if err != nil {
		return err
	}
	a.SetType(t)
	return nil
}

// SetType switches type and reloads the rule table from the type's preset.
func (a *Automaton) SetType(t Type) {
	a.typ = t
	a.rules = t.Preset()
}

// Rules returns a copy of the rule table.
func (a *Automaton) Rules() RuleTable { return a.rules }

// SetRules replaces the whole rule table.
func (a *Automaton) SetRules(r RuleTable) { a.rules = r }

// SetRule assigns a single rule table entry.
func (a *Automaton) SetRule(idx int, v bool) error {
	if idx < 0 || idx >= RuleCount {
		return fmt.Errorf("rule %d of %d: %w", idx, RuleCount, ErrIndexOutOfRange)
	}
	a.rules[idx] = v
	return nil
}

// Neighborhood returns the neighbourhood used by Evolve.
func (a *Automaton) Neighborhood() Neighborhood { return a.hood }

// SetNeighborhood changes the neighbourhood used by Evolve.
func (a *Automaton) SetNeighborhood(n Neighborhood) { a.hood = n }

// Resize sets the row to n cells, all 0. Previous content is always
// discarded. Negative sizes are treated as 0.
func (a *Automaton) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if cap(a.cells) >= n {
		a.cells = a.cells[:n]
		clear(a.cells)
	} else {
		a.cells = make([]uint8, n)
	}
	a.prev = nil
}

// Len returns the number of cells.
func (a *Automaton) Len() int { return len(a.cells) }

// Cell returns the value at the 0-based index.
func (a *Automaton) Cell(idx int) (uint8, error) {
	if err := a.checkIndex(idx); err != nil {
		return 0, err
	}
	return a.cells[idx], nil
}

// SetCell stores v at the 0-based index. Any non-zero v is stored as 1.
func (a *Automaton) SetCell(idx int, v uint8) error {
	if err := a.checkIndex(idx); err != nil {
		return err
	}
	if v != 0 {
		v = 1
	}
	a.cells[idx] = v
	return nil
}

func (a *Automaton) checkIndex(idx int) error {
	if idx < 0 || idx >= len(a.cells) {
		return fmt.Errorf("cell %d of %d: %w", idx, len(a.cells), ErrIndexOutOfRange)
	}
	return nil
}

// Generation returns a copy of the current cells.
func (a *Automaton) Generation() []uint8 {
	return a.AppendGeneration(nil)
}

// AppendGeneration appends the current cells to dst.
func (a *Automaton) AppendGeneration(dst []uint8) []uint8 {
	return append(dst, a.cells...)
}

// Evolve advances the row by one generation in place. Every new value is
// computed from the previous generation; the cell past the right end reads as
// 0. Evolve on an empty row does nothing.
func (a *Automaton) Evolve() {
	if len(a.cells) == 0 {
		return
	}
	if a.hood == Triple {
		a.evolveTriple()
		return
	}
	a.evolvePair()
}

// evolvePair sweeps left to right. A cell's new value depends only on itself
// and its right neighbour, which has not been overwritten yet, so no
// snapshot is needed.
func (a *Automaton) evolvePair() {
	last := len(a.cells) - 1
	for i := 0; i < last; i++ {
		v := a.cells[i]<<1 | a.cells[i+1]
		a.cells[i] = bit(a.rules[v])
	}
	a.cells[last] = bit(a.rules[a.cells[last]<<1])
}

// evolveTriple reads the left neighbour too, so it works from a copy of the
// previous generation.
func (a *Automaton) evolveTriple() {
	n := len(a.cells)
	if cap(a.prev) < n {
		a.prev = make([]uint8, n)
	}
	prev := a.prev[:n]
	copy(prev, a.cells)
	for i := 0; i < n; i++ {
		var left, right uint8
		if i > 0 {
			left = prev[i-1]
		}
		if i+1 < n {
			right = prev[i+1]
		}
		v := left<<2 | prev[i]<<1 | right
		a.cells[i] = bit(a.rules[v])
	}
}

func bit(on bool) uint8 {
	if on {
		return 1
	}
	return 0
}

// String renders the row with render.DefaultGlyphs, without a line
// terminator.
func (a *Automaton) String() string {
	line := render.AppendLine(make([]byte, 0, len(a.cells)+1), a.cells, render.DefaultGlyphs)
	return string(line[:len(line)-1])
}
