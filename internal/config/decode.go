// Package config decodes the whitespace-separated token stream that sets up
// an automaton run:
//
//	TYPE CELL_COUNT GEN_COUNT init_start INDEX... init_end [RULE x8]
//
// RULE tokens are only read for type U.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"lca/internal/automaton"
)

const (
	markerInitStart = "init_start"
	markerInitEnd   = "init_end"
)

// MaxCells is the largest accepted CELL_COUNT. Larger rows cannot be
// allocated on typical hosts, so they are rejected as malformed input.
const MaxCells = 1 << 28

var (
	// ErrParse reports a missing, malformed or unexpected token.
	ErrParse = errors.New("parse error")
	// ErrInvalidGenerationCount reports a generation count below 1.
	ErrInvalidGenerationCount = errors.New("invalid number of generations")
	// ErrNoActiveCells reports that no in-range index was listed in the init section.
	ErrNoActiveCells = errors.New("no cells occupied")
)

// Setup is a fully configured run: the automaton and how many generations
// to render.
type Setup struct {
	Automaton   *automaton.Automaton
	Generations int

	// Active counts the accepted init indices, repeats included.
	Active int

	// Dropped counts init indices that were outside 1..cell count.
	Dropped int
}

type options struct {
	hood     automaton.Neighborhood
	maxCells int
}

// Option adjusts decoding.
type Option func(*options)

// WithNeighborhood selects the neighbourhood of the decoded automaton.
func WithNeighborhood(n automaton.Neighborhood) Option {
	return func(o *options) { o.hood = n }
}

// WithMaxCells rejects cell counts above limit with ErrParse. Zero, or a
// limit above MaxCells, means MaxCells.
func WithMaxCells(limit int) Option {
	return func(o *options) { o.maxCells = limit }
}

// Decoder reads tokens from an input stream.
type Decoder struct {
	sc  *bufio.Scanner
	pos int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Decoder{sc: sc}
}

// Decode is a convenience wrapper around NewDecoder(r).Decode.
func Decode(r io.Reader, opts ...Option) (*Setup, error) {
	return NewDecoder(r).Decode(opts...)
}

// Decode reads one complete configuration. On error no Setup is returned, so
// a partially configured automaton never escapes.
func (d *Decoder) Decode(opts ...Option) (*Setup, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	a := &automaton.Automaton{}
	a.SetNeighborhood(o.hood)

	tok, err := d.next("automaton type")
	if err != nil {
		return nil, err
	}
	if err := a.SelectType(tok); err != nil {
		return nil, err
	}

	cells, err := d.nextUint("cell count")
	if err != nil {
		return nil, err
	}
	limit := o.maxCells
	if limit <= 0 || limit > MaxCells {
		limit = MaxCells
	}
	if cells > limit {
		return nil, d.errorf("cell count %d exceeds limit %d", cells, limit)
	}
	a.Resize(cells)

	gens, err := d.nextUint("generation count")
	if err != nil {
		return nil, err
	}
	if gens < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGenerationCount, gens)
	}

	if err := d.expect(markerInitStart); err != nil {
		return nil, err
	}

	s := &Setup{Automaton: a, Generations: gens}
	if err := d.readInit(s); err != nil {
		return nil, err
	}
	if s.Active == 0 {
		return nil, fmt.Errorf("%w: none of the listed indices is within 1..%d", ErrNoActiveCells, cells)
	}

	if a.Type() == automaton.TypeUser {
		if err := d.readRules(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (d *Decoder) readInit(s *Setup) error {
	n := s.Automaton.Len()
	for {
		tok, err := d.next("cell index or " + markerInitEnd)
		if err != nil {
			return err
		}
		if tok == markerInitEnd {
			return nil
		}
		if !isDigits(tok) {
			return d.errorf("invalid cell %q inside init section", tok)
		}
		idx, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
		if err != nil {
			// Only overflow gets here; such an index is beyond any row.
			s.Dropped++
			continue
		}
		if idx < 1 || idx > uint64(n) {
			s.Dropped++
			continue
		}
		if err := s.Automaton.SetCell(int(idx-1), 1); err != nil {
			return err
		}
		s.Active++
	}
}

func (d *Decoder) readRules(a *automaton.Automaton) error {
	var rules automaton.RuleTable
	for i := range rules {
		tok, err := d.next(fmt.Sprintf("rule %d", i))
		if err != nil {
			return err
		}
		v, err := automaton.ParseRule(tok)
		if err != nil {
			return d.errorf("invalid automaton definition: %v", err)
		}
		rules[i] = v
	}
	a.SetRules(rules)
	return nil
}

// next returns the following token; what names the expected token in errors.
func (d *Decoder) next(what string) (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrParse, what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input, expected %s", ErrParse, what)
	}
	d.pos++
	return d.sc.Text(), nil
}

func (d *Decoder) nextUint(what string) (int, error) {
	tok, err := d.next(what)
	if err != nil {
		return 0, err
	}
	if !isDigits(tok) {
		return 0, d.errorf("%s %q is not a non-negative integer", what, tok)
	}
	v, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
	if err != nil {
		return 0, d.errorf("%s %q is out of range", what, tok)
	}
	return int(v), nil
}

func (d *Decoder) expect(marker string) error {
	tok, err := d.next(marker)
	if err != nil {
		return err
	}
	if tok != marker {
		return d.errorf("expected %s, got %q", marker, tok)
	}
	return nil
}

func (d *Decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: token %d: %s", ErrParse, d.pos, fmt.Sprintf(format, args...))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
