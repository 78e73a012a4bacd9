package automaton

import (
	"fmt"
	"strings"
)

// RuleCount is the number of entries in every rule table.
const RuleCount = 8

// RuleTable maps a neighbourhood code (0..7) to the next cell state.
type RuleTable [RuleCount]bool

var (
	// PresetA is loaded when type "A" is selected.
	PresetA = RuleTable{false, true, false, true, true, true, true, false}
	// PresetB is loaded when type "B" is selected.
	PresetB = RuleTable{false, true, true, false, true, false, true, false}
)

// Type enumerates the automaton families.
type Type int

const (
	// TypeUser has no preset; its table starts all-false and is filled in by configuration.
	TypeUser Type = iota
	// TypeA uses PresetA.
	TypeA
	// TypeB uses PresetB.
	TypeB
)

// ParseType maps a type token ("A", "B", "U") to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "A":
		return TypeA, nil
	case "B":
		return TypeB, nil
	case "U":
		return TypeUser, nil
	}
	return TypeUser, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// String returns the token used for the type in configuration input.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeUser:
		return "U"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Preset returns the initial rule table for the type. TypeUser yields an
// all-false table.
func (t Type) Preset() RuleTable {
	switch t {
	case TypeA:
		return PresetA
	case TypeB:
		return PresetB
	}
	return RuleTable{}
}

// ParseRule converts a "0"/"1" token into a rule entry.
func ParseRule(tok string) (bool, error) {
	switch tok {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("rule entry %q is not 0 or 1", tok)
}

// Number reads the table as a Wolfram-style rule number, entry i being bit i.
func (r RuleTable) Number() uint8 {
	var n uint8
	for i, on := range r {
		if on {
			n |= 1 << uint(i)
		}
	}
	return n
}

// String renders the table as eight 0/1 digits in index order, the same
// layout configuration input uses.
func (r RuleTable) String() string {
	var b strings.Builder
	b.Grow(RuleCount)
	for _, on := range r {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
