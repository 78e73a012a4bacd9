package automaton

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"lca/internal/render"
)

// reference computes the next generation from a full copy of the previous one.
func reference(rules RuleTable, hood Neighborhood, cur []uint8) []uint8 {
	n := len(cur)
	out := make([]uint8, n)
	for i := range cur {
		var left, right uint8
		if i > 0 {
			left = cur[i-1]
		}
		if i+1 < n {
			right = cur[i+1]
		}
		v := cur[i]<<1 | right
		if hood == Triple {
			v |= left << 2
		}
		if rules[v] {
			out[i] = 1
		}
	}
	return out
}

func seeded(t Type, cells ...uint8) *Automaton {
	a := New(t, len(cells))
	for i, c := range cells {
		if err := a.SetCell(i, c); err != nil {
			panic(err)
		}
	}
	return a
}

func TestZeroValueIsEmptyUserType(t *testing.T) {
	var a Automaton
	if a.Type() != TypeUser {
		t.Fatalf("zero value type = %v, want U", a.Type())
	}
	if a.Rules() != (RuleTable{}) {
		t.Fatalf("zero value rules = %v, want all false", a.Rules())
	}
	if a.Len() != 0 {
		t.Fatalf("zero value len = %d, want 0", a.Len())
	}
	a.Evolve()
	if a.Len() != 0 {
		t.Fatal("Evolve on empty automaton changed its length")
	}
}

func TestEvolveEmptyIsNoop(t *testing.T) {
	for _, typ := range []Type{TypeA, TypeB, TypeUser} {
		a := New(typ, 0)
		a.SetRules(RuleTable{true, true, true, true, true, true, true, true})
		a.Evolve()
		if a.Len() != 0 || a.String() != "" {
			t.Fatalf("type %v: Evolve on empty automaton produced %q", typ, a.String())
		}
	}
}

func TestEvolvePresetAScenario(t *testing.T) {
	a := seeded(TypeA, 0, 0, 1, 0, 0)
	if got := a.String(); got != "  *  " {
		t.Fatalf("generation 0 = %q", got)
	}
	a.Evolve()
	want := []uint8{0, 1, 0, 0, 0}
	if got := a.Generation(); !slices.Equal(got, want) {
		t.Fatalf("generation 1 = %v, want %v", got, want)
	}
}

func TestRightBoundaryReadsZero(t *testing.T) {
	// Only entry 2 (cell=1, right=0) is set, so the last cell survives only
	// when the missing neighbour reads as 0.
	a := seeded(TypeUser, 0, 0, 1)
	a.SetRules(RuleTable{2: true})
	a.Evolve()
	if got, want := a.Generation(), []uint8{0, 0, 1}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// No wraparound: cell 0 is not the right neighbour of the last cell.
	b := seeded(TypeUser, 1, 0, 1)
	b.SetRules(RuleTable{3: true})
	b.Evolve()
	if got, want := b.Generation(), []uint8{0, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEvolveMatchesSnapshot(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, hood := range []Neighborhood{Pair, Triple} {
		for trial := 0; trial < 200; trial++ {
			n := rng.Intn(40)
			a := New(TypeUser, n)
			a.SetNeighborhood(hood)
			var rules RuleTable
			for i := range rules {
				rules[i] = rng.Intn(2) == 1
			}
			a.SetRules(rules)
			for i := 0; i < n; i++ {
				_ = a.SetCell(i, uint8(rng.Intn(2)))
			}
			for gen := 0; gen < 5; gen++ {
				want := reference(rules, hood, a.Generation())
				a.Evolve()
				if got := a.Generation(); !slices.Equal(got, want) {
					t.Fatalf("%v trial %d gen %d: got %v, want %v", hood, trial, gen, got, want)
				}
			}
		}
	}
}

func TestTripleUsesLeftNeighbour(t *testing.T) {
	// Rule 90 style: entry 4 (left only) and entry 1 (right only).
	a := seeded(TypeUser, 0, 0, 1, 0, 0)
	a.SetNeighborhood(Triple)
	a.SetRules(RuleTable{1: true, 4: true})
	a.Evolve()
	if got, want := a.Generation(), []uint8{0, 1, 0, 1, 0}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectType(t *testing.T) {
	a := New(TypeUser, 3)
	if err := a.SelectType("A"); err != nil {
		t.Fatal(err)
	}
	if a.Rules() != PresetA {
		t.Fatalf("rules after A = %v", a.Rules())
	}
	a.SetRules(RuleTable{true})
	if err := a.SelectType("A"); err != nil {
		t.Fatal(err)
	}
	if a.Rules() != PresetA {
		t.Fatalf("reselecting A did not restore preset: %v", a.Rules())
	}
	if err := a.SelectType("B"); err != nil {
		t.Fatal(err)
	}
	if a.Type() != TypeB || a.Rules() != PresetB {
		t.Fatalf("type %v rules %v after B", a.Type(), a.Rules())
	}
	if err := a.SelectType("U"); err != nil {
		t.Fatal(err)
	}
	if a.Type() != TypeUser || a.Rules() != (RuleTable{}) {
		t.Fatalf("type %v rules %v after U", a.Type(), a.Rules())
	}
}

func TestSelectTypeInvalidLeavesState(t *testing.T) {
	a := seeded(TypeB, 1, 0, 1)
	for _, name := range []string{"", "a", "C", "AB", "u", " A"} {
		err := a.SelectType(name)
		if !errors.Is(err, ErrInvalidType) {
			t.Fatalf("SelectType(%q) err = %v, want ErrInvalidType", name, err)
		}
		if a.Type() != TypeB || a.Rules() != PresetB {
			t.Fatalf("SelectType(%q) changed type/rules", name)
		}
		if got := a.Generation(); !slices.Equal(got, []uint8{1, 0, 1}) {
			t.Fatalf("SelectType(%q) changed cells: %v", name, got)
		}
	}
}

func TestResizeClears(t *testing.T) {
	a := seeded(TypeA, 1, 1, 1, 1)
	a.Resize(2)
	if got := a.Generation(); !slices.Equal(got, []uint8{0, 0}) {
		t.Fatalf("after shrink: %v", got)
	}
	_ = a.SetCell(1, 1)
	a.Resize(6)
	if got := a.Generation(); !slices.Equal(got, make([]uint8, 6)) {
		t.Fatalf("after grow: %v", got)
	}
	a.Resize(0)
	if a.Len() != 0 {
		t.Fatalf("len = %d after Resize(0)", a.Len())
	}
	a.Resize(-3)
	if a.Len() != 0 {
		t.Fatalf("len = %d after Resize(-3)", a.Len())
	}
}

func TestCellAccessOutOfRange(t *testing.T) {
	a := New(TypeA, 3)
	for _, idx := range []int{-1, 3, 100} {
		if _, err := a.Cell(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Cell(%d) err = %v", idx, err)
		}
		if err := a.SetCell(idx, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SetCell(%d) err = %v", idx, err)
		}
	}
	if err := a.SetCell(2, 7); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Cell(2); v != 1 {
		t.Fatalf("SetCell stored %d, want 1", v)
	}
	if err := a.SetRule(8, true); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("SetRule(8) err = %v", err)
	}
}

func TestGenerationIsCopy(t *testing.T) {
	a := seeded(TypeA, 1, 0)
	g := a.Generation()
	g[0] = 0
	if v, _ := a.Cell(0); v != 1 {
		t.Fatal("Generation aliases the cell storage")
	}
}

func TestAllZeroUserRulesCollapse(t *testing.T) {
	a := seeded(TypeUser, 1, 1, 0, 1)
	a.Evolve()
	if got := a.Generation(); !slices.Equal(got, make([]uint8, 4)) {
		t.Fatalf("got %v, want all zero", got)
	}
}

func TestStringMatchesRenderedLine(t *testing.T) {
	a := seeded(TypeB, 1, 0, 0, 1, 1)
	line := string(render.AppendLine(nil, a.Generation(), render.DefaultGlyphs))
	if got := a.String() + "\n"; got != line {
		t.Fatalf("String %q, rendered line %q", got, line)
	}
	if got := a.String(); got != "*  **" {
		t.Fatalf("String = %q", got)
	}
}
