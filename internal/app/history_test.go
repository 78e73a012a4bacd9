package app

import (
	"slices"
	"strings"
	"testing"

	"lca/internal/automaton"
	"lca/internal/core"
)

var _ core.Sim = (*History)(nil)

func presetA(t *testing.T) *automaton.Automaton {
	t.Helper()
	a := automaton.New(automaton.TypeA, 5)
	if err := a.SetCell(2, 1); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestHistoryFillsThenScrolls(t *testing.T) {
	h := NewHistory(presetA(t), 2, 0)
	want := []uint8{
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}
	if !slices.Equal(h.Cells(), want) {
		t.Fatalf("gen 0 buffer %v", h.Cells())
	}
	h.Step()
	want = []uint8{
		0, 0, 1, 0, 0,
		0, 1, 0, 0, 0,
	}
	if !slices.Equal(h.Cells(), want) {
		t.Fatalf("gen 1 buffer %v", h.Cells())
	}
	h.Step()
	want = []uint8{
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
	}
	if !slices.Equal(h.Cells(), want) {
		t.Fatalf("gen 2 buffer %v", h.Cells())
	}
	if h.Generation() != 2 {
		t.Fatalf("generation %d", h.Generation())
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(presetA(t), 4, 2)
	h.Step()
	h.Step()
	h.Step()
	if h.Generation() != 1 || !h.Done() {
		t.Fatalf("generation %d done %v", h.Generation(), h.Done())
	}
}

func TestHistoryReset(t *testing.T) {
	a := presetA(t)
	h := NewHistory(a, 3, 0)
	first := slices.Clone(h.Cells())
	h.Step()
	h.Step()
	h.Reset()
	if !slices.Equal(h.Cells(), first) {
		t.Fatalf("after reset %v, want %v", h.Cells(), first)
	}
	if got := a.Generation(); !slices.Equal(got, []uint8{0, 0, 1, 0, 0}) {
		t.Fatalf("automaton not restored: %v", got)
	}
}

func TestHistoryStatus(t *testing.T) {
	h := NewHistory(presetA(t), 1, 10)
	status := strings.Join(h.Status(), "\n")
	for _, want := range []string{"01011110 (122)", "Gen       1/10", "pair"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
	if h.Size() != (core.Size{W: 5, H: 1}) {
		t.Fatalf("size %v", h.Size())
	}
}

func TestHistoryEmptyAutomatonHasNoColumns(t *testing.T) {
	h := NewHistory(automaton.New(automaton.TypeA, 0), 3, 0)
	if h.Size() != (core.Size{W: 0, H: 3}) {
		t.Fatalf("size %v", h.Size())
	}
	if len(h.Cells()) != 0 {
		t.Fatalf("cells %v", h.Cells())
	}
	h.Step()
	h.Reset()
	if len(h.Cells()) != 0 {
		t.Fatalf("cells after step/reset %v", h.Cells())
	}
}
