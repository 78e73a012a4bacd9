package ui

import (
	"slices"
	"testing"

	"lca/internal/core"
)

type plainSim struct{}

func (plainSim) Name() string { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (plainSim) Reset() {}
func (plainSim) Step() {}
func (plainSim) Cells() []uint8 { return []uint8{0} }

type reportingSim struct{ plainSim }

func (reportingSim) Status() []string { return []string{"Gen 3"} }

func TestStatusLines(t *testing.T) {
	if got := statusLines(plainSim{}); !slices.Equal(got, []string{"No status available"}) {
		t.Fatalf("plain sim lines %v", got)
	}
	if got := statusLines(reportingSim{}); !slices.Equal(got, []string{"Gen 3"}) {
		t.Fatalf("reporting sim lines %v", got)
	}
}
