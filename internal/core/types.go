package core

// Size describes the dimensions of a displayed grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer drives: something with a fixed-size cell
// buffer that can be advanced one tick and reset to its initial state.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() []uint8
}
