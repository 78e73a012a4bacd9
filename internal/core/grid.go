package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions below 1
// are raised to 1.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Row returns row y as a subslice of the backing buffer.
func (g *ByteGrid) Row(y int) []uint8 { return g.data[y*g.W : (y+1)*g.W] }

// PushRow shifts every row up by one, dropping the top row, and copies row
// into the bottom row. Extra values are ignored; a short row leaves the tail
// of the bottom row at 0.
func (g *ByteGrid) PushRow(row []uint8) {
	copy(g.data, g.data[g.W:])
	bottom := g.Row(g.H - 1)
	n := copy(bottom, row)
	clear(bottom[n:])
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
