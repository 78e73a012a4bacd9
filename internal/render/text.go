// Package render turns automaton generations into output: one text line per
// generation, or RGBA pixels for the viewer.
package render

import (
	"bufio"
	"fmt"
	"io"
)

// Glyphs holds the output characters for dead (0) and alive (1) cells.
type Glyphs [2]byte

// DefaultGlyphs renders 0 as a space and 1 as '*'.
var DefaultGlyphs = Glyphs{' ', '*'}

// ParseGlyphs builds Glyphs from two single-byte strings.
func ParseGlyphs(dead, alive string) (Glyphs, error) {
	if len(dead) != 1 {
		return Glyphs{}, fmt.Errorf("dead glyph %q must be a single byte", dead)
	}
	if len(alive) != 1 {
		return Glyphs{}, fmt.Errorf("alive glyph %q must be a single byte", alive)
	}
	return Glyphs{dead[0], alive[0]}, nil
}

// Renderer emits one generation.
type Renderer interface {
	Render(cells []uint8) error
}

// Text writes each generation as a line of glyphs terminated by '\n'.
// Output is buffered; call Flush when done.
type Text struct {
	w      *bufio.Writer
	glyphs Glyphs
	line   []byte
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, g Glyphs) *Text {
	return &Text{w: bufio.NewWriter(w), glyphs: g}
}

// Render writes cells as one line.
func (t *Text) Render(cells []uint8) error {
	t.line = AppendLine(t.line[:0], cells, t.glyphs)
	_, err := t.w.Write(t.line)
	return err
}

// Flush writes any buffered output.
func (t *Text) Flush() error { return t.w.Flush() }

// AppendLine appends the glyph line for cells, including the terminator.
func AppendLine(dst []byte, cells []uint8, g Glyphs) []byte {
	for _, c := range cells {
		if c != 0 {
			dst = append(dst, g[1])
		} else {
			dst = append(dst, g[0])
		}
	}
	return append(dst, '\n')
}

// Discard drops every generation. It stands in for the text renderer when
// output is disabled.
type Discard struct{}

// Render does nothing.
func (Discard) Render([]uint8) error { return nil }
