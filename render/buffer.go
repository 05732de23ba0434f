package render

import (
	"github.com/lixenwraith/termtorus/march"
	"github.com/lixenwraith/termtorus/parameter/visual"
	"github.com/lixenwraith/termtorus/terminal"
)

// RGB is an alias to terminal.RGB so frame cells export without conversion
type RGB = terminal.RGB

// Cell is one character cell of a frame
// Colored false means the color is unset and the terminal default foreground applies
type Cell struct {
	Glyph   byte
	Color   RGB
	Colored bool
	State   march.State
}

// emptyCell is the cleared state of every cell
var emptyCell = Cell{Glyph: visual.BackgroundGlyph}

// FrameBuffer is a row-major width x height grid of cells
// Allocated once and cleared in place every frame
type FrameBuffer struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewFrameBuffer creates a cleared buffer, non-positive dimensions give an empty one
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	b := &FrameBuffer{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (b *FrameBuffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	size := width * height
	if cap(b.Cells) < size {
		b.Cells = make([]Cell, size)
	} else {
		b.Cells = b.Cells[:size]
	}
	b.Width = width
	b.Height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.Cells) == 0 {
		return
	}
	b.Cells[0] = emptyCell
	for filled := 1; filled < len(b.Cells); filled *= 2 {
		copy(b.Cells[filled:], b.Cells[:filled])
	}
}

// At returns the cell at (x, y), the empty cell when out of bounds
func (b *FrameBuffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.Cells[y*b.Width+x]
}

// Set writes the cell at (x, y), ignoring out of bounds writes
func (b *FrameBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.Cells[y*b.Width+x] = c
}

// Row returns the cells of row y, nil when out of bounds
func (b *FrameBuffer) Row(y int) []Cell {
	if y < 0 || y >= b.Height {
		return nil
	}
	return b.Cells[y*b.Width : (y+1)*b.Width]
}

// Hits counts cells whose ray hit the torus
func (b *FrameBuffer) Hits() int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].State == march.Hit {
			n++
		}
	}
	return n
}

// ToTerminal writes the frame into dst as terminal cells, growing dst as needed
// Unset colors export with the zero foreground and no attribute
func (b *FrameBuffer) ToTerminal(dst []terminal.Cell) []terminal.Cell {
	if cap(dst) < len(b.Cells) {
		dst = make([]terminal.Cell, len(b.Cells))
	}
	dst = dst[:len(b.Cells)]
	for i, c := range b.Cells {
		attrs := terminal.AttrNone
		if !c.Colored {
			attrs = terminal.AttrDefaultFg
		}
		dst[i] = terminal.Cell{Rune: rune(c.Glyph), Fg: c.Color, Attrs: attrs}
	}
	return dst
}

// inBounds returns true if in frame bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}
