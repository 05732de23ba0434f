package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// outputBuffer writes whole frames through one buffered writer
type outputBuffer struct {
	colorMode ColorMode
	writer    *bufio.Writer
	// lineMode ends rows with a color reset and CRLF instead of addressing them
	lineMode bool

	// Style state for coalescing
	lastFg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 131072), // 128KB buffer
		colorMode: colorMode,
	}
}

// writeRaw queues control sequences
func (o *outputBuffer) writeRaw(seqs ...[]byte) {
	for _, s := range seqs {
		o.writer.Write(s)
	}
}

func (o *outputBuffer) flushRaw() error {
	return o.writer.Flush()
}

// frame writes every cell top to bottom, left to right
// Rows are addressed absolutely so the last row never scrolls the screen
// In line mode without color the frame carries no escape sequences at all
func (o *outputBuffer) frame(cells []Cell, width, height int, clear bool) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(cells) < width*height {
		return fmt.Errorf("frame has %d cells, want %d", len(cells), width*height)
	}

	w := o.writer
	colored := o.colorMode != ColorModeNone
	if colored || !o.lineMode {
		if clear {
			w.Write(csiClear)
		} else {
			w.Write(csiHome)
		}
	}
	o.lastValid = false

	for y := 0; y < height; y++ {
		if y > 0 && !o.lineMode {
			writeCursorPos(w, 0, y)
		}
		row := cells[y*width : (y+1)*width]
		for _, c := range row {
			if colored {
				o.writeStyleCoalesced(w, c.Fg, c.Attrs)
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
		}
		if o.lineMode {
			if colored {
				w.Write(csiSGR0)
				o.lastValid = false
			}
			w.Write(crlf)
		}
	}

	if colored && !o.lineMode {
		w.Write(csiSGR0)
	}
	o.lastValid = false

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// writeStyleCoalesced emits a foreground sequence only when the style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg RGB, attr Attr) {
	if o.lastValid && attr == o.lastAttr && (attr&AttrDefaultFg != 0 || fg == o.lastFg) {
		return
	}

	switch {
	case attr&AttrDefaultFg != 0:
		w.Write(csiDefaultFg)
	case o.colorMode == ColorModeTrueColor:
		w.Write(csiFgRGB)
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(fg)))
		w.WriteByte('m')
	}

	o.lastFg = fg
	o.lastAttr = attr
	o.lastValid = true
}
