package terminal

import (
	"io"
)

// Stream writes frames to a plain writer without raw mode or screen modes
// Each row ends with a color reset and CRLF
type Stream struct {
	out *outputBuffer
}

// NewStream creates a Stream on w
func NewStream(w io.Writer, colorMode ColorMode) *Stream {
	o := newOutputBuffer(w, colorMode)
	o.lineMode = true
	return &Stream{out: o}
}

// ColorMode returns the output color capability
func (s *Stream) ColorMode() ColorMode {
	return s.out.colorMode
}

// Flush writes a full frame, prefixed by a clear or home sequence when colored
func (s *Stream) Flush(cells []Cell, width, height int, clear bool) error {
	return s.out.frame(cells, width, height, clear)
}
