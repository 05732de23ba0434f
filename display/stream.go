package display

import (
	"context"
	"io"
	"time"

	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/terminal"
)

// Stream presents frames to a plain writer, no raw mode and no stop keys
type Stream struct {
	out    *terminal.Stream
	pacer  *Pacer
	cells  []terminal.Cell
	width  int
	height int
}

// NewStream creates a Stream of the given size on w
func NewStream(w io.Writer, width, height int, colorMode terminal.ColorMode, interval time.Duration) *Stream {
	width, height = ClampSize(width, height)
	return &Stream{
		out:    terminal.NewStream(w, colorMode),
		pacer:  NewPacer(interval),
		width:  width,
		height: height,
	}
}

func (s *Stream) Size() (int, int) {
	return s.width, s.height
}

func (s *Stream) Present(fb *render.FrameBuffer, redraw render.Redraw) error {
	s.cells = fb.ToTerminal(s.cells)
	return s.out.Flush(s.cells, fb.Width, fb.Height, redraw == render.FullClear)
}

func (s *Stream) Pace(ctx context.Context) error {
	return s.pacer.Pace(ctx)
}

// Done returns nil, a stream has no external stop
func (s *Stream) Done() <-chan struct{} {
	return nil
}

func (s *Stream) Close() error {
	s.pacer.Stop()
	return nil
}
