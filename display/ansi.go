package display

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/terminal"
)

// ANSI presents frames through the raw ANSI terminal driver
type ANSI struct {
	term   terminal.Terminal
	pacer  *Pacer
	cells  []terminal.Cell
	width  int
	height int

	done      chan struct{}
	quit      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewANSI initializes term and starts watching it for stop keys
func NewANSI(term terminal.Terminal, interval time.Duration) (*ANSI, error) {
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	w, h := ClampSize(term.Size())
	a := &ANSI{
		term:   term,
		pacer:  NewPacer(interval),
		width:  w,
		height: h,
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}

	a.wg.Add(1)
	go a.watch()
	return a, nil
}

// watch closes done on the first stop key
func (a *ANSI) watch() {
	defer a.wg.Done()
	events := a.term.Events()
	for {
		select {
		case <-a.quit:
			return
		case ev := <-events:
			switch {
			case isStopKey(ev):
				a.stop()
				return
			case ev.Type == terminal.EventError:
				log.Printf("input: %v", ev.Err)
				return
			case ev.Type == terminal.EventClosed:
				return
			}
		}
	}
}

func (a *ANSI) stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

// Size returns the frame dimensions fixed at startup
func (a *ANSI) Size() (int, int) {
	return a.width, a.height
}

// Present writes the frame in full
func (a *ANSI) Present(fb *render.FrameBuffer, redraw render.Redraw) error {
	a.cells = fb.ToTerminal(a.cells)
	return a.term.Flush(a.cells, fb.Width, fb.Height, redraw == render.FullClear)
}

// Pace waits for the next frame tick
func (a *ANSI) Pace(ctx context.Context) error {
	return a.pacer.Pace(ctx)
}

// Done is closed when a stop key is pressed
func (a *ANSI) Done() <-chan struct{} {
	return a.done
}

// Close restores the terminal
func (a *ANSI) Close() error {
	a.closeOnce.Do(func() {
		close(a.quit)
		a.wg.Wait()
		a.pacer.Stop()
		a.term.Fini()
	})
	return nil
}
