package display

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termtorus/render"
)

// Tcell presents frames on a tcell screen
type Tcell struct {
	screen tcell.Screen
	pacer  *Pacer
	width  int
	height int

	done      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
}

// NewTcell initializes screen, a nil screen opens the controlling terminal
func NewTcell(screen tcell.Screen, interval time.Duration) (*Tcell, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	w, h := ClampSize(screen.Size())
	t := &Tcell{
		screen: screen,
		pacer:  NewPacer(interval),
		width:  w,
		height: h,
		done:   make(chan struct{}),
	}

	go t.watch()
	return t, nil
}

// watch polls screen events until Fini, closing done on a stop key
func (t *Tcell) watch() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if ev, ok := ev.(*tcell.EventKey); ok {
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				t.stopOnce.Do(func() { close(t.done) })
			}
		}
	}
}

func (t *Tcell) Size() (int, int) {
	return t.width, t.height
}

// Present copies the frame into the screen and shows it
func (t *Tcell) Present(fb *render.FrameBuffer, redraw render.Redraw) error {
	if redraw == render.FullClear {
		t.screen.Clear()
	}
	for y := 0; y < fb.Height; y++ {
		for x, c := range fb.Row(y) {
			style := tcell.StyleDefault
			if c.Colored {
				style = style.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
			}
			t.screen.SetContent(x, y, rune(c.Glyph), nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *Tcell) Pace(ctx context.Context) error {
	return t.pacer.Pace(ctx)
}

// Done is closed when a stop key is pressed
func (t *Tcell) Done() <-chan struct{} {
	return t.done
}

// Close finalizes the screen
func (t *Tcell) Close() error {
	t.closeOnce.Do(func() {
		t.pacer.Stop()
		t.screen.Fini()
	})
	return nil
}
