package display

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtorus/march"
	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/terminal"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"usable", 120, 40, 120, 40},
		{"minimum", 20, 10, 20, 10},
		{"narrow", 19, 40, 80, 40},
		{"short", 120, 9, 120, 24},
		{"both", 0, 0, 80, 24},
		{"negative", -5, 30, 80, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ClampSize(tt.w, tt.h)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestPacer(t *testing.T) {
	p := NewPacer(time.Millisecond)
	defer p.Stop()
	require.NoError(t, p.Pace(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewPacer(time.Hour)
	defer slow.Stop()
	assert.ErrorIs(t, slow.Pace(ctx), context.Canceled)

	free := NewPacer(0)
	assert.NoError(t, free.Pace(context.Background()))
	assert.ErrorIs(t, free.Pace(ctx), context.Canceled)
	free.Stop()
}

func TestIsStopKey(t *testing.T) {
	assert.True(t, isStopKey(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}))
	assert.True(t, isStopKey(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}))
	assert.True(t, isStopKey(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}))
	assert.False(t, isStopKey(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x'}))
	assert.False(t, isStopKey(terminal.Event{Type: terminal.EventClosed}))
}

func testFrame() *render.FrameBuffer {
	fb := render.NewFrameBuffer(2, 2)
	fb.Set(0, 0, render.Cell{Glyph: '@', Color: render.RGB{R: 255}, Colored: true, State: march.Hit})
	fb.Set(1, 1, render.Cell{Glyph: '.', State: march.Hit})
	return fb
}

func TestStreamPresent(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, 2, 2, terminal.ColorModeNone, 0)

	w, h := s.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.Nil(t, s.Done())

	require.NoError(t, s.Present(testFrame(), render.InPlace))
	assert.Equal(t, "@ \r\n .\r\n", buf.String())

	buf.Reset()
	c := NewStream(&buf, 100, 30, terminal.ColorModeTrueColor, 0)
	require.NoError(t, c.Present(testFrame(), render.FullClear))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[2J\x1b[H\x1b[38;2;255;0;0m@"), "%q", out)
	assert.Equal(t, 2, strings.Count(out, "\x1b[0m\r\n"))
	assert.NoError(t, c.Close())
}

// fakeTerm records frames and serves scripted events
type fakeTerm struct {
	mu        sync.Mutex
	width     int
	height    int
	initErr   error
	events    chan terminal.Event
	inits     int
	finis     int
	flushes   int
	lastClear bool
	lastCells []terminal.Cell
}

func newFakeTerm(w, h int) *fakeTerm {
	return &fakeTerm{width: w, height: h, events: make(chan terminal.Event, 4)}
}

func (f *fakeTerm) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeTerm) Fini() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finis++
}

func (f *fakeTerm) Size() (int, int) { return f.width, f.height }

func (f *fakeTerm) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }

func (f *fakeTerm) Flush(cells []terminal.Cell, width, height int, clear bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	f.lastClear = clear
	f.lastCells = append(f.lastCells[:0], cells...)
	return nil
}

func (f *fakeTerm) Events() <-chan terminal.Event { return f.events }

func TestANSIPresentAndClose(t *testing.T) {
	ft := newFakeTerm(40, 12)
	a, err := NewANSI(ft, 0)
	require.NoError(t, err)

	w, h := a.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)

	require.NoError(t, a.Present(testFrame(), render.FullClear))
	assert.True(t, ft.lastClear)
	require.Len(t, ft.lastCells, 4)
	assert.Equal(t, '@', ft.lastCells[0].Rune)
	assert.Equal(t, terminal.RGB{R: 255}, ft.lastCells[0].Fg)
	assert.Equal(t, terminal.AttrDefaultFg, ft.lastCells[3].Attrs)

	require.NoError(t, a.Present(testFrame(), render.InPlace))
	assert.False(t, ft.lastClear)
	assert.Equal(t, 2, ft.flushes)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, 1, ft.finis)
}

func TestANSIStopKey(t *testing.T) {
	ft := newFakeTerm(40, 12)
	a, err := NewANSI(ft, 0)
	require.NoError(t, err)
	defer a.Close()

	ft.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'}
	ft.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("stop key not observed")
	}
}

func TestANSIInitError(t *testing.T) {
	ft := newFakeTerm(40, 12)
	ft.initErr = errors.New("stdin is not a terminal")
	_, err := NewANSI(ft, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ft.initErr)
}

func TestTcellPresent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	d, err := NewTcell(screen, 0)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Present(testFrame(), render.FullClear))

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '@', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)

	r, _, style, _ = screen.GetContent(1, 1)
	assert.Equal(t, '.', r)
	assert.Equal(t, tcell.StyleDefault, style)
}

func TestTcellStopKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	d, err := NewTcell(screen, 0)
	require.NoError(t, err)
	defer d.Close()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("stop key not observed")
	}
}
