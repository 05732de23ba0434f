package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Attr represents cell attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrDefaultFg Attr = 1 << 0 // Fg ignored, terminal default foreground
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions, zero when unknown
	Size() (width, height int)

	// ColorMode returns the color capability used for output
	ColorMode() ColorMode

	// Flush writes a full frame, clearing the screen first when clear is set
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int, clear bool) error

	// Events returns the input event channel
	Events() <-chan Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	output  *outputBuffer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout with the given color mode
func New(colorMode ColorMode) Terminal {
	return newTerminal(newBackend(), colorMode)
}

func newTerminal(b Backend, colorMode ColorMode) *termImpl {
	return &termImpl{
		backend: b,
		output:  newOutputBuffer(b, colorMode),
		input:   newInputReader(b),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.output.writeRaw(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiClear)
	if err := t.output.flushRaw(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal setup: %w", err)
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	// Auto-wrap restored after leaving alt screen so the main buffer wraps
	t.output.writeRaw(csiSGR0, csiCursorShow, csiAltScreenExit, csiAutoWrapOn)
	t.output.flushRaw()

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the output color capability
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes a frame to the terminal
func (t *termImpl) Flush(cells []Cell, width, height int, clear bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	return t.output.frame(cells, width, height, clear)
}

// Events returns the input event channel
func (t *termImpl) Events() <-chan Event {
	return t.input.events()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
