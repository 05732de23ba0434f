// Package display presents rendered frames on a terminal or a plain stream
// and paces the frame loop.
package display

import (
	"context"
	"time"

	"github.com/lixenwraith/termtorus/parameter"
	"github.com/lixenwraith/termtorus/terminal"
)

// ClampSize replaces a dimension below the usable minimum with its fallback
func ClampSize(width, height int) (int, int) {
	if width < parameter.MinWidth {
		width = parameter.FallbackWidth
	}
	if height < parameter.MinHeight {
		height = parameter.FallbackHeight
	}
	return width, height
}

// isStopKey reports whether ev requests the run to end
func isStopKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return true
	case terminal.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}

// Pacer sleeps between frames on a shared ticker
type Pacer struct {
	ticker *time.Ticker
}

// NewPacer creates a pacer, a non-positive interval never waits
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{ticker: time.NewTicker(interval)}
}

// Pace blocks until the next tick or ctx is done
func (p *Pacer) Pace(ctx context.Context) error {
	if p.ticker == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker
func (p *Pacer) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
