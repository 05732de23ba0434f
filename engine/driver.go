// Package engine runs the frame loop that spins the torus and hands frames
// to a display.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/status"
)

// Display is the output collaborator of the frame loop
type Display interface {
	// Size is queried once at startup, already clamped to the fallback
	Size() (width, height int)
	// Present draws a completed frame row-major, top to bottom, left to right
	Present(fb *render.FrameBuffer, redraw render.Redraw) error
	// Pace is called once per frame and returns ctx.Err() on cancellation
	Pace(ctx context.Context) error
	// Done is closed on an external stop, nil when the display has none
	Done() <-chan struct{}
	// Close restores the output, safe to call more than once
	Close() error
}

// StopReason records why Run returned
type StopReason uint8

const (
	StopFrames StopReason = iota // frame count reached
	StopSignal                   // context cancelled
	StopKey                      // display reported a stop key
	StopError                    // render or present failed
)

func (r StopReason) String() string {
	switch r {
	case StopFrames:
		return "frame count reached"
	case StopSignal:
		return "signal"
	case StopKey:
		return "stop key"
	case StopError:
		return "error"
	}
	return "unknown"
}

// Result summarizes a run
type Result struct {
	Frames  int
	Reason  StopReason
	Elapsed time.Duration
}

// Driver renders Frames frames, zero runs until stopped
type Driver struct {
	Renderer *render.Renderer
	Display  Display

	Frames        int
	AngularStep   float32
	StatsInterval int

	// Status receives per-frame metrics when set
	Status *status.Registry
}

// frameTimeSmoothing weights the newest frame in the published frame time average
const frameTimeSmoothing = 0.1

// metrics caches registry pointers for the frame loop
type metrics struct {
	frames   *atomic.Int64
	hits     *atomic.Int64
	frameMs  *status.AtomicFloat
	renderMs *status.AtomicFloat
	stop     *status.AtomicString
}

func newMetrics(r *status.Registry) *metrics {
	if r == nil {
		return nil
	}
	return &metrics{
		frames:   r.Ints.Get(status.Frames),
		hits:     r.Ints.Get(status.Hits),
		frameMs:  r.Floats.Get(status.FrameTimeMs),
		renderMs: r.Floats.Get(status.RenderMs),
		stop:     r.Strings.Get(status.Stop),
	}
}

// publish records one presented frame
// took spans render and present, rendered covers Render alone
func (m *metrics) publish(frames, hits int, took, rendered time.Duration) {
	if m == nil {
		return
	}
	ms := float64(took) / float64(time.Millisecond)
	m.frames.Store(int64(frames))
	m.hits.Store(int64(hits))
	m.renderMs.Add(float64(rendered) / float64(time.Millisecond))
	if frames == 1 {
		m.frameMs.Set(ms)
	} else {
		m.frameMs.Set(m.frameMs.Get()*(1-frameTimeSmoothing) + ms*frameTimeSmoothing)
	}
}

func (m *metrics) stopped(reason StopReason) {
	if m != nil {
		m.stop.Store(reason.String())
	}
}

// Run executes the frame loop
// External stops return a nil error, render and present failures are returned wrapped
func (d *Driver) Run(ctx context.Context) (Result, error) {
	width, height := d.Display.Size()
	fb := render.NewFrameBuffer(width, height)
	done := d.Display.Done()

	log.Printf("run: %dx%d mode=%s redraw=%s workers=%d frames=%d step=%.2f",
		width, height, d.Renderer.Mode, d.Renderer.Redraw, d.Renderer.Workers, d.Frames, d.AngularStep)

	res := Result{}
	m := newMetrics(d.Status)
	begin := time.Now()
	var window time.Duration

	finish := func(reason StopReason, err error) (Result, error) {
		res.Reason = reason
		res.Elapsed = time.Since(begin)
		m.stopped(reason)
		log.Printf("stop: %s after %d frames in %v", reason, res.Frames, res.Elapsed.Round(time.Millisecond))
		return res, err
	}

	for frame := 0; d.Frames == 0 || frame < d.Frames; frame++ {
		select {
		case <-ctx.Done():
			return finish(StopSignal, nil)
		case <-done:
			return finish(StopKey, nil)
		default:
		}

		start := time.Now()
		fb.Clear()
		if err := d.Renderer.Render(ctx, fb, Axis(frame, d.AngularStep)); err != nil {
			if ctx.Err() != nil {
				return finish(StopSignal, nil)
			}
			return finish(StopError, fmt.Errorf("render frame %d: %w", frame, err))
		}
		rendered := time.Since(start)
		if err := d.Display.Present(fb, d.Renderer.Redraw); err != nil {
			return finish(StopError, fmt.Errorf("present frame %d: %w", frame, err))
		}
		res.Frames++
		took := time.Since(start)
		window += took
		m.publish(res.Frames, fb.Hits(), took, rendered)

		if d.StatsInterval > 0 && res.Frames%d.StatsInterval == 0 {
			log.Printf("frame %d: avg %v/frame, %d hits", res.Frames, window/time.Duration(d.StatsInterval), fb.Hits())
			window = 0
		}

		if err := d.Display.Pace(ctx); err != nil {
			return finish(StopSignal, nil)
		}
	}
	return finish(StopFrames, nil)
}
