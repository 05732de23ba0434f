package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/status"
)

// fakeDisplay counts frames and can stop or fail at a given frame
type fakeDisplay struct {
	width, height int
	done          chan struct{}
	stopAfter     int
	failAt        int
	cancel        context.CancelFunc
	cancelAfter   int
	presentDelay  time.Duration

	presents int
	paces    int
	redraws  []render.Redraw
	hits     []int
	closed   int
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{width: w, height: h, failAt: -1}
}

func (f *fakeDisplay) Size() (int, int) { return f.width, f.height }

func (f *fakeDisplay) Present(fb *render.FrameBuffer, redraw render.Redraw) error {
	if f.presents == f.failAt {
		return errors.New("write: broken pipe")
	}
	time.Sleep(f.presentDelay)
	f.presents++
	f.redraws = append(f.redraws, redraw)
	f.hits = append(f.hits, fb.Hits())
	if f.done != nil && f.presents == f.stopAfter {
		close(f.done)
	}
	if f.cancel != nil && f.presents == f.cancelAfter {
		f.cancel()
	}
	return nil
}

func (f *fakeDisplay) Pace(ctx context.Context) error {
	f.paces++
	return ctx.Err()
}

func (f *fakeDisplay) Done() <-chan struct{} {
	if f.done == nil {
		return nil
	}
	return f.done
}

func (f *fakeDisplay) Close() error {
	f.closed++
	return nil
}

func newDriver(d Display, frames int) *Driver {
	return &Driver{
		Renderer:    render.NewReference(render.GlyphAndColor, render.InPlace),
		Display:     d,
		Frames:      frames,
		AngularStep: 0.6,
	}
}

func TestDriverRunsFrameCount(t *testing.T) {
	fd := newFakeDisplay(40, 12)
	res, err := newDriver(fd, 5).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, res.Frames)
	assert.Equal(t, StopFrames, res.Reason)
	assert.Equal(t, 5, fd.presents)
	assert.Equal(t, 5, fd.paces)
	for i, r := range fd.redraws {
		assert.Equal(t, render.InPlace, r, "frame %d", i)
	}
	for i, h := range fd.hits {
		assert.Greater(t, h, 0, "frame %d", i)
	}
}

func TestDriverStopsOnDone(t *testing.T) {
	fd := newFakeDisplay(40, 12)
	fd.done = make(chan struct{})
	fd.stopAfter = 3

	d := newDriver(fd, 0)
	d.StatsInterval = 2
	res, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Frames)
	assert.Equal(t, StopKey, res.Reason)
}

func TestDriverStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fd := newFakeDisplay(40, 12)
	fd.cancel = cancel
	fd.cancelAfter = 2

	res, err := newDriver(fd, 100).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Frames)
	assert.Equal(t, StopSignal, res.Reason)
}

func TestDriverPresentError(t *testing.T) {
	fd := newFakeDisplay(40, 12)
	fd.failAt = 1

	res, err := newDriver(fd, 10).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "present frame 1")
	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, StopError, res.Reason)
}

func TestAxis(t *testing.T) {
	a0 := Axis(0, 0.6)
	assert.InDelta(t, BaseAxis.X, a0.X, 1e-6)
	assert.InDelta(t, BaseAxis.Y, a0.Y, 1e-6)
	assert.InDelta(t, BaseAxis.Z, a0.Z, 1e-6)

	// 150 frames at 0.6 degrees is a quarter turn of (y, z)
	q := Axis(150, 0.6)
	inv := 1 / math32.Sqrt(3)
	assert.InDelta(t, inv, q.X, 1e-5)
	assert.InDelta(t, -inv, q.Y, 1e-5)
	assert.InDelta(t, inv, q.Z, 1e-5)

	for _, frame := range []int{1, 37, 599, 20000} {
		a := Axis(frame, 0.6)
		assert.InDelta(t, 1, a.Len(), 1e-5, "frame %d", frame)
		assert.InDelta(t, inv, a.X, 1e-5, "frame %d", frame)
	}

	// Pure function of frame index
	assert.Equal(t, Axis(1234, 0.6), Axis(1234, 0.6))
}

func TestStopReasonString(t *testing.T) {
	assert.Equal(t, "signal", StopSignal.String())
	assert.Equal(t, "stop key", StopKey.String())
	assert.Equal(t, "unknown", StopReason(42).String())
}

func TestDriverPublishesStatus(t *testing.T) {
	fd := newFakeDisplay(40, 12)
	reg := status.NewRegistry()

	d := newDriver(fd, 4)
	d.Status = reg
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), reg.Ints.Get(status.Frames).Load())
	assert.Equal(t, int64(fd.hits[3]), reg.Ints.Get(status.Hits).Load())
	assert.Greater(t, reg.Floats.Get(status.RenderMs).Get(), 0.0)
	assert.Equal(t, "frame count reached", reg.Strings.Get(status.Stop).Load())
}

func TestDriverRenderTimeExcludesPresent(t *testing.T) {
	fd := newFakeDisplay(40, 12)
	fd.presentDelay = 20 * time.Millisecond
	reg := status.NewRegistry()

	d := newDriver(fd, 3)
	d.Status = reg
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, reg.Floats.Get(status.FrameTimeMs).Get(), 20.0)
	assert.Less(t, reg.Floats.Get(status.RenderMs).Get(), 3*20.0)
}
