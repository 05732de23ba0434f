package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the pacing delay between frames (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameCount is the number of frames rendered before a clean exit
	// Zero means run until an external stop
	FrameCount = 20000

	// AngularStepDeg is the torus axis spin per frame in degrees
	// Axis angle is linear in frame index, no easing
	AngularStepDeg = 0.6

	// StatsInterval is the number of frames between frame time log lines
	StatsInterval = 1000
)

// Terminal size fallback
// A dimension below its minimum is replaced by the fallback value
const (
	MinWidth       = 20
	MinHeight      = 10
	FallbackWidth  = 80
	FallbackHeight = 24
)

// RenderWorkers is the default row worker count, 1 renders on the calling goroutine
const RenderWorkers = 1
