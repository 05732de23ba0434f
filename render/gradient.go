package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termtorus/parameter/visual"
)

// Stop anchors a color at an intensity threshold
type Stop = visual.GradientStop

// Gradient maps intensity in [0,1] to color by linear interpolation between stops
type Gradient struct {
	stops []Stop
	// Stop colors pre-converted for interpolation
	colors []colorful.Color
}

// NewGradient validates a stop table: first threshold 0, last 1, non-decreasing
func NewGradient(stops []Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient: need at least 2 stops, got %d", len(stops))
	}
	if stops[0].T != 0 {
		return nil, fmt.Errorf("gradient: first stop at %v, want 0", stops[0].T)
	}
	if last := stops[len(stops)-1].T; last != 1 {
		return nil, fmt.Errorf("gradient: last stop at %v, want 1", last)
	}
	g := &Gradient{
		stops:  make([]Stop, len(stops)),
		colors: make([]colorful.Color, len(stops)),
	}
	for i, s := range stops {
		if i > 0 && s.T < stops[i-1].T {
			return nil, fmt.Errorf("gradient: stop %d at %v precedes stop %d at %v", i, s.T, i-1, stops[i-1].T)
		}
		g.stops[i] = s
		g.colors[i] = toColorful(s.Color)
	}
	return g, nil
}

// MustGradient is NewGradient for the built-in palettes
func MustGradient(stops []Stop) *Gradient {
	g, err := NewGradient(stops)
	if err != nil {
		panic(err)
	}
	return g
}

// Stops returns a copy of the stop table
func (g *Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// At returns the color at intensity x
// Endpoints return the stop colors exactly, without interpolation
func (g *Gradient) At(x float32) RGB {
	first, last := 0, len(g.stops)-1
	if x <= g.stops[first].T {
		return g.stops[first].Color
	}
	if x >= g.stops[last].T {
		return g.stops[last].Color
	}
	for i := 0; i < last; i++ {
		t0, t1 := g.stops[i].T, g.stops[i+1].T
		if x > t1 {
			continue
		}
		if x == t1 {
			return g.stops[i+1].Color
		}
		if t1 == t0 {
			return g.stops[i+1].Color
		}
		t := float64((x - t0) / (t1 - t0))
		r, gg, b := g.colors[i].BlendRgb(g.colors[i+1], t).Clamped().RGB255()
		return RGB{R: r, G: gg, B: b}
	}
	return g.stops[last].Color
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
