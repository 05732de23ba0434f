package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtorus/parameter/visual"
)

func assertRGBNear(t *testing.T, want, got RGB, tol int) {
	t.Helper()
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) {
		t.Errorf("color %v not within %d of %v", got, tol, want)
	}
}

func TestGradientEndpointsExact(t *testing.T) {
	for name, stops := range visual.Palettes {
		t.Run(name, func(t *testing.T) {
			g, err := NewGradient(stops)
			require.NoError(t, err)
			assert.Equal(t, stops[0].Color, g.At(0))
			assert.Equal(t, stops[len(stops)-1].Color, g.At(1))
			// Out of range clamps to the endpoints
			assert.Equal(t, stops[0].Color, g.At(-3))
			assert.Equal(t, stops[len(stops)-1].Color, g.At(7))
		})
	}
}

func TestGradientMidpointIsMean(t *testing.T) {
	for name, stops := range visual.Palettes {
		t.Run(name, func(t *testing.T) {
			g := MustGradient(stops)
			for i := 0; i+1 < len(stops); i++ {
				a, b := stops[i], stops[i+1]
				mid := (a.T + b.T) / 2
				want := RGB{
					R: uint8((int(a.Color.R) + int(b.Color.R)) / 2),
					G: uint8((int(a.Color.G) + int(b.Color.G)) / 2),
					B: uint8((int(a.Color.B) + int(b.Color.B)) / 2),
				}
				assertRGBNear(t, want, g.At(mid), 1)
			}
		})
	}
}

func TestGradientInteriorStops(t *testing.T) {
	g := MustGradient(visual.PaletteSpectrum)
	for _, s := range visual.PaletteSpectrum {
		assert.Equal(t, s.Color, g.At(s.T), "stop at %v", s.T)
	}
}

func TestGradientChannelsIndependent(t *testing.T) {
	g := MustGradient([]Stop{
		{T: 0, Color: RGB{R: 0, G: 200, B: 100}},
		{T: 0.5, Color: RGB{R: 100, G: 0, B: 100}},
		{T: 1, Color: RGB{R: 255, G: 255, B: 255}},
	})
	assertRGBNear(t, RGB{R: 25, G: 150, B: 100}, g.At(0.125), 1)
	assertRGBNear(t, RGB{R: 177, G: 127, B: 177}, g.At(0.75), 1)
}

func TestNewGradientValidation(t *testing.T) {
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	tests := []struct {
		name  string
		stops []Stop
	}{
		{"empty", nil},
		{"single", []Stop{{T: 0, Color: black}}},
		{"first not zero", []Stop{{T: 0.1, Color: black}, {T: 1, Color: white}}},
		{"last not one", []Stop{{T: 0, Color: black}, {T: 0.9, Color: white}}},
		{"decreasing", []Stop{{T: 0, Color: black}, {T: 0.6, Color: white}, {T: 0.4, Color: black}, {T: 1, Color: white}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradient(tt.stops)
			assert.Error(t, err)
		})
	}
}

func TestGradientCopiesStops(t *testing.T) {
	stops := []Stop{{T: 0, Color: RGB{}}, {T: 1, Color: RGB{R: 9}}}
	g := MustGradient(stops)
	stops[1].Color = RGB{R: 200}
	assert.Equal(t, RGB{R: 9}, g.At(1))
	assert.Len(t, g.Stops(), 2)
}
