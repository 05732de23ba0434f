package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtorus/parameter/visual"
)

func TestRampIndexClamps(t *testing.T) {
	r := Ramp(visual.RampClassic)
	last := r.Len() - 1

	tests := []struct {
		name string
		diff float32
		want int
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"below half step", 0.02, 0},
		{"rounds up", 0.03, 1},
		{"exact", 0.5, 10},
		{"rounds to nearest", 0.53, 11},
		{"near top", 0.8, last},
		{"unit", 1, last},
		{"huge", 40, last},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Index(tt.diff, 20))
		})
	}
}

func TestRampIndexMonotonic(t *testing.T) {
	for _, s := range []string{visual.RampClassic, visual.RampShort, visual.RampCoarse} {
		r := Ramp(s)
		prev := 0
		for i := 0; i <= 2000; i++ {
			diff := float32(i) / 1000
			idx := r.Index(diff, 20)
			assert.GreaterOrEqual(t, idx, prev, "ramp %q diff %v", s, diff)
			assert.Less(t, idx, r.Len())
			prev = idx
		}
	}
}

func TestRampMinShadeLeavesBackground(t *testing.T) {
	// The shading floor must always select a visible glyph
	for _, s := range []string{visual.RampClassic, visual.RampShort, visual.RampCoarse} {
		r := Ramp(s)
		assert.NotEqual(t, r.Background(), r.Glyph(r.MinShade(), 20), "ramp %q", s)
	}
}

func TestRampGlyph(t *testing.T) {
	r := Ramp(visual.RampShort)
	assert.Equal(t, byte(' '), r.Glyph(0, 20))
	assert.Equal(t, byte('@'), r.Glyph(10, 20))
	assert.Equal(t, byte(':'), r.Glyph(0.1, 20))
	assert.Equal(t, float32(1.0/9), r.MinShade())
}

func TestNewRamp(t *testing.T) {
	r, err := NewRamp(" .oO@")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())

	_, err = NewRamp("@")
	assert.Error(t, err)

	_, err = NewRamp(" .\t#")
	assert.Error(t, err)

	_, err = NewRamp(" .░#")
	assert.Error(t, err)
}

func TestEmptyRamp(t *testing.T) {
	var r Ramp
	assert.Equal(t, 0, r.Index(1, 20))
	assert.Equal(t, byte(' '), r.Glyph(1, 20))
	assert.Equal(t, float32(0), r.MinShade())
}
