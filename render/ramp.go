package render

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Ramp is an ordered glyph sequence from empty to densest
type Ramp string

// NewRamp validates a ramp: at least two single-byte glyphs, background first
func NewRamp(s string) (Ramp, error) {
	if len(s) < 2 {
		return "", fmt.Errorf("ramp %q: need at least 2 glyphs", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return "", fmt.Errorf("ramp %q: glyph %d is not printable ASCII", s, i)
		}
	}
	return Ramp(s), nil
}

// Len returns the number of glyphs
func (r Ramp) Len() int {
	return len(r)
}

// MinShade is the smallest diffuse term that still maps off the background glyph
// at unit scale, 1/(len-1)
func (r Ramp) MinShade() float32 {
	if len(r) < 2 {
		return 0
	}
	return 1 / float32(len(r)-1)
}

// Index quantizes diff*scale to the nearest ramp slot, clamped to the ramp
func (r Ramp) Index(diff, scale float32) int {
	last := len(r) - 1
	if last < 0 {
		return 0
	}
	v := diff * scale
	if v <= 0 {
		return 0
	}
	if v >= float32(last) {
		return last
	}
	return int(math32.Floor(v + 0.5))
}

// Glyph returns the glyph for a diffuse term
func (r Ramp) Glyph(diff, scale float32) byte {
	if len(r) == 0 {
		return ' '
	}
	return r[r.Index(diff, scale)]
}

// Background returns the glyph at slot 0
func (r Ramp) Background() byte {
	if len(r) == 0 {
		return ' '
	}
	return r[0]
}
