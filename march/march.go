// Package march steps camera rays through the torus distance field and shades hits.
package march

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/termtorus/sdf"
	"github.com/lixenwraith/termtorus/vmath"
)

// State is the terminal state of one marched ray
type State uint8

const (
	Miss State = iota
	Hit
)

func (s State) String() string {
	if s == Hit {
		return "hit"
	}
	return "miss"
}

// Sample is the outcome of marching one ray
type Sample struct {
	State State
	Diff  float32    // Diffuse term, 0 on miss
	Steps int        // Field evaluations spent marching, excluding the normal
	Point vmath.Vec3 // Hit position, zero on miss
}

// Scene is everything a ray needs besides its own origin and direction
type Scene struct {
	Torus sdf.Torus
	Light vmath.Vec3 // Unit direction

	// Far bounds the march distance, see FarBound
	Far float32
	// Step is the fixed march increment
	Step float32
	// MinShade floors the diffuse term so a hit never maps to the empty glyph
	MinShade float32
}

// FarBound is the loose march limit 2R - originX
func FarBound(majorRadius float32, origin vmath.Vec3) float32 {
	return 2*majorRadius - origin.X
}

// NewScene builds a scene stepping by the tube radius
// minShade is normally 1/(rampLen-1)
func NewScene(torus sdf.Torus, light, origin vmath.Vec3, minShade float32) Scene {
	return Scene{
		Torus:    torus,
		Light:    light.Normalize(),
		Far:      FarBound(torus.Size.X, origin),
		Step:     torus.Size.Y,
		MinShade: minShade,
	}
}

// WithAxis returns a copy of the scene with the torus spun to axis
func (s Scene) WithAxis(axis vmath.Vec3) Scene {
	s.Torus.Axis = axis
	return s
}

// March walks the ray in fixed steps until the field drops below the tube radius
// The d < r test fires a tube radius before the surface and sets the silhouette thickness
func (s Scene) March(origin, dir vmath.Vec3) Sample {
	if s.Step <= 0 {
		return Sample{}
	}
	r := s.Torus.Size.Y
	steps := 0
	for k := float32(0); k < s.Far; k += s.Step {
		p := origin.Add(dir.Scale(k))
		d := s.Torus.Dist(p)
		steps++
		if d < r {
			n := s.Torus.Normal(p)
			return Sample{
				State: Hit,
				Diff:  math32.Max(n.Dot(s.Light), s.MinShade),
				Steps: steps,
				Point: p,
			}
		}
	}
	return Sample{State: Miss, Steps: steps}
}
