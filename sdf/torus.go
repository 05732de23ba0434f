package sdf

import (
	"github.com/lixenwraith/termtorus/vmath"
)

// Torus is a ring of major radius Size.X and tube radius Size.Y
// Its ring plane passes through the origin orthogonal to the unit vector Axis
type Torus struct {
	Size vmath.Vec2
	Axis vmath.Vec3
}

// Dist returns the signed distance from p to the torus surface
// Points on the axis have no unique nearest ring point, the degenerate projection
// normalizes to zero and the result falls back to |p| - r
func (t Torus) Dist(p vmath.Vec3) float32 {
	proj := p.Sub(t.Axis.Scale(p.Dot(t.Axis)))
	ring := proj.Normalize().Scale(t.Size.X)
	return ring.Dist(p) - t.Size.Y
}

// Normal returns the unit surface normal near p
func (t Torus) Normal(p vmath.Vec3) vmath.Vec3 {
	return Normal(t.Dist, p)
}
