// Package sdf holds signed distance fields and their gradient estimate.
// Distances are negative inside a surface, positive outside and zero on it.
package sdf

import (
	"github.com/lixenwraith/termtorus/parameter"
	"github.com/lixenwraith/termtorus/vmath"
)

// Field is a signed distance function
type Field func(p vmath.Vec3) float32

// Normal estimates the surface normal of f at p by central differences
// Costs six field evaluations, independent of the field's shape
func Normal(f Field, p vmath.Vec3) vmath.Vec3 {
	const eps = parameter.NormalEpsilon
	n := vmath.Vec3{
		X: f(vmath.Vec3{X: p.X + eps, Y: p.Y, Z: p.Z}) - f(vmath.Vec3{X: p.X - eps, Y: p.Y, Z: p.Z}),
		Y: f(vmath.Vec3{X: p.X, Y: p.Y + eps, Z: p.Z}) - f(vmath.Vec3{X: p.X, Y: p.Y - eps, Z: p.Z}),
		Z: f(vmath.Vec3{X: p.X, Y: p.Y, Z: p.Z + eps}) - f(vmath.Vec3{X: p.X, Y: p.Y, Z: p.Z - eps}),
	}
	return n.Normalize()
}
