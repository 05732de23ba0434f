package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D vector used for points, directions and axes
// Value type: every operation returns a new vector
type Vec3 struct {
	X, Y, Z float32
}

// V3 builds a Vec3 from components
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the euclidean length
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v
// Zero-length input is returned unchanged instead of producing NaN
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l <= 0 {
		return v
	}
	// One division, three multiplies
	return v.Scale(1 / l)
}

// Dist returns the distance between two points
func (v Vec3) Dist(o Vec3) float32 {
	return v.Sub(o).Len()
}
