// Package vmath provides the float32 vector math used by the torus renderer.
package vmath

import (
	"github.com/chewxy/math32"
)

// DegToRad converts degrees to radians
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RotateAboutZ rotates the (y,z) components of v by angle radians, x is unchanged
// Named for the euler-z spin it drives with the camera looking down +X
func RotateAboutZ(v Vec3, angle float32) Vec3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vec3{
		X: v.X,
		Y: c*v.Y - s*v.Z,
		Z: s*v.Y + c*v.Z,
	}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt limits x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
