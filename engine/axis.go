package engine

import (
	"github.com/lixenwraith/termtorus/vmath"
)

// BaseAxis is the torus axis at frame zero
var BaseAxis = vmath.V3(1, 1, 1).Normalize()

// Axis returns the torus axis for frame, spun stepDeg degrees per frame
// Recomputed from the frame index so no rotation error accumulates
func Axis(frame int, stepDeg float32) vmath.Vec3 {
	angle := vmath.DegToRad(float32(frame) * stepDeg)
	return vmath.RotateAboutZ(BaseAxis, angle).Normalize()
}
