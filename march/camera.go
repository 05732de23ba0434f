package march

import (
	"github.com/lixenwraith/termtorus/vmath"
)

// Camera is a fixed pinhole looking down +X
// Ray direction for a cell is normalize(1, u, v) with u corrected for the cell aspect
type Camera struct {
	Origin vmath.Vec3

	// PixelAspect is the width/height ratio of one terminal cell
	PixelAspect float32
}

// Ray returns the unit direction through cell (i, j) of a width x height grid
func (c Camera) Ray(i, j, width, height int) vmath.Vec3 {
	w, h := float32(width), float32(height)
	ux := (float32(i)/w)*2 - 1
	uy := (float32(j)/h)*2 - 1
	ux *= (w / h) * c.PixelAspect
	return vmath.Vec3{X: 1, Y: ux, Z: uy}.Normalize()
}

// Rays precomputes every cell direction row-major
// Directions do not depend on the frame, so callers may reuse the grid across frames
func (c Camera) Rays(width, height int) []vmath.Vec3 {
	if width <= 0 || height <= 0 {
		return nil
	}
	rays := make([]vmath.Vec3, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			rays[j*width+i] = c.Ray(i, j, width, height)
		}
	}
	return rays
}
