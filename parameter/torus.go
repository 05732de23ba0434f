package parameter

// Torus geometry
const (
	// TorusMajorRadius is the ring radius R
	TorusMajorRadius = 1.2

	// TorusTubeRadius is the tube radius r, also the fixed march step
	TorusTubeRadius = 0.3

	// NormalEpsilon is the central difference step for SDF gradients
	NormalEpsilon = 0.005
)

// Shading to output mapping
const (
	// GlyphScale multiplies the diffuse term before rounding to a ramp index
	GlyphScale = 20.0

	// ColorScale divides the diffuse term into gradient intensity
	// 10 keeps the lit surface in the blue bands, 1.5 spans the palette
	ColorScale = 1.5

	// ColorFloor is the minimum gradient intensity for lit cells
	ColorFloor = 0.0
)
