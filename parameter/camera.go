package parameter

// Camera and light, constant for the whole run
// Camera looks down +X, ray direction is normalize(1, u, v)
const (
	CameraOriginX = -2.5
	CameraOriginY = 0.0
	CameraOriginZ = 0.0

	// PixelAspect compensates for terminal cells being roughly twice as tall as wide
	PixelAspect = 11.0 / 24.0

	// Light direction before normalization
	LightX = -1.0
	LightY = -1.0
	LightZ = -1.0
)
