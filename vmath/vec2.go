package vmath

// Vec2 is a float32 pair, used to bundle torus radii (major, tube)
type Vec2 struct {
	X, Y float32
}

// V2 builds a Vec2 from components
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}
