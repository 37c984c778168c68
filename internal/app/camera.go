package app

import "starfield/internal/core"

// Camera is the moving viewpoint the parallax layers follow.
type Camera struct {
	Position core.Vec2
	Speed    float64
}

// Move advances the camera by the input direction over dt seconds. Diagonal
// input is not normalised.
func (c *Camera) Move(dx, dy, dt float64) {
	c.Position = c.Position.Add(core.Vec2{X: dx, Y: dy}.Scale(c.Speed * dt))
}
