package core

// Vec2 is a point or offset in world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// XYZ lifts v into three dimensions at depth z.
func (v Vec2) XYZ(z float64) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: z} }

// Vec3 is a world-space position with a depth component.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }
