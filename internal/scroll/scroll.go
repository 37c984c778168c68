// Package scroll computes per-frame parallax offsets for the tile and star
// layers from the current viewpoint.
package scroll

import "starfield/internal/core"

// Controller holds the two independent layer rates. The zero value pins both
// layers in place.
type Controller struct {
	TileRate float64
	StarRate float64

	viewpoint core.Vec2
}

// New returns a controller with the given rates.
func New(tileRate, starRate float64) *Controller {
	return &Controller{TileRate: tileRate, StarRate: starRate}
}

// Offsets returns the tile and star layer offsets for a viewpoint.
func (c *Controller) Offsets(viewpoint core.Vec2) (tile, star core.Vec2) {
	return viewpoint.Scale(c.TileRate), viewpoint.Scale(c.StarRate)
}

// Advance records the viewpoint and returns the repositioned layer anchors.
// X and Y are replaced by the offsets; each anchor keeps its own Z. Nothing
// accumulates between calls.
func (c *Controller) Advance(viewpoint core.Vec2, tileAnchor, starAnchor core.Vec3) (core.Vec3, core.Vec3) {
	c.viewpoint = viewpoint
	tile, star := c.Offsets(viewpoint)
	return core.Vec3{X: tile.X, Y: tile.Y, Z: tileAnchor.Z}, core.Vec3{X: star.X, Y: star.Y, Z: starAnchor.Z}
}

// Viewpoint returns the viewpoint passed to the most recent Advance.
func (c *Controller) Viewpoint() core.Vec2 { return c.viewpoint }
