package starfield

import "starfield/internal/core"

// Star is a point decoration. It has no grid coupling.
type Star struct {
	Asset    int
	Position core.Vec2
}

// scatterStars draws the decoration count from cfg.StarRange and places each
// star uniformly inside the map's bounding area.
func scatterStars(rng RNG, cfg Config) []Star {
	lo, hi := cfg.StarRange()
	count := randRange(rng, lo, hi)
	halfW := cfg.ScaleFactor * float64(cfg.Columns)
	halfH := cfg.ScaleFactor * float64(cfg.Rows)
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		asset := rng.IntN(len(cfg.Pools.Stars))
		x := -halfW + rng.Float64()*2*halfW
		y := -halfH + rng.Float64()*2*halfH
		stars = append(stars, Star{Asset: asset, Position: core.Vec2{X: x, Y: y}})
	}
	return stars
}
