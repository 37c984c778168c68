package starfield

import "github.com/zyedidia/generic/mapset"

// seedDensity places between lo and hi-1 tiles of density d at random free
// cells and returns the indices it filled. The sampled target is clamped to the
// free cell count so the loop always terminates.
func seedDensity(g *Grid, rng RNG, d Density, lo, hi, poolSize int) mapset.Set[int] {
	placed := mapset.New[int]()
	target := randRange(rng, lo, hi)
	if free := g.Free(); target > free {
		target = free
	}
	for placed.Size() < target {
		idx := rng.IntN(g.Len())
		if g.Contains(idx) {
			continue
		}
		g.Set(idx, Tile{Density: d, Variant: rng.IntN(poolSize)})
		placed.Put(idx)
	}
	return placed
}
