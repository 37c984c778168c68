package starfield

// fillGaps assigns an Empty tile to every unoccupied cell and coerces any
// leftover None tile to Empty, keeping its variant. It returns the number of
// cells it created.
func fillGaps(g *Grid, rng RNG, emptyPool int) int {
	filled := 0
	for i := 0; i < g.Len(); i++ {
		t, ok := g.Get(i)
		if !ok {
			g.Set(i, Tile{Density: DensityEmpty, Variant: rng.IntN(emptyPool)})
			filled++
			continue
		}
		if t.Density == DensityNone {
			t.Density = DensityEmpty
		}
	}
	return filled
}
