package starfield

// RoundStats records what one propagation round did.
type RoundStats struct {
	Staged     int
	Downgraded int
}

// propagate grows lower-density halos around occupied tiles for the given
// number of rounds.
//
// Each round scans committed tiles in ascending index order. Free neighbours are
// staged with the source density minus one (floored at Empty) and a variant
// drawn from the sparse pool; staged cells are merged only after the scan, so a
// tile placed this round does not spread until the next one. Committed
// neighbours in [Sparse, d-1) are moved to d-1 immediately, which later sources
// in the same scan observe.
func propagate(g *Grid, rng RNG, rounds, sparsePool int) []RoundStats {
	stats := make([]RoundStats, 0, rounds)
	staged := make([]Tile, g.Len())
	isStaged := make([]bool, g.Len())
	var order []int

	for round := 0; round < rounds; round++ {
		var rs RoundStats
		for i := 0; i < g.Len(); i++ {
			src, ok := g.Get(i)
			if !ok {
				continue
			}
			for _, n := range g.Neighbors(i) {
				if isStaged[n] {
					continue
				}
				neighbour, occupied := g.Get(n)
				if !occupied {
					staged[n] = Tile{Density: src.Density.halo(), Variant: rng.IntN(sparsePool)}
					isStaged[n] = true
					order = append(order, n)
					continue
				}
				if neighbour.Density >= DensitySparse && int(neighbour.Density) < int(src.Density)-1 {
					neighbour.Density = src.Density - 1
					rs.Downgraded++
				}
			}
		}

		for _, n := range order {
			g.Set(n, staged[n])
			isStaged[n] = false
		}
		rs.Staged = len(order)
		order = order[:0]
		stats = append(stats, rs)
	}
	return stats
}
