package starfield

// repairDistinctness nudges each tile's variant away from neighbours that share
// it. One ascending pass; neighbours are right, left, up, down by plain index
// arithmetic, so horizontal steps may alias into the adjacent row. Every match
// yields (original+1) mod capPool and the last match wins. The pass does not
// re-check after updating, so matches can survive. It returns how many tiles
// changed.
func repairDistinctness(g *Grid, capPool int) int {
	changed := 0
	stride := g.Rows()
	for i := 0; i < g.Len(); i++ {
		t, ok := g.Get(i)
		if !ok {
			continue
		}
		original := t.Variant
		out := original
		for _, n := range [4]int{i + 1, i - 1, i + stride, i - stride} {
			if neighbour, ok := g.Get(n); ok && neighbour.Variant == original {
				out = (original + 1) % capPool
			}
		}
		if out != original {
			t.Variant = out
			changed++
		}
	}
	return changed
}
