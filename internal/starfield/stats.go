package starfield

import "fmt"

// Stats summarises a generated map.
type Stats struct {
	Cells     int
	ByDensity [4]int
	Seeded    [4]int
	Staged    int
	Filled    int
	Repaired  int
	Stars     int
	// Collisions counts grid-adjacent pairs that still share a variant after
	// repair.
	Collisions int
}

// Stats computes summary counts for the map.
func (m *Map) Stats() Stats {
	s := Stats{
		Cells:    m.grid.Len(),
		Filled:   m.filled,
		Repaired: m.repaired,
		Stars:    len(m.stars),
	}
	for d, set := range m.seeded {
		s.Seeded[d] = set.Size()
	}
	for _, rs := range m.rounds {
		s.Staged += rs.Staged
	}
	for i := 0; i < m.grid.Len(); i++ {
		t, ok := m.grid.Get(i)
		if !ok {
			continue
		}
		s.ByDensity[t.Density]++
		for _, n := range m.grid.Neighbors(i) {
			if n < i {
				continue
			}
			if other, ok := m.grid.Get(n); ok && other.Variant == t.Variant {
				s.Collisions++
			}
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("cells=%d dense=%d sparse=%d empty=%d none=%d seeded=%d/%d staged=%d filled=%d repaired=%d collisions=%d stars=%d",
		s.Cells, s.ByDensity[DensityDense], s.ByDensity[DensitySparse], s.ByDensity[DensityEmpty], s.ByDensity[DensityNone],
		s.Seeded[DensityDense], s.Seeded[DensitySparse], s.Staged, s.Filled, s.Repaired, s.Collisions, s.Stars)
}
