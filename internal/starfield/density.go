package starfield

// Density classifies how busy a star-field tile looks. The ordering is
// significant: propagation compares and decrements levels.
type Density uint8

const (
	// DensityNone marks a cell that has not been assigned yet.
	DensityNone Density = iota
	DensityEmpty
	DensitySparse
	DensityDense
)

var densityNames = [...]string{"none", "empty", "sparse", "dense"}

func (d Density) String() string {
	if int(d) < len(densityNames) {
		return densityNames[d]
	}
	return "invalid"
}

// halo returns the density grown around a tile of density d: one level lower,
// never below Empty.
func (d Density) halo() Density {
	if d <= DensitySparse {
		return DensityEmpty
	}
	return d - 1
}

// Tile is a single classified cell. X and Y always decompose the index the
// tile is stored under.
type Tile struct {
	Density Density
	Variant int
	X, Y    int
}
