package starfield

import (
	"fmt"
	"strconv"
	"strings"

	"starfield/internal/core"
)

// Pools lists the interchangeable asset names for each density and for the
// point-star decorations. A pool's length defines the valid variant range.
type Pools struct {
	Dense  []string
	Sparse []string
	Empty  []string
	Stars  []string
}

// Size returns the pool length for a tile density. None has no pool.
func (p Pools) Size(d Density) int {
	return len(p.forDensity(d))
}

func (p Pools) forDensity(d Density) []string {
	switch d {
	case DensityDense:
		return p.Dense
	case DensitySparse:
		return p.Sparse
	case DensityEmpty:
		return p.Empty
	default:
		return nil
	}
}

// Config controls map generation and the parallax rates used to display it.
type Config struct {
	Columns int
	Rows    int

	NeighbourIterations int

	// ScaleFactor is the world spacing between adjacent cells.
	ScaleFactor float64

	DenseTileChance  int
	SparseTileChance int
	// EmptyTileChance is accepted for compatibility; generation never reads it.
	EmptyTileChance int

	MaxStarsToSpawn int

	Pools Pools

	TileScrollRate float64
	StarScrollRate float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Columns:             10,
		Rows:                10,
		NeighbourIterations: 3,
		ScaleFactor:         1.28,
		DenseTileChance:     33,
		SparseTileChance:    33,
		EmptyTileChance:     33,
		MaxStarsToSpawn:     100,
		Pools: Pools{
			Dense:  []string{"dense_0", "dense_1", "dense_2", "dense_3"},
			Sparse: []string{"sparse_0", "sparse_1", "sparse_2", "sparse_3"},
			Empty:  []string{"empty_0", "empty_1", "empty_2", "empty_3"},
			Stars:  []string{"star_white", "star_blue", "star_yellow", "star_red", "star_faint", "star_twin"},
		},
		TileScrollRate: 0.9,
		StarScrollRate: 0.8,
		Seed:           1337,
	}
}

// Cells returns the number of grid cells the config describes.
func (c Config) Cells() int { return c.Columns * c.Rows }

// PositionOffset centres the grid on the origin. Rows/2 is integer division.
func (c Config) PositionOffset() float64 {
	return c.ScaleFactor * float64(c.Rows/2)
}

// TilePosition is the world position of the tile at grid coordinates (x, y).
func (c Config) TilePosition(x, y int) core.Vec2 {
	off := c.PositionOffset()
	return core.Vec2{X: float64(x)*c.ScaleFactor - off, Y: float64(y)*c.ScaleFactor - off}
}

// DenseRange is the half-open range the dense seed count is drawn from.
func (c Config) DenseRange() (lo, hi int) {
	return c.DenseTileChance / 2, c.DenseTileChance
}

// SparseRange is the half-open range the sparse seed count is drawn from.
func (c Config) SparseRange() (lo, hi int) {
	return c.SparseTileChance / 4, c.SparseTileChance / 2
}

// StarRange is the half-open range the decoration count is drawn from.
func (c Config) StarRange() (lo, hi int) {
	return c.MaxStarsToSpawn / 2, c.MaxStarsToSpawn
}

// Validate reports the first setting that prevents generation.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return configErrorf("columns", "must be positive, got %d", c.Columns)
	}
	if c.Rows <= 0 {
		return configErrorf("rows", "must be positive, got %d", c.Rows)
	}
	if c.NeighbourIterations < 0 {
		return configErrorf("neighbour_iterations", "must not be negative, got %d", c.NeighbourIterations)
	}
	if c.ScaleFactor <= 0 {
		return configErrorf("scale_factor", "must be positive, got %g", c.ScaleFactor)
	}
	for _, chance := range []struct {
		key   string
		value int
	}{
		{"dense_tile_chance", c.DenseTileChance},
		{"sparse_tile_chance", c.SparseTileChance},
		{"empty_tile_chance", c.EmptyTileChance},
		{"max_stars_to_spawn", c.MaxStarsToSpawn},
	} {
		if chance.value < 0 {
			return configErrorf(chance.key, "must not be negative, got %d", chance.value)
		}
	}
	if len(c.Pools.Dense) == 0 {
		return configErrorf("dense_tiles", "pool is empty")
	}
	if len(c.Pools.Sparse) == 0 {
		return configErrorf("sparse_tiles", "pool is empty")
	}
	if len(c.Pools.Empty) == 0 {
		return configErrorf("empty_tiles", "pool is empty")
	}
	if lo, _ := c.StarRange(); lo > 0 && len(c.Pools.Stars) == 0 {
		return configErrorf("star_assets", "pool is empty but at least %d stars will spawn", lo)
	}
	denseLo, _ := c.DenseRange()
	sparseLo, _ := c.SparseRange()
	if denseLo+sparseLo > c.Cells() {
		return configErrorf("dense_tile_chance", "at least %d seeds requested for %d cells", denseLo+sparseLo, c.Cells())
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["neighbour_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NeighbourIterations = parsed
		}
	}
	if v, ok := cfg["scale_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.ScaleFactor = parsed
		}
	}
	if v, ok := cfg["dense_tile_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DenseTileChance = parsed
		}
	}
	if v, ok := cfg["sparse_tile_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SparseTileChance = parsed
		}
	}
	if v, ok := cfg["empty_tile_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.EmptyTileChance = parsed
		}
	}
	if v, ok := cfg["max_stars_to_spawn"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxStarsToSpawn = parsed
		}
	}
	if v, ok := cfg["dense_tiles"]; ok {
		if pool := splitPool(v); len(pool) > 0 {
			c.Pools.Dense = pool
		}
	}
	if v, ok := cfg["sparse_tiles"]; ok {
		if pool := splitPool(v); len(pool) > 0 {
			c.Pools.Sparse = pool
		}
	}
	if v, ok := cfg["empty_tiles"]; ok {
		if pool := splitPool(v); len(pool) > 0 {
			c.Pools.Empty = pool
		}
	}
	if v, ok := cfg["star_assets"]; ok {
		if pool := splitPool(v); len(pool) > 0 {
			c.Pools.Stars = pool
		}
	}
	if v, ok := cfg["tile_scroll_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TileScrollRate = parsed
		}
	}
	if v, ok := cfg["star_scroll_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.StarScrollRate = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Keys lists every key FromMap understands.
func Keys() []string {
	return []string{
		"columns", "rows", "neighbour_iterations", "scale_factor",
		"dense_tile_chance", "sparse_tile_chance", "empty_tile_chance",
		"max_stars_to_spawn",
		"dense_tiles", "sparse_tiles", "empty_tiles", "star_assets",
		"tile_scroll_rate", "star_scroll_rate", "seed",
	}
}

func splitPool(v string) []string {
	var pool []string
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			pool = append(pool, name)
		}
	}
	return pool
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d iter=%d scale=%g dense=%d sparse=%d stars=%d pools=%d/%d/%d/%d",
		c.Columns, c.Rows, c.NeighbourIterations, c.ScaleFactor,
		c.DenseTileChance, c.SparseTileChance, c.MaxStarsToSpawn,
		len(c.Pools.Dense), len(c.Pools.Sparse), len(c.Pools.Empty), len(c.Pools.Stars))
}
