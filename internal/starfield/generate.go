package starfield

import (
	"io"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// RNG is the random source generation draws from. *math/rand/v2.Rand and
// *starfield/pkg/core.RNG both satisfy it.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

func randRange(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo)
}

type options struct {
	log logrus.FieldLogger
}

// Option customises Generate.
type Option func(*options)

// WithLogger routes generation diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Map is one finished generation: a fully covered grid plus the scattered
// decoration stars.
type Map struct {
	cfg   Config
	grid  *Grid
	stars []Star

	seeded   map[Density]mapset.Set[int]
	rounds   []RoundStats
	filled   int
	repaired int

	log logrus.FieldLogger
}

// Generate runs the full pipeline: dense and sparse seeding, neighbour
// propagation, gap filling, distinctness repair and star scattering. It either
// returns a complete map or an error; it never returns a partial one.
func Generate(cfg Config, rng RNG, opts ...Option) (*Map, error) {
	o := options{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := o.log.WithFields(logrus.Fields{"columns": cfg.Columns, "rows": cfg.Rows})
	m := &Map{cfg: cfg, grid: grid, seeded: make(map[Density]mapset.Set[int], 2), log: o.log}

	lo, hi := cfg.DenseRange()
	m.seeded[DensityDense] = seedDensity(grid, rng, DensityDense, lo, hi, len(cfg.Pools.Dense))
	lo, hi = cfg.SparseRange()
	m.seeded[DensitySparse] = seedDensity(grid, rng, DensitySparse, lo, hi, len(cfg.Pools.Sparse))
	log.WithFields(logrus.Fields{
		"dense":  m.seeded[DensityDense].Size(),
		"sparse": m.seeded[DensitySparse].Size(),
	}).Debug("seeded densities")

	m.rounds = propagate(grid, rng, cfg.NeighbourIterations, len(cfg.Pools.Sparse))
	for i, rs := range m.rounds {
		log.WithFields(logrus.Fields{"round": i, "staged": rs.Staged, "downgraded": rs.Downgraded}).Debug("propagation round")
	}

	m.filled = fillGaps(grid, rng, len(cfg.Pools.Empty))
	m.repaired = repairDistinctness(grid, len(cfg.Pools.Empty))
	m.stars = scatterStars(rng, cfg)

	log.WithFields(logrus.Fields{
		"filled":   m.filled,
		"repaired": m.repaired,
		"stars":    len(m.stars),
		"elapsed":  time.Since(start),
	}).Debug("map generated")
	return m, nil
}

// Config returns the configuration the map was generated with.
func (m *Map) Config() Config { return m.cfg }

// Grid exposes the finished grid. Callers must treat it as read-only.
func (m *Map) Grid() *Grid { return m.grid }

// Stars returns the scattered decoration stars.
func (m *Map) Stars() []Star { return m.stars }

// Rounds returns per-round propagation statistics.
func (m *Map) Rounds() []RoundStats { return m.rounds }

// Seeded returns the indices seeded with density d, ascending. Only Dense and
// Sparse are seeded.
func (m *Map) Seeded(d Density) []int {
	set, ok := m.seeded[d]
	if !ok {
		return nil
	}
	out := make([]int, 0, set.Size())
	set.Each(func(i int) { out = append(out, i) })
	slices.Sort(out)
	return out
}
