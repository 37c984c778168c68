package starfield

import (
	"github.com/sirupsen/logrus"

	"starfield/internal/core"
	pcore "starfield/pkg/core"
)

// Scene owns the current map for an interactive viewer and regenerates it on
// demand.
type Scene struct {
	cfg  Config
	seed int64
	m    *Map
	log  logrus.FieldLogger
}

// NewScene returns a scene for cfg. Call Reset to generate the first map.
func NewScene(cfg Config, log logrus.FieldLogger) *Scene {
	if log == nil {
		log = discardLogger()
	}
	return &Scene{cfg: cfg, seed: cfg.Seed, log: log}
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "starfield" }

// Size reports the display dimensions of the grid.
func (s *Scene) Size() core.Size {
	if s.m != nil {
		w, h := s.m.grid.Span()
		return core.Size{W: w, H: h}
	}
	return core.Size{W: s.cfg.Rows, H: s.cfg.Columns}
}

// Reset regenerates the map from seed. A zero seed reuses the configured seed.
// On failure the previous map is kept.
func (s *Scene) Reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	m, err := Generate(s.cfg, pcore.NewRNG(effective), WithLogger(s.log.WithField("seed", effective)))
	if err != nil {
		return err
	}
	s.seed = effective
	s.m = m
	return nil
}

// Seed returns the seed of the current map.
func (s *Scene) Seed() int64 { return s.seed }

// Map returns the current map, or nil before the first successful Reset.
func (s *Scene) Map() *Map { return s.m }

// Config returns the active configuration.
func (s *Scene) Config() Config { return s.cfg }

// Cells exposes the current display buffer.
func (s *Scene) Cells() []uint8 {
	if s.m == nil {
		return nil
	}
	return s.m.Cells()
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "neighbour_iterations", Label: "Neighbour iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
		{Key: "dense_tile_chance", Label: "Dense chance", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "sparse_tile_chance", Label: "Sparse chance", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "max_stars_to_spawn", Label: "Max stars", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 2000, HasMin: true, HasMax: true},
		{Key: "tile_scroll_rate", Label: "Tile scroll rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "star_scroll_rate", Label: "Star scroll rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting and regenerates with the current
// seed. Values the generator rejects are rolled back.
func (s *Scene) SetIntParameter(key string, value int) bool {
	next := s.cfg
	switch key {
	case "neighbour_iterations":
		next.NeighbourIterations = value
	case "dense_tile_chance":
		next.DenseTileChance = value
	case "sparse_tile_chance":
		next.SparseTileChance = value
	case "max_stars_to_spawn":
		next.MaxStarsToSpawn = value
	default:
		return false
	}
	return s.apply(next)
}

// SetFloatParameter updates a scroll rate. Rates do not affect generation.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "tile_scroll_rate":
		s.cfg.TileScrollRate = value
	case "star_scroll_rate":
		s.cfg.StarScrollRate = value
	default:
		return false
	}
	return true
}

func (s *Scene) apply(next Config) bool {
	if err := next.Validate(); err != nil {
		s.log.WithError(err).Warn("rejected parameter change")
		return false
	}
	prev := s.cfg
	s.cfg = next
	if err := s.Reset(s.seed); err != nil {
		s.cfg = prev
		s.log.WithError(err).Warn("regeneration failed")
		return false
	}
	return true
}
