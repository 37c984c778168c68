package starfield

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	pcore "starfield/pkg/core"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Columns = 10
	cfg.Rows = 10
	cfg.NeighbourIterations = 3
	cfg.DenseTileChance = 33
	cfg.SparseTileChance = 33
	return cfg
}

func TestGenerateScenarioCoversGrid(t *testing.T) {
	cfg := scenarioConfig()
	m, err := Generate(cfg, pcore.NewRNG(4242))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	g := m.Grid()
	if g.Count() != 100 {
		t.Fatalf("occupied = %d, want 100", g.Count())
	}
	for i := 0; i < g.Len(); i++ {
		tile, ok := g.Get(i)
		if !ok || tile.Density == DensityNone {
			t.Fatalf("cell %d unassigned: %s", i, spew.Sdump(tile))
		}
		if tile.Variant < 0 || tile.Variant >= 4 {
			t.Fatalf("cell %d variant out of range: %s", i, spew.Sdump(tile))
		}
		if g.Index(tile.X, tile.Y) != i {
			t.Fatalf("cell %d coordinates do not match: %s", i, spew.Sdump(tile))
		}
	}

	dense := m.Seeded(DensityDense)
	if n := len(dense); n < 16 || n >= 33 {
		t.Fatalf("dense seeds = %d, want [16,33)", n)
	}
	if n := len(m.Seeded(DensitySparse)); n < 8 || n >= 16 {
		t.Fatalf("sparse seeds = %d, want [8,16)", n)
	}

	stats := m.Stats()
	if stats.ByDensity[DensityDense] != len(dense) {
		t.Fatalf("dense tiles %d differ from dense seeds %d", stats.ByDensity[DensityDense], len(dense))
	}
	for _, i := range dense {
		if tile, _ := g.Get(i); tile.Density != DensityDense {
			t.Fatalf("dense seed %d lost its density", i)
		}
	}
	if stats.ByDensity[DensityNone] != 0 {
		t.Fatalf("none tiles remain: %s", stats)
	}
	if n := len(m.Stars()); n < 50 || n >= 100 {
		t.Fatalf("stars = %d, want [50,100)", n)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := scenarioConfig()
	a, err := Generate(cfg, pcore.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg, pcore.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Seeded(DensityDense), b.Seeded(DensityDense)) {
		t.Fatal("dense seeding not deterministic")
	}
	if !slices.Equal(a.Seeded(DensitySparse), b.Seeded(DensitySparse)) {
		t.Fatal("sparse seeding not deterministic")
	}
	if a.ASCII() != b.ASCII() || !slices.Equal(variants(a.Grid()), variants(b.Grid())) {
		t.Fatal("grid not deterministic")
	}
	if !slices.Equal(a.Stars(), b.Stars()) {
		t.Fatal("stars not deterministic")
	}

	c, err := Generate(cfg, pcore.NewRNG(100))
	if err != nil {
		t.Fatal(err)
	}
	if a.ASCII() == c.ASCII() && slices.Equal(variants(a.Grid()), variants(c.Grid())) {
		t.Fatal("different seeds should produce different maps")
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"columns":            func(c *Config) { c.Columns = 0 },
		"rows":               func(c *Config) { c.Rows = -2 },
		"dense_tiles":        func(c *Config) { c.Pools.Dense = nil },
		"sparse_tiles":       func(c *Config) { c.Pools.Sparse = nil },
		"empty_tiles":        func(c *Config) { c.Pools.Empty = nil },
		"star_assets":        func(c *Config) { c.Pools.Stars = nil },
		"scale_factor":       func(c *Config) { c.ScaleFactor = 0 },
		"max_stars_to_spawn": func(c *Config) { c.MaxStarsToSpawn = -1 },
		"dense_tile_chance": func(c *Config) {
			c.Columns, c.Rows = 2, 2
		},
	}
	for field, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		m, err := Generate(cfg, pcore.NewRNG(1))
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: error = %v, want ConfigurationError", field, err)
		}
		if cfgErr.Field != field {
			t.Fatalf("%s: reported field %q", field, cfgErr.Field)
		}
		if m != nil {
			t.Fatalf("%s: expected no map on error", field)
		}
	}
}

func TestGenerateNonSquareGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 14
	cfg.Rows = 6
	m, err := Generate(cfg, pcore.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	if m.Grid().Count() != 84 {
		t.Fatalf("occupied = %d, want 84", m.Grid().Count())
	}
	lines := strings.Split(strings.TrimSuffix(m.ASCII(), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("ascii has %d lines, want 14", len(lines))
	}
	for _, line := range lines {
		if len(line) != 6 || strings.ContainsRune(line, ' ') {
			t.Fatalf("bad ascii line %q", line)
		}
	}
}

func TestPlacementsPositions(t *testing.T) {
	cfg := scenarioConfig()
	cfg.ScaleFactor = 2
	m, err := Generate(cfg, pcore.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	placements, err := m.Placements()
	if err != nil {
		t.Fatalf("equal-size pools should resolve cleanly: %v", err)
	}
	if len(placements) != 100 {
		t.Fatalf("placements = %d, want 100", len(placements))
	}
	for _, p := range placements {
		x, y := m.Grid().Coords(p.Index)
		wantX := float64(x)*2 - 10
		wantY := float64(y)*2 - 10
		if math.Abs(p.Position.X-wantX) > 1e-9 || math.Abs(p.Position.Y-wantY) > 1e-9 || p.Position.Z != 0 {
			t.Fatalf("placement %s, want (%g,%g,0)", spew.Sdump(p), wantX, wantY)
		}
		pool := cfg.Pools.forDensity(p.Density)
		if p.Asset != pool[p.Variant] {
			t.Fatalf("placement asset %q, want %q", p.Asset, pool[p.Variant])
		}
	}

	stars := m.StarPlacements()
	if len(stars) != len(m.Stars()) {
		t.Fatalf("star placements = %d, want %d", len(stars), len(m.Stars()))
	}
	for i, s := range stars {
		if s.Asset != cfg.Pools.Stars[m.Stars()[i].Asset] {
			t.Fatalf("star %d asset %q", i, s.Asset)
		}
	}
}

func TestPlacementsFallBackToFirstDenseAsset(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := DefaultConfig()
	cfg.Pools.Empty = []string{"empty_only"}
	g, _ := NewGrid(2, 2)
	g.Set(0, Tile{Density: DensityEmpty, Variant: 0})
	g.Set(1, Tile{Density: DensityEmpty, Variant: 3})
	g.Set(2, Tile{Density: DensityDense, Variant: 1})
	g.Set(3, Tile{Density: DensityNone, Variant: 0})
	m := &Map{cfg: cfg, grid: g, log: logger}

	placements, err := m.Placements()
	if len(placements) != 4 {
		t.Fatalf("placements = %d, want 4 despite lookup failures", len(placements))
	}
	var lookup *AssetLookupError
	if !errors.As(err, &lookup) {
		t.Fatalf("error = %v, want AssetLookupError", err)
	}
	if lookup.Index != 1 || lookup.Variant != 3 || lookup.PoolSize != 1 {
		t.Fatalf("unexpected lookup error %s", spew.Sdump(lookup))
	}
	if placements[0].Asset != "empty_only" || placements[2].Asset != "dense_1" {
		t.Fatalf("valid tiles resolved wrongly: %s", spew.Sdump(placements))
	}
	if placements[1].Asset != "dense_0" || placements[3].Asset != "dense_0" {
		t.Fatalf("fallback asset not substituted: %s", spew.Sdump(placements))
	}

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Fatalf("logged %d warnings, want 2", warnings)
	}
}

func TestGenerateLogsStages(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	if _, err := Generate(scenarioConfig(), pcore.NewRNG(5), WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "map generated" {
		t.Fatalf("last log entry = %v", entry)
	}
	if _, ok := entry.Data["stars"]; !ok {
		t.Fatalf("missing stars field: %v", entry.Data)
	}
	rounds := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "propagation round" {
			rounds++
		}
	}
	if rounds != 3 {
		t.Fatalf("logged %d propagation rounds, want 3", rounds)
	}
}

func TestCellsEncodeEveryTile(t *testing.T) {
	m, err := Generate(scenarioConfig(), pcore.NewRNG(6))
	if err != nil {
		t.Fatal(err)
	}
	cells := m.Cells()
	if len(cells) != 100 {
		t.Fatalf("cells = %d, want 100", len(cells))
	}
	palette := m.Palette()
	for i, c := range cells {
		if Density(c&displayDensityMask) == DensityNone {
			t.Fatalf("display cell %d has no density", i)
		}
		if int(c) >= len(palette) {
			t.Fatalf("display value %d outside palette", c)
		}
	}
}
