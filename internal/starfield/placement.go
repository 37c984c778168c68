package starfield

import (
	"errors"

	"github.com/sirupsen/logrus"

	"starfield/internal/core"
)

// TilePlacement is what the scene host needs to instantiate one tile.
type TilePlacement struct {
	Index    int
	Density  Density
	Variant  int
	Asset    string
	Position core.Vec3
}

// StarPlacement is what the scene host needs to instantiate one star.
type StarPlacement struct {
	Asset    string
	Position core.Vec3
}

// Placements resolves every tile to an asset and world position, ascending by
// index. Variants that fall outside their pool are logged and replaced with the
// first dense asset; the returned error joins those lookups but the placements
// are always complete.
func (m *Map) Placements() ([]TilePlacement, error) {
	out := make([]TilePlacement, 0, m.grid.Count())
	var errs []error
	for i := 0; i < m.grid.Len(); i++ {
		t, ok := m.grid.Get(i)
		if !ok {
			continue
		}
		asset, err := m.resolveAsset(i, t)
		if err != nil {
			errs = append(errs, err)
		}
		out = append(out, TilePlacement{
			Index:    i,
			Density:  t.Density,
			Variant:  t.Variant,
			Asset:    asset,
			Position: m.cfg.TilePosition(t.X, t.Y).XYZ(0),
		})
	}
	return out, errors.Join(errs...)
}

func (m *Map) resolveAsset(i int, t *Tile) (string, error) {
	pool := m.cfg.Pools.forDensity(t.Density)
	if t.Variant >= 0 && t.Variant < len(pool) {
		return pool[t.Variant], nil
	}
	err := &AssetLookupError{Index: i, Density: t.Density, Variant: t.Variant, PoolSize: len(pool)}
	fallback := m.cfg.Pools.Dense[0]
	m.log.WithFields(logrus.Fields{
		"index":    i,
		"density":  t.Density.String(),
		"variant":  t.Variant,
		"fallback": fallback,
	}).Warn("tile variant has no asset")
	return fallback, err
}

// StarPlacements resolves every decoration star to its asset name.
func (m *Map) StarPlacements() []StarPlacement {
	out := make([]StarPlacement, 0, len(m.stars))
	for _, s := range m.stars {
		out = append(out, StarPlacement{
			Asset:    m.cfg.Pools.Stars[s.Asset],
			Position: s.Position.XYZ(0),
		})
	}
	return out
}
