package starfield

import (
	"strconv"
	"strings"

	"starfield/internal/core"
)

// Parameters returns the scene's settings grouped for display.
func (s *Scene) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("columns", "Columns", cfg.Columns),
				intParam("rows", "Rows", cfg.Rows),
				floatParam("scale_factor", "Scale factor", cfg.ScaleFactor),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("neighbour_iterations", "Neighbour iterations", cfg.NeighbourIterations),
				intParam("dense_tile_chance", "Dense chance", cfg.DenseTileChance),
				intParam("sparse_tile_chance", "Sparse chance", cfg.SparseTileChance),
				intParam("empty_tile_chance", "Empty chance", cfg.EmptyTileChance),
				intParam("max_stars_to_spawn", "Max stars", cfg.MaxStarsToSpawn),
			},
		},
		{
			Name: "Assets",
			Params: []core.Parameter{
				listParam("dense_tiles", "Dense tiles", cfg.Pools.Dense),
				listParam("sparse_tiles", "Sparse tiles", cfg.Pools.Sparse),
				listParam("empty_tiles", "Empty tiles", cfg.Pools.Empty),
				listParam("star_assets", "Stars", cfg.Pools.Stars),
			},
		},
		{
			Name: "Parallax",
			Params: []core.Parameter{
				floatParam("tile_scroll_rate", "Tile scroll rate", cfg.TileScrollRate),
				floatParam("star_scroll_rate", "Star scroll rate", cfg.StarScrollRate),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func listParam(key, label string, values []string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeList,
		Value: strings.Join(values, ","),
	}
}
