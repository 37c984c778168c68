package starfield

import (
	"strings"
	"testing"

	"starfield/internal/core"
)

func TestSceneResetUsesConfiguredSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 77
	s := NewScene(cfg, nil)
	if s.Map() != nil || s.Cells() != nil {
		t.Fatal("scene should be empty before Reset")
	}
	if err := s.Reset(0); err != nil {
		t.Fatal(err)
	}
	if s.Seed() != 77 {
		t.Fatalf("seed = %d, want 77", s.Seed())
	}
	first := s.Map().ASCII()

	if err := s.Reset(78); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(77); err != nil {
		t.Fatal(err)
	}
	if s.Map().ASCII() != first {
		t.Fatal("reset with the same seed should reproduce the map")
	}
	if got := s.Size(); got != (core.Size{W: 10, H: 10}) {
		t.Fatalf("size = %+v", got)
	}
	var _ core.Scene = s
}

func TestSceneParameterSetters(t *testing.T) {
	s := NewScene(DefaultConfig(), nil)
	if err := s.Reset(5); err != nil {
		t.Fatal(err)
	}

	if !s.SetIntParameter("neighbour_iterations", 0) {
		t.Fatal("expected iterations to be adjustable")
	}
	if got := s.Map().Config().NeighbourIterations; got != 0 {
		t.Fatalf("map not regenerated, iterations = %d", got)
	}
	if len(s.Map().Rounds()) != 0 {
		t.Fatal("zero iterations should run no rounds")
	}

	if s.SetIntParameter("dense_tile_chance", 1000) {
		t.Fatal("a dense chance that cannot fit the grid must be rejected")
	}
	if s.Config().DenseTileChance != 33 {
		t.Fatalf("rejected change leaked into config: %d", s.Config().DenseTileChance)
	}
	if s.SetIntParameter("unknown", 1) || s.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	if !s.SetFloatParameter("star_scroll_rate", 0.45) || s.Config().StarScrollRate != 0.45 {
		t.Fatal("star scroll rate not applied")
	}

	snap := s.Parameters()
	if p, ok := snap.Lookup("seed"); !ok || p.Value != "5" {
		t.Fatalf("seed parameter = %+v", p)
	}
	if p, ok := snap.Lookup("dense_tiles"); !ok || p.Type != core.ParamTypeList || !strings.Contains(p.Value, "dense_0") {
		t.Fatalf("dense pool parameter = %+v", p)
	}
	for _, ctrl := range s.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no snapshot value", ctrl.Key)
		}
	}
}
