package termview

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"starfield/internal/core"
	"starfield/internal/starfield"
	pcore "starfield/pkg/core"
)

func generate(t *testing.T, stars int) *starfield.Map {
	t.Helper()
	cfg := starfield.DefaultConfig()
	cfg.MaxStarsToSpawn = stars
	m, err := starfield.Generate(cfg, pcore.NewRNG(21))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

func TestComposeDrawsEveryTile(t *testing.T) {
	m := generate(t, 0)
	f := Compose(m, core.Vec2{}, core.Vec3{}, core.Vec3{}, 40, 20)
	stats := m.Stats()
	for _, d := range []starfield.Density{starfield.DensityDense, starfield.DensitySparse, starfield.DensityEmpty} {
		if got := f.Count(starfield.Glyph(d)); got != stats.ByDensity[d] {
			t.Fatalf("%s glyphs = %d, want %d\n%s", d, got, stats.ByDensity[d], f)
		}
	}
	if f.Count(StarGlyph) != 0 {
		t.Fatal("no stars were spawned")
	}
}

func TestComposeStarsShowThroughEmptyTiles(t *testing.T) {
	m := generate(t, 40)
	f := Compose(m, core.Vec2{}, core.Vec3{}, core.Vec3{}, 60, 30)
	stats := m.Stats()
	if got := f.Count(starfield.Glyph(starfield.DensityDense)); got != stats.ByDensity[starfield.DensityDense] {
		t.Fatalf("stars must not hide dense tiles: %d != %d", got, stats.ByDensity[starfield.DensityDense])
	}
	if n := f.Count(StarGlyph); n == 0 || n > stats.Stars {
		t.Fatalf("star glyphs = %d, stars = %d", n, stats.Stars)
	}
}

func TestComposePinnedLayerShiftsAgainstCamera(t *testing.T) {
	m := generate(t, 0)
	unit := m.Config().ScaleFactor
	before := Compose(m, core.Vec2{}, core.Vec3{}, core.Vec3{}, 40, 20)
	after := Compose(m, core.Vec2{X: unit}, core.Vec3{}, core.Vec3{}, 40, 20)
	for y := 0; y < before.H; y++ {
		for x := 0; x < before.W; x++ {
			if after.At(x, y) != before.At(x+1, y) {
				t.Fatalf("cell (%d,%d): got %q want %q\nbefore:\n%s\nafter:\n%s", x, y, after.At(x, y), before.At(x+1, y), before, after)
			}
		}
	}
}

func TestComposeLayerFollowingCameraStaysPut(t *testing.T) {
	m := generate(t, 20)
	cam := core.Vec2{X: 3 * m.Config().ScaleFactor, Y: -2 * m.Config().ScaleFactor}
	still := Compose(m, core.Vec2{}, core.Vec3{}, core.Vec3{}, 50, 30)
	moved := Compose(m, cam, cam.XYZ(10), cam.XYZ(5), 50, 30)
	if still.String() != moved.String() {
		t.Fatalf("layers anchored to the camera moved:\n%s\n%s", still, moved)
	}
}

func TestComposeNilMapIsBlank(t *testing.T) {
	f := Compose(nil, core.Vec2{}, core.Vec3{}, core.Vec3{}, 4, 2)
	if f.String() != "    \n    \n" {
		t.Fatalf("blank frame = %q", f.String())
	}
	if f.At(-1, 0) != ' ' || f.Line(5) != "" {
		t.Fatal("out of range lookups should be blank")
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newViewer(t *testing.T, screen tcell.Screen) *Viewer {
	t.Helper()
	cfg := starfield.DefaultConfig()
	cfg.MaxStarsToSpawn = 0
	scene := starfield.NewScene(cfg, nil)
	if err := scene.Reset(9); err != nil {
		t.Fatal(err)
	}
	return New(screen, scene, 60, nil)
}

func TestViewerDrawMatchesCompose(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	v := newViewer(t, screen)
	v.Tick()
	v.Draw()

	want := Compose(v.scene.Map(), v.camera, v.tileAnchor, v.starAnchor, 40, 20)
	for y := 0; y < want.H; y++ {
		var b strings.Builder
		for x := 0; x < want.W; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		if b.String() != want.Line(y) {
			t.Fatalf("row %d = %q, want %q", y, b.String(), want.Line(y))
		}
	}
	var status strings.Builder
	for x := 0; x < 8; x++ {
		r, _, _, _ := screen.GetContent(x, 20)
		status.WriteRune(r)
	}
	if status.String() != " seed 9 " {
		t.Fatalf("status row = %q", status.String())
	}
}

func TestViewerKeysMoveCameraAndScrollLayers(t *testing.T) {
	v := newViewer(t, newSimScreen(t, 40, 21))
	unit := v.scene.Config().ScaleFactor

	if v.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Fatal("arrow key should not quit")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	v.Tick()
	if v.Camera() != (core.Vec2{X: unit, Y: unit}) {
		t.Fatalf("camera = %+v", v.Camera())
	}
	cfg := v.scene.Config()
	if v.tileAnchor.X != unit*cfg.TileScrollRate || v.starAnchor.Y != unit*cfg.StarScrollRate {
		t.Fatalf("anchors = %+v %+v", v.tileAnchor, v.starAnchor)
	}
	if v.tileAnchor.Z != 10 || v.starAnchor.Z != 5 {
		t.Fatal("scrolling must keep layer depth")
	}

	v.Tick()
	if v.Camera() != (core.Vec2{X: unit, Y: unit}) {
		t.Fatal("camera should only move on input")
	}

	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone))
	if v.Camera() != (core.Vec2{}) {
		t.Fatal("0 should recentre the camera")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestViewerRegenerateKeys(t *testing.T) {
	v := newViewer(t, newSimScreen(t, 40, 21))
	first := v.scene.Map().ASCII()
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.scene.Seed() != 9 || v.scene.Map().ASCII() != first {
		t.Fatal("r should regenerate the same map")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if v.scene.Seed() == 9 {
		t.Fatal("n should pick a new seed")
	}
}

func TestViewerRunStopsOnQuit(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	v := newViewer(t, screen)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
