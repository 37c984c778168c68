//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"starfield/internal/core"
	"starfield/internal/render"
	"starfield/internal/scroll"
	"starfield/internal/starfield"
	"starfield/internal/ui"
)

const (
	screenW    = 960
	screenH    = 640
	hudWidth   = 260
	minimapPx  = 4
	tileTexels = 64
	starTexels = 5
)

// Game adapts a starfield scene to the ebiten.Game interface. It plays the
// host role: it owns the camera, instantiates placements, and repositions the
// two parallax layers every frame.
type Game struct {
	scene   *starfield.Scene
	layers  *render.LayerPainter
	minimap *render.GridPainter
	hud     *ui.HUD
	scroll  *scroll.Controller
	camera  Camera
	log     logrus.FieldLogger

	tiles []starfield.TilePlacement
	stars []starfield.StarPlacement

	tileAnchor core.Vec3
	starAnchor core.Vec3

	scale   float64
	tps     int
	showHUD bool
	notice  string
}

// New constructs a Game for a scene that has already been Reset.
func New(scene *starfield.Scene, atlas *render.Atlas, cfg *Config, log logrus.FieldLogger) *Game {
	sc := scene.Config()
	g := &Game{
		scene:      scene,
		layers:     render.NewLayerPainter(atlas, tileTexels, starTexels),
		hud:        ui.NewHUD(scene, hudWidth),
		scroll:     scroll.New(sc.TileScrollRate, sc.StarScrollRate),
		camera:     Camera{Speed: cfg.CameraSpeed},
		log:        log,
		scale:      float64(cfg.Scale),
		tps:        cfg.TPS,
		showHUD:    true,
		tileAnchor: core.Vec3{Z: 10},
		starAnchor: core.Vec3{Z: 5},
	}
	g.instantiate()
	return g
}

// instantiate resolves the current map into placements, the one-shot consumer
// step after generation.
func (g *Game) instantiate() {
	m := g.scene.Map()
	if m == nil {
		return
	}
	tiles, err := m.Placements()
	if err != nil {
		g.log.WithError(err).Warn("some tiles fell back to the default asset")
	}
	g.tiles = tiles
	g.stars = m.StarPlacements()
	w, h := m.Grid().Span()
	g.minimap = render.NewGridPainter(w, h)
	g.layers.Reset()
	g.notice = ""
	g.hud.SetStatus(fmt.Sprintf("seed %d", g.scene.Seed()), m.Stats().String())
}

// Reset regenerates the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.scene.Reset(seed); err != nil {
		g.log.WithError(err).Error("regeneration failed")
		return
	}
	g.instantiate()
}

// Update handles per-frame input, camera motion and layer scrolling.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.scene.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyMap()
	}

	if g.showHUD && g.hud.Update(screenW-g.hud.Width()) {
		g.instantiate()
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy--
	}
	g.camera.Move(dx, dy, 1/float64(g.tps))

	cfg := g.scene.Config()
	g.scroll.TileRate = cfg.TileScrollRate
	g.scroll.StarRate = cfg.StarScrollRate
	g.tileAnchor, g.starAnchor = g.scroll.Advance(g.camera.Position, g.tileAnchor, g.starAnchor)
	return nil
}

func (g *Game) copyMap() {
	m := g.scene.Map()
	if m == nil {
		return
	}
	text := fmt.Sprintf("seed %d\n%s", g.scene.Seed(), m.ASCII())
	if err := clipboard.WriteAll(text); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
		g.notice = "clipboard unavailable"
		return
	}
	g.notice = "map copied"
}

// Draw renders the layers back to front, then the minimap and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	view := render.View{Camera: g.camera.Position, PixelsPerUnit: g.scale, ScreenW: screenW, ScreenH: screenH}
	cfg := g.scene.Config()
	g.layers.DrawTiles(screen, g.tiles, g.tileAnchor, cfg.ScaleFactor, view)
	g.layers.DrawStars(screen, g.stars, g.starAnchor, view)

	if m := g.scene.Map(); m != nil && g.minimap != nil {
		g.minimap.Blit(screen, m.Cells(), m.Palette(), 8, 8, minimapPx)
	}
	if g.showHUD {
		if g.notice != "" {
			g.hud.SetStatus(fmt.Sprintf("seed %d", g.scene.Seed()), g.notice)
		}
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
