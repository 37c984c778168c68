//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"starfield/internal/core"
	"starfield/internal/starfield"
)

// GridPainter uploads a palette-encoded cell buffer into a single image, one
// pixel per cell. The viewer uses it for the minimap.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells and draws them scaled at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, x, y float64, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// LayerPainter draws tile and star placements as textured sprites.
type LayerPainter struct {
	atlas    *Atlas
	tileSize int
	starSize int
	images   map[TextureSpec]*ebiten.Image
}

// NewLayerPainter draws tiles tileSize pixels wide, sourcing pixels from atlas.
func NewLayerPainter(atlas *Atlas, tileSize, starSize int) *LayerPainter {
	return &LayerPainter{atlas: atlas, tileSize: tileSize, starSize: starSize, images: map[TextureSpec]*ebiten.Image{}}
}

// View maps world coordinates to screen pixels.
type View struct {
	Camera        core.Vec2
	PixelsPerUnit float64
	ScreenW       int
	ScreenH       int
}

func (v View) project(world core.Vec2, anchor core.Vec3) (float64, float64) {
	x := (world.X + anchor.X - v.Camera.X) * v.PixelsPerUnit
	y := (world.Y + anchor.Y - v.Camera.Y) * v.PixelsPerUnit
	// World y grows upwards; screen y grows downwards.
	return float64(v.ScreenW)/2 + x, float64(v.ScreenH)/2 - y
}

func (lp *LayerPainter) image(spec TextureSpec) *ebiten.Image {
	if img, ok := lp.images[spec]; ok {
		return img
	}
	img := ebiten.NewImage(spec.Size, spec.Size)
	img.WritePixels(lp.atlas.Texture(spec))
	lp.images[spec] = img
	return img
}

// DrawTiles paints every tile placement relative to the tile layer anchor.
func (lp *LayerPainter) DrawTiles(dst *ebiten.Image, tiles []starfield.TilePlacement, anchor core.Vec3, cellSize float64, view View) {
	span := cellSize * view.PixelsPerUnit
	for _, t := range tiles {
		img := lp.image(TextureSpec{Asset: t.Asset, Kind: KindTile, Density: t.Density, Size: lp.tileSize})
		x, y := view.project(t.Position.XY(), anchor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(span/float64(lp.tileSize), span/float64(lp.tileSize))
		op.GeoM.Translate(x, y-span)
		dst.DrawImage(img, op)
	}
}

// DrawStars paints every star placement relative to the star layer anchor.
func (lp *LayerPainter) DrawStars(dst *ebiten.Image, stars []starfield.StarPlacement, anchor core.Vec3, view View) {
	half := float64(lp.starSize) / 2
	for _, s := range stars {
		img := lp.image(TextureSpec{Asset: s.Asset, Kind: KindStar, Size: lp.starSize})
		x, y := view.project(s.Position.XY(), anchor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x-half, y-half)
		op.Blend = ebiten.BlendLighter
		dst.DrawImage(img, op)
	}
}

// Reset drops uploaded images, e.g. after regeneration changed the asset set.
func (lp *LayerPainter) Reset() {
	for key, img := range lp.images {
		img.Dispose()
		delete(lp.images, key)
	}
}
