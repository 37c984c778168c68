package render

import (
	"hash/fnv"
	"math"

	"github.com/aquilax/go-perlin"

	"starfield/internal/starfield"
)

// TextureKind selects how a texture is synthesised.
type TextureKind uint8

const (
	// KindTile is a square background tile: nebula noise plus embedded stars.
	KindTile TextureKind = iota
	// KindStar is a single soft point star on a transparent background.
	KindStar
)

// TextureSpec identifies a synthesised texture.
type TextureSpec struct {
	Asset   string
	Kind    TextureKind
	Density starfield.Density
	Size    int
}

func (s TextureSpec) seed() int64 {
	h := fnv.New64a()
	h.Write([]byte(s.Asset))
	return int64(h.Sum64())
}

// Synthesize renders spec into an RGBA buffer of Size*Size pixels. The output
// depends only on the spec, so every asset name gets a stable look.
func Synthesize(spec TextureSpec) []byte {
	size := spec.Size
	if size <= 0 {
		size = 1
	}
	buf := make([]byte, 4*size*size)
	switch spec.Kind {
	case KindStar:
		paintStar(buf, size, spec.seed())
	default:
		paintTile(buf, size, spec.Density, spec.seed())
	}
	return buf
}

// tileLook holds per-density nebula strength and embedded star count.
var tileLook = map[starfield.Density]struct {
	haze  float64
	stars int
}{
	starfield.DensityEmpty:  {haze: 0.08, stars: 2},
	starfield.DensitySparse: {haze: 0.25, stars: 8},
	starfield.DensityDense:  {haze: 0.55, stars: 24},
}

func paintTile(buf []byte, size int, d starfield.Density, seed int64) {
	look := tileLook[d]
	noise := perlin.NewPerlin(2, 2, 3, seed)
	tint := [3]float64{40, 50, 110}
	if seed&1 == 1 {
		tint = [3]float64{90, 40, 110}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := noise.Noise2D(float64(x)/float64(size)*3, float64(y)/float64(size)*3)
			v := clamp01((n+1)/2) * look.haze
			base := (y*size + x) * 4
			buf[base+0] = uint8(6 + tint[0]*v)
			buf[base+1] = uint8(8 + tint[1]*v)
			buf[base+2] = uint8(18 + tint[2]*v)
			buf[base+3] = 255
		}
	}
	// Embedded stars are placed from the same seed so the pattern is stable.
	state := uint64(seed)
	for i := 0; i < look.stars; i++ {
		state = state*6364136223846793005 + 1442695040888963407
		x := int(state>>33) % size
		y := int(state>>13) % size
		bright := uint8(140 + (state>>5)%116)
		base := (y*size + x) * 4
		buf[base+0] = bright
		buf[base+1] = bright
		buf[base+2] = bright
	}
}

func paintStar(buf []byte, size int, seed int64) {
	c := float64(size-1) / 2
	radius := math.Max(c, 0.5)
	hue := [3]uint8{255, 255, 255}
	switch seed % 3 {
	case 1:
		hue = [3]uint8{180, 200, 255}
	case 2:
		hue = [3]uint8{255, 230, 170}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / radius
			a := clamp01(1 - d*d)
			base := (y*size + x) * 4
			buf[base+0] = hue[0]
			buf[base+1] = hue[1]
			buf[base+2] = hue[2]
			buf[base+3] = uint8(255 * a)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
