package starfield

import "image/color"

const (
	displayDensityMask   = 0x03
	displayVariantShift  = 2
	displayVariantMask   = 0x1c
	displayVariantLevels = 8
)

var starfieldPalette = buildPalette()

// Palette exposes the colour palette matching the values in Cells.
func (m *Map) Palette() []color.RGBA {
	return starfieldPalette
}

// Cells returns a display buffer with one encoded value per cell, laid out
// row-major with the highest line first (screen orientation).
func (m *Map) Cells() []uint8 {
	w, h := m.grid.Span()
	display := make([]uint8, w*h)
	for i := 0; i < m.grid.Len(); i++ {
		t, ok := m.grid.Get(i)
		if !ok {
			continue
		}
		row := h - 1 - t.Y
		display[row*w+t.X] = encodeDisplayValue(t.Density, t.Variant)
	}
	return display
}

func encodeDisplayValue(d Density, variant int) uint8 {
	if variant < 0 {
		variant = 0
	}
	value := uint8(d) & displayDensityMask
	value |= uint8(variant%displayVariantLevels<<displayVariantShift) & displayVariantMask
	return value
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		d := Density(i & displayDensityMask)
		variant := (i & displayVariantMask) >> displayVariantShift
		palette[i] = densityColor(d, variant)
	}
	return palette
}

func densityColor(d Density, variant int) color.RGBA {
	lift := uint8(variant * 4)
	switch d {
	case DensityDense:
		return color.RGBA{R: 150 + lift, G: 150 + lift, B: 210, A: 255}
	case DensitySparse:
		return color.RGBA{R: 70 + lift, G: 80 + lift, B: 140, A: 255}
	case DensityEmpty:
		return color.RGBA{R: 12 + lift, G: 14 + lift, B: 40, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
