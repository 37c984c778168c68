package starfield

import "strings"

// Glyph returns the character used for a density in text renderings.
func Glyph(d Density) rune {
	switch d {
	case DensityEmpty:
		return '.'
	case DensitySparse:
		return ':'
	case DensityDense:
		return '#'
	default:
		return ' '
	}
}

// ASCII renders the grid one glyph per cell, highest line first so the output
// matches world-space orientation.
func (m *Map) ASCII() string {
	w, h := m.grid.Span()
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			d := DensityNone
			if t, ok := m.grid.Get(m.grid.Index(x, y)); ok {
				d = t.Density
			}
			b.WriteRune(Glyph(d))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
