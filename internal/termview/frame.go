package termview

import (
	"math"
	"strings"

	"starfield/internal/core"
	"starfield/internal/starfield"
)

// StarGlyph marks a star in text frames.
const StarGlyph = '+'

// Frame is a rendered block of terminal cells, top row first.
type Frame struct {
	W, H  int
	cells []rune
}

func newFrame(w, h int) Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := Frame{W: w, H: h, cells: make([]rune, w*h)}
	for i := range f.cells {
		f.cells[i] = ' '
	}
	return f
}

// At returns the rune at column x of row y, or a space outside the frame.
func (f Frame) At(x, y int) rune {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return ' '
	}
	return f.cells[y*f.W+x]
}

func (f Frame) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	f.cells[y*f.W+x] = r
}

// Line returns row y as a string.
func (f Frame) Line(y int) string {
	if y < 0 || y >= f.H {
		return ""
	}
	return string(f.cells[y*f.W : (y+1)*f.W])
}

// Count returns how many cells hold r.
func (f Frame) Count(r rune) int {
	n := 0
	for _, c := range f.cells {
		if c == r {
			n++
		}
	}
	return n
}

func (f Frame) String() string {
	var b strings.Builder
	for y := 0; y < f.H; y++ {
		b.WriteString(f.Line(y))
		b.WriteByte('\n')
	}
	return b.String()
}

// Compose projects a map into a w x h frame. One terminal cell spans one tile
// edge in world units. Positions are placed relative to their layer anchor and
// the camera, with the camera at the frame centre. Stars show through empty
// and unassigned tiles.
func Compose(m *starfield.Map, camera core.Vec2, tileAnchor, starAnchor core.Vec3, w, h int) Frame {
	f := newFrame(w, h)
	if m == nil {
		return f
	}
	unit := m.Config().ScaleFactor
	project := func(p core.Vec2, anchor core.Vec3, round func(float64) float64) (int, int) {
		x := round((p.X + anchor.X - camera.X) / unit)
		y := round((p.Y + anchor.Y - camera.Y) / unit)
		return w/2 + int(x), h/2 - 1 - int(y)
	}

	for _, s := range m.StarPlacements() {
		x, y := project(s.Position.XY(), starAnchor, math.Floor)
		f.set(x, y, StarGlyph)
	}

	g := m.Grid()
	for i := 0; i < g.Len(); i++ {
		t, ok := g.Get(i)
		if !ok {
			continue
		}
		x, y := project(m.Config().TilePosition(t.X, t.Y), tileAnchor, math.Round)
		switch glyph := starfield.Glyph(t.Density); glyph {
		case ' ':
		case '.':
			if f.At(x, y) == ' ' {
				f.set(x, y, glyph)
			}
		default:
			f.set(x, y, glyph)
		}
	}
	return f
}
