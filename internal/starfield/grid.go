package starfield

// Grid is a fixed Columns x Rows cell container addressed by linear index.
//
// The index stride is the row count: index = x + y*Rows. Coordinates are
// decomposed with the same stride so that a stored tile's X/Y always map back
// to its index. On square grids this is the usual row-major layout.
type Grid struct {
	columns, rows int
	cells         []Tile
	occupied      []bool
	count         int
}

// NewGrid allocates an empty grid. Both dimensions must be positive.
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 {
		return nil, configErrorf("columns", "must be positive, got %d", columns)
	}
	if rows <= 0 {
		return nil, configErrorf("rows", "must be positive, got %d", rows)
	}
	total := columns * rows
	return &Grid{
		columns:  columns,
		rows:     rows,
		cells:    make([]Tile, total),
		occupied: make([]bool, total),
	}, nil
}

// Columns returns the configured column count.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the configured row count.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return g.count }

// Free returns the number of unoccupied cells.
func (g *Grid) Free() int { return len(g.cells) - g.count }

// Span returns the layout implied by the index stride: Rows cells per line,
// Columns lines.
func (g *Grid) Span() (w, h int) { return g.rows, g.columns }

// Index returns the linear index for (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.rows }

// Coords decomposes a linear index into (x, y).
func (g *Grid) Coords(i int) (x, y int) { return i % g.rows, i / g.rows }

// InRange reports whether i addresses a cell.
func (g *Grid) InRange(i int) bool { return i >= 0 && i < len(g.cells) }

// Contains reports whether i addresses an occupied cell.
func (g *Grid) Contains(i int) bool { return g.InRange(i) && g.occupied[i] }

// Get returns the tile stored at i. The pointer aliases grid storage so callers
// may adjust the tile in place.
func (g *Grid) Get(i int) (*Tile, bool) {
	if !g.Contains(i) {
		return nil, false
	}
	return &g.cells[i], true
}

// Set stores t at i, overwriting any existing tile. The tile's coordinates are
// rewritten to match i.
func (g *Grid) Set(i int, t Tile) {
	if !g.InRange(i) {
		return
	}
	t.X, t.Y = g.Coords(i)
	g.cells[i] = t
	if !g.occupied[i] {
		g.occupied[i] = true
		g.count++
	}
}

// Neighbors returns the left, right, bottom and top neighbours of i, in that
// order. Each direction is gated on the source cell's own x/y against
// Columns/Rows; the computed target is not re-checked except for existing in
// the grid at all.
func (g *Grid) Neighbors(i int) []int {
	if !g.InRange(i) {
		return nil
	}
	x, y := g.Coords(i)
	out := make([]int, 0, 4)
	add := func(n int) {
		if g.InRange(n) {
			out = append(out, n)
		}
	}
	if x > 0 {
		add(i - 1)
	}
	if x < g.columns-1 {
		add(i + 1)
	}
	if y > 0 {
		add(i - g.rows)
	}
	if y < g.rows-1 {
		add(i + g.rows)
	}
	return out
}
