package core

// Cell identifies one grid square. X grows rightward, Y grows downward.
type Cell struct {
	X, Y int
}

// Grid defines a toroidal coordinate space of W by H cells. Moving off any
// edge wraps around to the opposite edge.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Wrap offsets c by (dx, dy) with toroidal wrapping. The result is in range
// for any integer offsets, negative included.
func (g Grid) Wrap(c Cell, dx, dy int) Cell {
	return Cell{
		X: ((c.X+dx)%g.W + g.W) % g.W,
		Y: ((c.Y+dy)%g.H + g.H) % g.H,
	}
}

// Move returns the cell one step from c in direction d.
func (g Grid) Move(c Cell, d Direction) Cell {
	return g.Wrap(c, d.DX, d.DY)
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// Index returns the linear row-major index for c.
func (g Grid) Index(c Cell) int { return c.Y*g.W + c.X }

// Area returns the total number of cells.
func (g Grid) Area() int { return g.W * g.H }

// Contains reports whether c lies inside the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Dist returns the wrapped Manhattan distance between a and b, i.e. the
// minimal number of unit steps between them on the torus.
func (g Grid) Dist(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	if g.W-dx < dx {
		dx = g.W - dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if g.H-dy < dy {
		dy = g.H - dy
	}
	return dx + dy
}
