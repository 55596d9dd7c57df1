package snake

import (
	"strconv"

	"wrapsnake/internal/core"
)

// Game is the authoritative snake simulation on a toroidal grid. It owns one
// snake and one food cell and advances exactly one move per Step. All methods
// assume a single control goroutine.
type Game struct {
	grid core.Grid
	rng  *core.RNG

	body       []core.Cell // head first
	length     int         // target body size; len(body) converges up to it
	dir        core.Direction
	pending    core.Direction
	hasPending bool
	food       core.Cell

	cells []uint8
}

// New returns a snake game on a w by h grid, seeded with 0. Callers normally
// Reset with their own seed before use.
func New(w, h int) *Game {
	g := &Game{grid: core.NewGrid(w, h)}
	g.cells = make([]uint8, g.grid.Area())
	g.Reset(0)
	return g
}

// Name identifies the game.
func (g *Game) Name() string { return "snake" }

// Size returns the grid dimensions.
func (g *Game) Size() core.Size { return core.Size{W: g.grid.W, H: g.grid.H} }

// Reset reseeds the RNG and restores the initial state: a single segment at
// the center heading right, food placed off the body.
func (g *Game) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.restart()
	g.placeFood()
	g.refreshCells()
}

// restart puts the snake back to its spawn state. The RNG is left alone so
// an in-game reset does not replay the same food sequence.
func (g *Game) restart() {
	g.body = append(g.body[:0], g.grid.Center())
	g.length = 1
	g.dir = core.Right
	g.hasPending = false
}

// Steer records d as the direction for the next tick. A request that exactly
// reverses the current direction is dropped, so the snake can never fold back
// onto its own neck. Repeated calls between ticks overwrite each other.
func (g *Game) Steer(d core.Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.pending = d
	g.hasPending = true
}

// Step advances the game by one tick: apply the pending direction, move the
// head with wraparound, and trim the tail to the target length. Eating bumps
// the target length before the trim, so the meal tick keeps the old tail.
// Growth runs before the self-collision check so a bite and a meal on the
// same cell count as a meal.
func (g *Game) Step() {
	if g.hasPending {
		g.dir = g.pending
		g.hasPending = false
	}

	head := g.grid.Move(g.body[0], g.dir)
	g.body = append(g.body, core.Cell{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	ate := head == g.food
	if ate {
		g.length++
	}
	if len(g.body) > g.length {
		g.body = g.body[:len(g.body)-1]
	}
	if ate {
		g.placeFood()
	}

	if g.bitten() {
		g.restart()
		g.placeFood()
	}

	g.refreshCells()
}

// bitten reports whether the head overlaps any other segment.
func (g *Game) bitten() bool {
	for _, c := range g.body[1:] {
		if c == g.body[0] {
			return true
		}
	}
	return false
}

// placeFood picks a uniformly random cell not covered by the body. When the
// body covers the whole grid there is no valid target and the food parks at
// the origin cell.
func (g *Game) placeFood() {
	occupied := make(map[core.Cell]bool, len(g.body))
	for _, c := range g.body {
		occupied[c] = true
	}

	free := make([]core.Cell, 0, g.grid.Area()-len(occupied))
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		g.food = core.Cell{}
		return
	}
	g.food = free[g.rng.IntN(len(free))]
}

// refreshCells rebuilds the render buffer. Food is written first so the body
// wins the cell in the degenerate grid-full case.
func (g *Game) refreshCells() {
	for i := range g.cells {
		g.cells[i] = core.ClassEmpty
	}
	g.cells[g.grid.Index(g.food)] = core.ClassFood
	for _, c := range g.body[1:] {
		g.cells[g.grid.Index(c)] = core.ClassBody
	}
	g.cells[g.grid.Index(g.body[0])] = core.ClassHead
}

// Cells exposes the current cell-class buffer for renderers.
func (g *Game) Cells() []uint8 { return g.cells }

// Head returns the head cell.
func (g *Game) Head() core.Cell { return g.body[0] }

// Body returns a copy of the body cells, head first.
func (g *Game) Body() []core.Cell {
	out := make([]core.Cell, len(g.body))
	copy(out, g.body)
	return out
}

// Food returns the current food cell.
func (g *Game) Food() core.Cell { return g.food }

// Length returns the target body length, i.e. the score.
func (g *Game) Length() int { return g.length }

// Dir returns the direction the snake will move on the next tick absent a
// pending request.
func (g *Game) Dir() core.Direction { return g.dir }

// Grid returns the underlying toroidal grid.
func (g *Game) Grid() core.Grid { return g.grid }

// Status reports the HUD lines.
func (g *Game) Status() []core.Status {
	return []core.Status{
		{Label: "length", Value: strconv.Itoa(g.length)},
		{Label: "grid", Value: strconv.Itoa(g.grid.W) + "x" + strconv.Itoa(g.grid.H)},
	}
}

func init() {
	core.Register("snake", func(cfg map[string]string) core.Game {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
