// Package autopilot wraps the snake game with a greedy self-steering pilot.
// It is the attract mode: same rules, no player input.
package autopilot

import (
	"wrapsnake/internal/core"
	"wrapsnake/internal/game/snake"
)

// Pilot drives a snake game toward the food with a one-step greedy
// lookahead. It implements core.Game but deliberately not core.Steerable;
// the pilot owns the wheel.
type Pilot struct {
	inner *snake.Game
}

// New returns a pilot around a fresh snake game on a w by h grid.
func New(w, h int) *Pilot {
	return &Pilot{inner: snake.New(w, h)}
}

// Name identifies the game.
func (p *Pilot) Name() string { return "autopilot" }

// Size returns the grid dimensions.
func (p *Pilot) Size() core.Size { return p.inner.Size() }

// Reset reseeds and restarts the wrapped game.
func (p *Pilot) Reset(seed int64) { p.inner.Reset(seed) }

// Cells exposes the wrapped game's render buffer.
func (p *Pilot) Cells() []uint8 { return p.inner.Cells() }

// Length returns the wrapped snake's target length.
func (p *Pilot) Length() int { return p.inner.Length() }

// Status reports the wrapped game's HUD lines plus the pilot marker.
func (p *Pilot) Status() []core.Status {
	return append(p.inner.Status(), core.Status{Label: "pilot", Value: "auto"})
}

// Step picks a direction, steers, and advances the wrapped game one tick.
func (p *Pilot) Step() {
	if d, ok := p.choose(); ok {
		p.inner.Steer(d)
	}
	p.inner.Step()
}

// choose returns the legal direction whose next cell is free and closest to
// the food on the torus. The tail cell counts as free when it will be
// vacated this tick. Reports false when every move is blocked; the snake
// then rides its current heading into the reset.
func (p *Pilot) choose() (core.Direction, bool) {
	grid := p.inner.Grid()
	head := p.inner.Head()
	food := p.inner.Food()
	cur := p.inner.Dir()
	body := p.inner.Body()

	blocked := make(map[core.Cell]bool, len(body))
	for _, c := range body {
		blocked[c] = true
	}
	tail := body[len(body)-1]
	tailVacates := len(body) == p.inner.Length()

	var best core.Direction
	bestDist := -1
	for _, d := range []core.Direction{core.Up, core.Down, core.Left, core.Right} {
		if d == cur.Opposite() {
			continue
		}
		next := grid.Move(head, d)
		if blocked[next] && !(next == tail && next != food && tailVacates) {
			continue
		}
		dist := grid.Dist(next, food)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if bestDist < 0 {
		return core.Direction{}, false
	}
	return best, true
}

func init() {
	core.Register("autopilot", func(cfg map[string]string) core.Game {
		c := snake.FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
