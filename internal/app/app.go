//go:build ebiten

package app

import (
	"time"

	"wrapsnake/internal/audio"
	"wrapsnake/internal/core"
	"wrapsnake/internal/render"
	"wrapsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core game to the ebiten.Game interface. The host sets the
// tick rate with ebiten.SetTPS, so one un-paused Update equals one game tick.
type Game struct {
	game    core.Game
	steer   core.Steerable // nil for self-driving games
	painter *render.GridPainter
	hud     *ui.HUD
	sounds  *audio.Player

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	lastLen  int
}

var steerKeys = []struct {
	key ebiten.Key
	dir core.Direction
}{
	{ebiten.KeyArrowUp, core.Up},
	{ebiten.KeyArrowDown, core.Down},
	{ebiten.KeyArrowLeft, core.Left},
	{ebiten.KeyArrowRight, core.Right},
}

// New constructs an adapter for the provided game.
func New(game core.Game, scale int, seed int64, sounds *audio.Player) *Game {
	size := game.Size()
	g := &Game{
		game:    game,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(game),
		sounds:  sounds,
		scale:   scale,
		seed:    seed,
	}
	if s, ok := game.(core.Steerable); ok {
		g.steer = s
	}
	g.lastLen = lengthOf(game)
	return g
}

// Reset reinitializes the game state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.game.Reset(seed)
	g.lastLen = lengthOf(g.game)
	g.tickOnce = false
}

// Update handles per-frame input and advances the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.steer != nil {
		// Forward every press; the game keeps the last one per tick.
		for _, b := range steerKeys {
			if inpututil.IsKeyJustPressed(b.key) {
				g.steer.Steer(b.dir)
			}
		}
	}

	if !g.paused || g.tickOnce {
		g.game.Step()
		g.tickOnce = false
		g.playCues()
	}
	return nil
}

// playCues fires the eat or crash cue when the reported length moved.
func (g *Game) playCues() {
	l := lengthOf(g.game)
	switch {
	case l > g.lastLen:
		g.sounds.Eat()
	case l < g.lastLen:
		g.sounds.Crash()
	}
	g.lastLen = l
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.game.Cells(), render.DefaultPalette, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.game.Size()
	return s.W * g.scale, s.H * g.scale
}

func lengthOf(game core.Game) int {
	if l, ok := game.(interface{ Length() int }); ok {
		return l.Length()
	}
	return 0
}
