// Package term renders a core game on a tcell screen. Each grid cell is two
// terminal columns wide so the board stays roughly square.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"wrapsnake/internal/audio"
	"wrapsnake/internal/core"
)

const frameRate = 60

// UI owns the tcell screen, forwards key events to the game, and advances
// it at a fixed tick rate below the frame rate.
type UI struct {
	screen  tcell.Screen
	game    core.Game
	steer   core.Steerable // nil for self-driving games
	ticker  *core.FixedStep
	sounds  *audio.Player
	lastLen int
}

// New initializes a terminal screen for the provided game.
func New(game core.Game, tps int, sounds *audio.Player) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	u := &UI{
		screen: screen,
		game:   game,
		ticker: core.NewFixedStep(tps),
		sounds: sounds,
	}
	if s, ok := game.(core.Steerable); ok {
		u.steer = s
	}
	u.lastLen = lengthOf(game)
	return u, nil
}

// Run drives the event and tick loop until the player quits.
func (u *UI) Run() error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if u.handle(ev) {
				return nil
			}
		case <-frame.C:
			if u.ticker.ShouldStep() {
				u.game.Step()
				u.cues()
			}
			u.draw()
		}
	}
}

// handle processes one event and reports whether the player quit.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			u.steerTo(core.Up)
		case tcell.KeyDown:
			u.steerTo(core.Down)
		case tcell.KeyLeft:
			u.steerTo(core.Left)
		case tcell.KeyRight:
			u.steerTo(core.Right)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'w', 'k':
				u.steerTo(core.Up)
			case 's', 'j':
				u.steerTo(core.Down)
			case 'a', 'h':
				u.steerTo(core.Left)
			case 'd', 'l':
				u.steerTo(core.Right)
			}
		}
	}
	return false
}

func (u *UI) steerTo(d core.Direction) {
	if u.steer != nil {
		u.steer.Steer(d)
	}
}

// cues fires the eat or crash cue when the reported length moved.
func (u *UI) cues() {
	l := lengthOf(u.game)
	switch {
	case l > u.lastLen:
		u.sounds.Eat()
	case l < u.lastLen:
		u.sounds.Crash()
	}
	u.lastLen = l
}

var classStyles = map[uint8]tcell.Style{
	core.ClassBody: tcell.StyleDefault.Background(tcell.ColorGreen),
	core.ClassHead: tcell.StyleDefault.Background(tcell.ColorLightGreen),
	core.ClassFood: tcell.StyleDefault.Background(tcell.ColorRed),
}

func (u *UI) draw() {
	u.screen.Clear()

	size := u.game.Size()
	cells := u.game.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			st, ok := classStyles[cells[y*size.W+x]]
			if !ok {
				continue
			}
			u.screen.SetContent(x*2, y, ' ', nil, st)
			u.screen.SetContent(x*2+1, y, ' ', nil, st)
		}
	}

	if sp, ok := u.game.(core.StatusProvider); ok {
		col := 0
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		for _, s := range sp.Status() {
			col = u.drawText(col, size.H, s.Label+": "+s.Value+"  ", style)
		}
	}

	u.screen.Show()
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func lengthOf(game core.Game) int {
	if l, ok := game.(interface{ Length() int }); ok {
		return l.Length()
	}
	return 0
}
