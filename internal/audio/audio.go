// Package audio synthesizes the short game cues with beep. There are no
// sample assets; every cue is generated.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	rate   = beep.SampleRate(44100)
	volume = 0.3
)

// Player owns the speaker and plays the game cues. A nil Player is silent,
// so callers can pass one through unconditionally.
type Player struct {
	ok bool
}

// NewPlayer opens the speaker. Failure is non-fatal: the game runs silent.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio disabled: %v", err)
		return p
	}
	p.ok = true
	return p
}

// Eat plays a short high blip for a meal.
func (p *Player) Eat() {
	p.play(newTone(880, 90*time.Millisecond, waveSquare))
}

// Crash plays a low buzz for the collision reset.
func (p *Player) Crash() {
	p.play(newTone(110, 250*time.Millisecond, waveSaw))
}

func (p *Player) play(s beep.Streamer) {
	if p == nil || !p.ok {
		return
	}
	speaker.Play(s)
}
