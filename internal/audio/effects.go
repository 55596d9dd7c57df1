package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// tone is a fixed-length oscillator with a linear attack/release envelope so
// short cues start and end without clicks.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
	attack   int
	release  int
	wave     waveType
}

// newTone builds a streamer producing d worth of samples at freq.
func newTone(freq float64, d time.Duration, wave waveType) beep.Streamer {
	total := rate.N(d)
	att := rate.N(5 * time.Millisecond)
	rel := rate.N(30 * time.Millisecond)
	if att+rel > total {
		att = total / 2
		rel = total / 2
	}
	return &tone{freq: freq, total: total, attack: att, release: rel, wave: wave}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2*t.phase - 1
		}
		val *= t.gain() * volume

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

// gain returns the envelope value at the current sample position.
func (t *tone) gain() float64 {
	if t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	if rem := t.total - t.position; rem < t.release {
		return float64(rem) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }
