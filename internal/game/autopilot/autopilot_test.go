package autopilot

import "testing"

func TestPilotEats(t *testing.T) {
	p := New(10, 10)
	p.Reset(7)
	for i := 0; i < 200 && p.Length() < 2; i++ {
		p.Step()
	}
	if p.Length() < 2 {
		t.Fatalf("pilot never reached the food in 200 ticks, length = %d", p.Length())
	}
}

func TestPilotSurvivesEarlyGame(t *testing.T) {
	p := New(12, 12)
	p.Reset(42)
	peak := p.Length()
	for i := 0; i < 2000; i++ {
		p.Step()
		if l := p.Length(); l > peak {
			peak = l
		}
	}
	if peak < 4 {
		t.Fatalf("peak length = %d over 2000 ticks, expected the pilot to grow past 4", peak)
	}
}

func TestPilotNeverReverses(t *testing.T) {
	p := New(10, 10)
	p.Reset(3)
	prev := p.inner.Dir()
	for i := 0; i < 500; i++ {
		p.Step()
		cur := p.inner.Dir()
		// A reset puts the heading back to the default, which is legal.
		if p.Length() > 1 && cur == prev.Opposite() {
			t.Fatalf("tick %d: heading flipped from %v to %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestPilotDeterministicForSameSeed(t *testing.T) {
	run := func() (int, []uint8) {
		p := New(10, 10)
		p.Reset(1234)
		for i := 0; i < 600; i++ {
			p.Step()
		}
		cells := make([]uint8, len(p.Cells()))
		copy(cells, p.Cells())
		return p.Length(), cells
	}
	l1, c1 := run()
	l2, c2 := run()
	if l1 != l2 {
		t.Fatalf("lengths diverged: %d vs %d", l1, l2)
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("cell buffers diverged at %d", i)
		}
	}
}
