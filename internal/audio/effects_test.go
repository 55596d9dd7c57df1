package audio

import (
	"testing"
	"time"
)

func drain(t *testing.T, freq float64, d time.Duration, wave waveType) ([]float64, int) {
	t.Helper()
	s := newTone(freq, d, wave)
	buf := make([][2]float64, 512)
	var out []float64
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	return out, len(out)
}

func TestToneStreamsExactDuration(t *testing.T) {
	out, n := drain(t, 440, 100*time.Millisecond, waveSine)
	if want := rate.N(100 * time.Millisecond); n != want {
		t.Fatalf("streamed %d samples, want %d", n, want)
	}
	if len(out) != n {
		t.Fatalf("collected %d samples, counted %d", len(out), n)
	}
}

func TestToneStaysInRange(t *testing.T) {
	out, _ := drain(t, 880, 50*time.Millisecond, waveSquare)
	for i, v := range out {
		if v > 1 || v < -1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	out, n := drain(t, 880, 100*time.Millisecond, waveSquare)
	if n == 0 {
		t.Fatal("no samples streamed")
	}
	if v := out[0]; v > 0.01 || v < -0.01 {
		t.Fatalf("first sample %f, want near-silent attack", v)
	}
	if v := out[n-1]; v > 0.05 || v < -0.05 {
		t.Fatalf("last sample %f, want near-silent release", v)
	}
}
