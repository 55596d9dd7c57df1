package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresImmediatelyAfterConstruction(t *testing.T) {
	fs := NewFixedStep(20)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire")
	}
}

func TestFixedStepHonorsInterval(t *testing.T) {
	fs := NewFixedStep(50)
	if got := fs.Interval(); got != 20*time.Millisecond {
		t.Fatalf("Interval = %v, want 20ms", got)
	}
	fs.SetTPS(0)
	if got := fs.Interval(); got != time.Second/DefaultTPS {
		t.Fatalf("Interval after SetTPS(0) = %v, want default %v", got, time.Second/DefaultTPS)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.ShouldStep() // consume the initial step
	time.Sleep(3 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval elapsed but ShouldStep did not fire")
	}
}
