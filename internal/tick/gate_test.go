package tick

import (
	"testing"
	"time"
)

func TestGateFiresOncePerInterval(t *testing.T) {
	g := NewGate(2 * time.Second)

	if g.Advance(time.Second) {
		t.Fatal("gate fired after half an interval")
	}
	if !g.Advance(time.Second) {
		t.Fatal("gate did not fire after a full interval")
	}
	if got := g.Accumulated(); got != 0 {
		t.Fatalf("accumulator after tick = %v, want 0", got)
	}
}

func TestGateDropsOvershoot(t *testing.T) {
	g := NewGate(2 * time.Second)

	if !g.Advance(5 * time.Second) {
		t.Fatal("gate did not fire on a long frame")
	}
	if g.Accumulated() != 0 {
		t.Fatalf("overshoot carried: accumulator = %v", g.Accumulated())
	}
	if g.Advance(0) {
		t.Fatal("overshoot produced a second tick")
	}
}

func TestGatePausedNeverFires(t *testing.T) {
	g := NewGate(time.Second)
	g.Configure(time.Second, false)

	for i := 0; i < 10; i++ {
		if g.Advance(time.Second) {
			t.Fatalf("paused gate fired on advance %d", i)
		}
	}
	if g.Accumulated() != 10*time.Second {
		t.Fatalf("paused gate accumulator = %v, want 10s", g.Accumulated())
	}

	g.Configure(time.Second, true)
	if !g.Advance(0) {
		t.Fatal("resumed gate did not fire on the time gathered while paused")
	}
}

func TestGateIntervalChangeKeepsAccumulator(t *testing.T) {
	g := NewGate(2 * time.Second)
	g.Advance(1500 * time.Millisecond)

	g.Configure(time.Second, true)
	if got := g.Accumulated(); got != 1500*time.Millisecond {
		t.Fatalf("configure rescaled accumulator to %v", got)
	}
	if !g.Advance(0) {
		t.Fatal("shorter interval not honoured on next advance")
	}
}

func TestGateIgnoresNegativeElapsed(t *testing.T) {
	g := NewGate(time.Second)
	g.Advance(500 * time.Millisecond)
	g.Advance(-time.Hour)
	if got := g.Accumulated(); got != 500*time.Millisecond {
		t.Fatalf("negative elapsed changed accumulator to %v", got)
	}
}

func TestGateZeroIntervalStaysPaused(t *testing.T) {
	g := NewGate(0)
	if !g.Paused() {
		t.Fatal("gate with no interval should be paused")
	}
	if g.Advance(time.Hour) {
		t.Fatal("gate with no interval fired")
	}
}
