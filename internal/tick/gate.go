package tick

import "time"

// Gate turns elapsed wall-clock time into discrete step signals. Overshoot
// past the interval is dropped on every tick rather than carried forward.
type Gate struct {
	interval    time.Duration
	accumulator time.Duration
	paused      bool
}

// NewGate constructs a Gate firing every interval. A non-positive interval
// leaves the gate paused until Configure supplies one.
func NewGate(interval time.Duration) *Gate {
	g := &Gate{}
	g.Configure(interval, interval > 0)
	return g
}

// Configure changes the interval and paused flag. The accumulator is kept
// as is and the new values apply from the next Advance.
func (g *Gate) Configure(interval time.Duration, running bool) {
	g.interval = interval
	g.paused = !running || interval <= 0
}

// Advance adds elapsed to the accumulator and reports whether a step is due.
func (g *Gate) Advance(elapsed time.Duration) bool {
	if elapsed > 0 {
		g.accumulator += elapsed
	}
	if g.paused {
		return false
	}
	if g.accumulator >= g.interval {
		g.accumulator = 0
		return true
	}
	return false
}

// Interval returns the configured interval.
func (g *Gate) Interval() time.Duration { return g.interval }

// Paused reports whether the gate is suppressing ticks.
func (g *Gate) Paused() bool { return g.paused }

// Accumulated returns the time gathered since the last tick.
func (g *Gate) Accumulated() time.Duration { return g.accumulator }

// Reset clears the accumulator.
func (g *Gate) Reset() { g.accumulator = 0 }
