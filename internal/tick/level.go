package tick

import (
	"fmt"
	"math"
	"time"

	"tickgol/internal/core"
)

// Level is the ordered set of simulation speeds.
type Level uint8

const (
	Paused Level = iota
	VerySlow
	Slow
	Regular
	Fast
	VeryFast
)

// Levels lists every level from slowest to fastest.
var Levels = [...]Level{Paused, VerySlow, Slow, Regular, Fast, VeryFast}

const numLevels = len(Levels)

var levelNames = [numLevels]string{"paused", "very-slow", "slow", "regular", "fast", "very-fast"}

// String returns the flag-style name of the level.
func (l Level) String() string {
	if int(l) < numLevels {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return Regular, fmt.Errorf("%w: unknown speed level %q", core.ErrInvalidConfiguration, s)
}

// Table maps every running level to its step interval. The Paused slot is
// ignored.
type Table [numLevels]time.Duration

// DefaultTable returns the stock intervals.
func DefaultTable() Table {
	return Table{
		VerySlow: 8 * time.Second,
		Slow:     4 * time.Second,
		Regular:  2 * time.Second,
		Fast:     500 * time.Millisecond,
		VeryFast: 100 * time.Millisecond,
	}
}

// Validate reports ErrInvalidConfiguration when any running level has a
// non-positive interval.
func (t Table) Validate() error {
	for _, l := range Levels[1:] {
		if t[l] <= 0 {
			return fmt.Errorf("%w: interval for %s must be positive, got %v", core.ErrInvalidConfiguration, l, t[l])
		}
	}
	return nil
}

// Interval returns the duration for l. ok is false for Paused.
func (t Table) Interval(l Level) (time.Duration, bool) {
	if l == Paused || int(l) >= numLevels {
		return 0, false
	}
	return t[l], true
}

// TableFromSeconds overlays the given seconds onto the default table.
// Levels missing from secs keep their defaults.
func TableFromSeconds(secs map[Level]float64) (Table, error) {
	t := DefaultTable()
	for l, s := range secs {
		if l == Paused || int(l) >= numLevels {
			return t, fmt.Errorf("%w: no interval can be assigned to %s", core.ErrInvalidConfiguration, l)
		}
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return t, fmt.Errorf("%w: interval for %s must be positive and finite, got %v", core.ErrInvalidConfiguration, l, s)
		}
		d := time.Duration(s * float64(time.Second))
		if d <= 0 {
			return t, fmt.Errorf("%w: interval for %s rounds to zero", core.ErrInvalidConfiguration, l)
		}
		t[l] = d
	}
	return t, t.Validate()
}
