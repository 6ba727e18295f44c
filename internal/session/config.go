package session

import (
	"fmt"
	"strconv"

	"tickgol/internal/core"
	"tickgol/internal/sims/life"
	"tickgol/internal/tick"
)

// Config describes a simulation session.
type Config struct {
	Width  int
	Height int
	Edges  core.EdgeMode

	Fill    life.Fill
	Seed    int64
	Pattern string

	Level  tick.Level
	Resume tick.ResumePolicy
	Table  tick.Table
}

// DefaultConfig returns a 32x32 bounded board seeded at random and running
// at the regular speed.
func DefaultConfig() Config {
	return Config{
		Width:  32,
		Height: 32,
		Edges:  core.Bounded,
		Fill:   life.FillRandom,
		Seed:   42,
		Level:  tick.Regular,
		Resume: tick.ResumeRegular,
		Table:  tick.DefaultTable(),
	}
}

// Validate reports ErrInvalidConfiguration for unusable values.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d must be positive", core.ErrInvalidConfiguration, c.Width, c.Height)
	}
	switch c.Fill {
	case life.FillDead, life.FillRandom, life.FillPerlin:
	default:
		return fmt.Errorf("%w: unknown fill %q", core.ErrInvalidConfiguration, c.Fill)
	}
	if c.Pattern != "" {
		if _, ok := life.Lookup(c.Pattern); !ok {
			return fmt.Errorf("%w: unknown pattern %q", core.ErrInvalidConfiguration, c.Pattern)
		}
	}
	return c.Table.Validate()
}

var intervalKeys = map[string]tick.Level{
	"very_slow": tick.VerySlow,
	"slow":      tick.Slow,
	"regular":   tick.Regular,
	"fast":      tick.Fast,
	"very_fast": tick.VeryFast,
}

// FromMap populates a Config from flag-style key/value pairs. Values that do
// not parse are reported rather than skipped.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w=%q: %v", core.ErrInvalidConfiguration, v, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: h=%q: %v", core.ErrInvalidConfiguration, v, err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", core.ErrInvalidConfiguration, v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["edges"]; ok {
		m, err := core.ParseEdgeMode(v)
		if err != nil {
			return c, err
		}
		c.Edges = m
	}
	if v, ok := cfg["fill"]; ok {
		c.Fill = life.Fill(v)
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["speed"]; ok {
		l, err := tick.ParseLevel(v)
		if err != nil {
			return c, err
		}
		c.Level = l
	}
	if v, ok := cfg["resume"]; ok {
		switch v {
		case "regular":
			c.Resume = tick.ResumeRegular
		case "previous":
			c.Resume = tick.ResumePrevious
		default:
			return c, fmt.Errorf("%w: unknown resume policy %q", core.ErrInvalidConfiguration, v)
		}
	}
	secs := map[tick.Level]float64{}
	for key, level := range intervalKeys {
		v, ok := cfg["interval_"+key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: interval_%s=%q: %v", core.ErrInvalidConfiguration, key, v, err)
		}
		secs[level] = parsed
	}
	if len(secs) > 0 {
		table, err := tick.TableFromSeconds(secs)
		if err != nil {
			return c, err
		}
		c.Table = table
	}
	return c, c.Validate()
}
