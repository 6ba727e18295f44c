package app

import (
	"errors"
	"flag"
	"testing"

	"tickgol/internal/core"
	"tickgol/internal/tick"
)

func TestConfigBindAndSession(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-w", "12", "-h", "9", "-speed", "very-fast", "-edges", "toroidal", "-pattern", "glider"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := c.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 9 || cfg.Level != tick.VeryFast || cfg.Edges != core.Toroidal || cfg.Pattern != "glider" {
		t.Fatalf("session config = %+v", cfg)
	}
}

func TestConfigSessionRejectsBadFlags(t *testing.T) {
	c := NewConfig()
	c.Speed = "warp"
	if _, err := c.Session(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("bad speed err = %v", err)
	}
}
